package provider

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeInvestorList(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		body      string
		wantErr   bool
		wantCount int
	}{
		{
			name:      "Paginated envelope",
			body:      `{"data":[{"id":1,"email":"a@b.c","state":"invited"}],"total":1}`,
			wantCount: 1,
		},
		{
			name:      "Empty envelope",
			body:      `{"data":[],"total":0}`,
			wantCount: 0,
		},
		{
			name:      "Bare collection",
			body:      `[{"id":1,"email":"a@b.c","state":"invited"},{"id":2,"email":"a@b.c","state":"signed"}]`,
			wantCount: 2,
		},
		{
			name:      "Bare empty collection",
			body:      `[]`,
			wantCount: 0,
		},
		{
			name:    "Unrecognized shape fails loudly",
			body:    `{"investors":[{"id":1}]}`,
			wantErr: true,
		},
		{
			name:    "Scalar fails loudly",
			body:    `42`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			dtos, err := decodeInvestorList([]byte(tc.body))

			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Len(dtos, tc.wantCount)
		})
	}
}

func TestErrorEnvelopePrecedence(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "Field errors win",
			body: `{"errors":{"email":["is taken"]},"error":"nope","message":"bad"}`,
			want: "email: is taken",
		},
		{
			name: "Multiple field errors are joined deterministically",
			body: `{"errors":{"last_name":["is required"],"first_name":["is required"]}}`,
			want: "first_name: is required; last_name: is required",
		},
		{
			name: "Error string next",
			body: `{"error":"nope","message":"bad"}`,
			want: "nope",
		},
		{
			name: "Message last",
			body: `{"message":"bad"}`,
			want: "bad",
		},
		{
			name: "Unparseable body falls back to status text",
			body: `<html>`,
			want: http.StatusText(http.StatusBadGateway),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			resp := &http.Response{
				StatusCode: http.StatusBadGateway,
				Body:       io.NopCloser(strings.NewReader(tc.body)),
			}

			apiErr := newAPIError(resp)

			rq.Equal(http.StatusBadGateway, apiErr.StatusCode)
			rq.Equal(tc.want, apiErr.Message)
		})
	}
}
