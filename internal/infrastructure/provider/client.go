// Package provider translates domain operations into authenticated REST
// calls against the external investor-management platform.
package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"investintake/pkg/httpx"
)

const defaultHTTPTimeout = 30 * time.Second

// Client is the facade over the provider's REST API. All operations are
// synchronous request/response; none retry automatically.
type Client struct {
	httpClient *http.Client
	baseURL    string
	dealID     string
}

type Options struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	DealID       string
	LogBodyLimit int
}

func NewClient(opts Options) *Client {
	authenticator := NewAuthenticator(
		&http.Client{Timeout: defaultHTTPTimeout},
		opts.TokenURL,
		opts.ClientID,
		opts.ClientSecret,
	)

	transport := http.RoundTripper(http.DefaultTransport)
	transport = httpx.NewLoggingRoundTripper(
		transport,
		httpx.WithLogFieldMaxLen(opts.LogBodyLimit),
	)
	transport = httpx.NewAuthBearerRoundTripper(transport, authenticator)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   defaultHTTPTimeout,
		},
		baseURL: opts.BaseURL,
		dealID:  opts.DealID,
	}
}

func (c *Client) doJSON(
	ctx context.Context,
	method string,
	endpoint string,
	request any,
	dest any,
) error {
	var body io.Reader = http.NoBody

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	if dest == nil {
		return nil
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	if raw, ok := dest.(*[]byte); ok {
		*raw = respBytes
		return nil
	}

	if err = json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}
