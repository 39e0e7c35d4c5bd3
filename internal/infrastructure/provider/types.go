package provider

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// ErrNetwork marks transport-level failures reaching the provider or its
// token endpoint.
var ErrNetwork = errors.New("provider unreachable")

// APIError is a non-2xx provider response with its extracted message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
}

// errorEnvelope covers the provider's three observed error shapes; the
// message is extracted with precedence errors > error > message.
type errorEnvelope struct {
	Errors  map[string][]string `json:"errors"`
	Err     string              `json:"error"`
	Message string              `json:"message"`
}

func (e errorEnvelope) bestMessage() string {
	if len(e.Errors) > 0 {
		fields := make([]string, 0, len(e.Errors))
		for field := range e.Errors {
			fields = append(fields, field)
		}

		sort.Strings(fields)

		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+": "+strings.Join(e.Errors[field], ", "))
		}

		return strings.Join(parts, "; ")
	}

	if e.Err != "" {
		return e.Err
	}

	return e.Message
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body) //nolint:errcheck

	var envelope errorEnvelope

	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		message = envelope.bestMessage()
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

type investorDTO struct {
	ID         int64           `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	State      string          `json:"state"`
	ProfileID  int64           `json:"profile_id"`
	AccessLink string          `json:"access_link"`
}

func (d investorDTO) toEntity() entity.InvestorRecord {
	return entity.InvestorRecord{
		ID:         d.ID,
		Email:      d.Email,
		Name:       d.Name,
		Amount:     d.Amount,
		State:      value.WorkflowState(d.State),
		ProfileID:  d.ProfileID,
		AccessLink: d.AccessLink,
	}
}

// decodeInvestorList accepts both observed search response shapes: the
// paginated envelope and the bare collection. Anything else is an error,
// never a silent empty result.
func decodeInvestorList(data []byte) ([]investorDTO, error) {
	var envelope struct {
		Data  []investorDTO `json:"data"`
		Total int           `json:"total"`
	}

	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var bare []investorDTO

	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("unrecognized investor search response shape: %s", truncateForError(data))
}

func truncateForError(data []byte) string {
	const maxLen = 256

	if len(data) > maxLen {
		data = data[:maxLen]
	}

	return string(data)
}
