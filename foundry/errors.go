package foundry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// APIError is a non-2xx answer from the agents endpoint.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "foundry: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Code != "" {
		sb.WriteString(": " + e.Code)
	}
	if e.Message != "" {
		sb.WriteString(": " + e.Message)
	}
	if e.RequestID != "" {
		sb.WriteString(" (request id " + e.RequestID + ")")
	}
	return sb.String()
}

func newAPIError(resp *resty.Response, clientRequestID string) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		RequestID:  firstNonEmpty(resp.Header().Get("x-ms-request-id"), resp.Header().Get("apim-request-id"), clientRequestID),
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	if apiErr.Code == "" && apiErr.Message == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > maxErrorBody {
			cut := maxErrorBody
			for cut > 0 && !utf8.RuneStart(body[cut]) {
				cut--
			}
			body = body[:cut] + "..."
		}
		apiErr.Message = body
	}
	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
