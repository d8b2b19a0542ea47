package directory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fioparser/core/reconcile"
)

// APIError is a non-2xx response from the directory API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("directory api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("directory api: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps client-side rejections to reconcile.ErrClientRejected.
// Timeouts and rate limiting stay retryable.
func (e *APIError) Unwrap() error {
	if e.ClientRejected() {
		return reconcile.ErrClientRejected
	}
	return nil
}

// ClientRejected reports whether retrying the same request cannot help.
func (e *APIError) ClientRejected() bool {
	if e.StatusCode == http.StatusRequestTimeout || e.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// problem is the amoCRM error body.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Hint   string `json:"hint"`
}

func readAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var p problem
	if err := json.Unmarshal(body, &p); err == nil {
		for _, msg := range []string{p.Detail, p.Hint, p.Title} {
			if msg != "" {
				apiErr.Message = msg
				return apiErr
			}
		}
	}
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
