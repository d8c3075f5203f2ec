package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBodyTooLarge is returned when a response exceeds Config.MaxBodyBytes.
// It is reported together with curriculum.ErrMalformed.
var ErrBodyTooLarge = errors.New("backend response too large")

// HTTPError carries status and body for non-2xx backend responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
