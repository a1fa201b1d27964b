package supabase

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	errSupabaseTransient = crerr.New("supabase transient failure")
	errCircuitRejected   = crerr.New("supabase circuit rejected request")
)

// APIError is the error body the REST and storage APIs return on non-2xx
// answers.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "supabase status=%d", e.Status)
	if e.Code != "" {
		b.WriteString(" code=")
		b.WriteString(e.Code)
	}
	if e.Message != "" {
		b.WriteString(" message=")
		b.WriteString(e.Message)
	}
	if e.Details != "" {
		b.WriteString(" details=")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString(" hint=")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func isSupabaseCircuitFailure(err error) bool {
	return stderrors.Is(err, errSupabaseTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 512 {
		return text[:512] + "..."
	}
	return text
}
