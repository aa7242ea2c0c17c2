package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// UpstreamError carries the non-2xx status and raw body returned by the
// completion service so callers can log and degrade precisely.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion error: status %d, body: %s", e.Status, e.Body)
}

// IsUpstream reports whether err is a non-2xx response from the service.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsTimeout reports whether err was caused by the request deadline,
// either the client's fixed timeout or a cancelled context.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}
