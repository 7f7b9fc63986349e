package bouncer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsupportedPlatform is returned when no filename scheme exists for an OS tag.
var ErrUnsupportedPlatform = errors.New("unsupported OS")

// TransportError is returned when a probe stage fails before any response is received.
type TransportError struct {
	// URL is the URL the failing request was sent to, including encoded params.
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Failing URL: %s.\nError message: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
