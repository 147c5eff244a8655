package weather

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientData = errors.New("insufficient weather data")
	ErrTimedOut         = errors.New("timed out waiting for weather data")
)

// ExternalAPIError is returned when the weather provider answers with a
// non-2xx status or a body that cannot be decoded. StatusCode is 0 when no
// HTTP response was received at all.
type ExternalAPIError struct {
	StatusCode int
	Body       string
}

func (e *ExternalAPIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("weather provider unreachable: %s", e.Body)
	}
	return fmt.Sprintf("weather provider returned status %d: %s", e.StatusCode, e.Body)
}
