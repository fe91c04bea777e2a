package provider

import (
	"errors"
	"fmt"
)

// ErrRetryableError

var ErrRetryableError = errors.New("retryable error")

func NewErrRetryableError(err error) error {
	return fmt.Errorf("%w: %w", ErrRetryableError, err)
}

// ErrNotAvailable is returned by an accessor when the raw object does not
// carry the property. The property is left absent so defaults can apply.
var ErrNotAvailable = errors.New("property not available")

var ErrProviderPanic = errors.New("provider panic")

var errEmptyValue = errors.New("empty value")
