package common

import (
	"fmt"

	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

func NewError(err error, reason string, args ...interface{}) error {
	cause := fmt.Sprintf(reason, args...)

	return fmt.Errorf("%s: %w", cause, err)
}

// NewRetryableError marks err so that provider.NewRetryProvider and the ingest
// retry try again.
func NewRetryableError(err error, reason string, args ...interface{}) error {
	return NewError(provider.NewErrRetryableError(err), reason, args...)
}
