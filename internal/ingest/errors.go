package ingest

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

const (
	UnknownCategory        = "unknown"
	UnmarshalErrorCategory = "unmarshal"
	PanicCategory          = "panic"
)

var (
	ErrStateUnavailable      = errors.New("state store unavailable")
	ErrDeadLetterUnavailable = errors.New("dead letter queue unavailable")
)

// ErrProcessingError is a message that will not be processed. It ends up in
// the dead letter queue.
type ErrProcessingError struct {
	error
	Category string
	Message  *sarama.ConsumerMessage
}

func NewErrProcessingError(err error, category string) ErrProcessingError {
	return ErrProcessingError{
		error:    err,
		Category: category,
	}
}

func NewRetryableErrProcessingError(err error, category string) ErrProcessingError {
	return NewErrProcessingError(provider.NewErrRetryableError(err), category)
}

func newErrProcessingError(err error, category string, reason string, args ...interface{}) ErrProcessingError {
	return NewErrProcessingError(fmt.Errorf("%s: %w", fmt.Sprintf(reason, args...), err), category)
}

func (e ErrProcessingError) Unwrap() error {
	return e.error
}
