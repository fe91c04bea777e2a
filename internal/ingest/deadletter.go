package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/domain/repo"
)

var errMissingMessage = errors.New("processing error without message")

// MainError stores the failed messages in the dead letter queue.
type MainError struct {
	writer repo.DeadLetterWriter
}

func NewMainError(writer repo.DeadLetterWriter) MainError {
	return MainError{
		writer: writer,
	}
}

func (m MainError) Process(ctx context.Context, pErr ErrProcessingError) error {
	msg := pErr.Message
	if msg == nil {
		return errMissingMessage
	}

	letter := entity.DeadLetter{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Timestamp,
		Payload:   msg.Value,
		Category:  pErr.Category,
		Reason:    pErr.Error(),
	}

	err := m.writer.WriteDeadLetter(ctx, letter)
	if err != nil {
		return fmt.Errorf("failed to write dead letter: %w", err)
	}

	return nil
}
