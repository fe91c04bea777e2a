package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-logr/logr"

	"github.com/openshift-assisted/cluster-resources/pkg/provider"
)

// JSONHandler is a sarama.ConsumerGroupHandler decoding every message as a
// JSON Payload.
//
// A message that can never be processed goes to the dead letter queue and is
// committed. A message failing on an unavailable backend is left uncommitted
// and ends the claim, so it is consumed again once the session restarts.
type JSONHandler[Payload any] struct {
	logger *logr.Logger

	processing      Processing[Payload]
	errorProcessing ErrorProcessing

	outages chan<- error
}

func NewJSONHandler[Payload any](processing Processing[Payload], errProcessing ErrorProcessing) JSONHandler[Payload] {
	return JSONHandler[Payload]{
		processing:      processing,
		errorProcessing: errProcessing,
	}
}

func (h JSONHandler[Payload]) WithLogger(logger logr.Logger) JSONHandler[Payload] {
	h.logger = &logger

	return h
}

func (h JSONHandler[Payload]) withOutages(outages chan<- error) JSONHandler[Payload] {
	h.outages = outages

	return h
}

func (h JSONHandler[Payload]) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	h.logInfo(0, "Start consuming",
		"topic", claim.Topic(),
		"partition", claim.Partition(),
		"initialOffset", claim.InitialOffset(),
	)

	for msg := range claim.Messages() {
		// Rebalance or shutdown
		if ctx.Err() != nil {
			break
		}

		if msg == nil {
			h.logInfo(1, "Nil message")

			continue
		}

		// Tombstones of the compacted state topics carry no state
		if len(msg.Value) == 0 {
			h.logInfo(1, "Skipping tombstone", "partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key))
			session.MarkMessage(msg, "")

			continue
		}

		err := h.consume(ctx, msg)
		if err != nil {
			if ctx.Err() != nil {
				h.logInfo(1, "Context cancelled, message left uncommitted", "offset", msg.Offset)

				break
			}

			h.logError(err, "Stop consuming claim", "partition", msg.Partition, "offset", msg.Offset)
			h.notifyOutage(err)

			return fmt.Errorf("partition %d offset %d: %w", msg.Partition, msg.Offset, err)
		}

		session.MarkMessage(msg, "")
	}

	return nil
}

// consume returns an error only when msg must be consumed again.
func (h JSONHandler[Payload]) consume(ctx context.Context, msg *sarama.ConsumerMessage) error {
	h.logInfo(3, "Processing message", "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

	payload := new(Payload)

	err := json.Unmarshal(msg.Value, payload)
	if err != nil {
		return h.processError(ctx, msg, NewErrProcessingError(err, UnmarshalErrorCategory))
	}

	err = h.processing.Process(ctx, *payload)
	if err == nil {
		return nil
	}

	if errors.Is(err, provider.ErrRetryableError) {
		return fmt.Errorf("%w: %w", ErrStateUnavailable, err)
	}

	return h.processError(ctx, msg, err)
}

func (h JSONHandler[Payload]) processError(ctx context.Context, msg *sarama.ConsumerMessage, processingErr error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	h.logError(processingErr, "Processing failed", "offset", msg.Offset)

	processingError := createProcessingError(processingErr)
	processingError.Message = msg

	err = h.errorProcessing.Process(ctx, processingError)
	if err == nil {
		return nil
	}

	if errors.Is(err, provider.ErrRetryableError) {
		return fmt.Errorf("%w: %w", ErrDeadLetterUnavailable, err)
	}

	h.logError(err, "Error processing failed")
	h.dumpErrorContext(msg, processingError)

	return nil
}

func (h JSONHandler[Payload]) notifyOutage(err error) {
	if h.outages == nil {
		return
	}

	select {
	case h.outages <- err:
	default:
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim.
func (h JSONHandler[Payload]) Setup(session sarama.ConsumerGroupSession) error {
	h.logInfo(0, "Setup to consume", "claims", session.Claims())

	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (h JSONHandler[Payload]) Cleanup(session sarama.ConsumerGroupSession) error {
	h.logInfo(0, "Cleanup after consuming", "claims", session.Claims())

	return nil
}

func (h JSONHandler[Payload]) dumpErrorContext(msg *sarama.ConsumerMessage, err ErrProcessingError) {
	h.logError(err,
		"Message lost",
		"kafka.topic", msg.Topic,
		"kafka.partition", msg.Partition,
		"kafka.offset", msg.Offset,
		"kafka.payload", string(msg.Value),
		"category", err.Category,
	)
}

func (h JSONHandler[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.V(level).Info(msg, keysAndValues...)
}

func (h JSONHandler[Payload]) logError(err error, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.Error(err, msg, keysAndValues...)
}

func createProcessingError(err error) ErrProcessingError {
	ret := ErrProcessingError{}
	if errors.As(err, &ret) {
		return ret
	}

	return NewErrProcessingError(err, UnknownCategory)
}
