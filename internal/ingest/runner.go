package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-logr/logr"
	"github.com/jonboulle/clockwork"
)

const DefaultOutageBackoff = 5 * time.Second

// Runner consumes topics until its context is cancelled. A session ended by
// an unavailable backend is restarted after a backoff, from the last
// committed offsets.
type Runner[Payload any] struct {
	consumer sarama.ConsumerGroup
	topics   []string

	handler JSONHandler[Payload]
	outages chan error

	clock   clockwork.Clock
	backoff time.Duration

	logger *logr.Logger
}

func NewRunner[Payload any](consumer sarama.ConsumerGroup, topics []string, processing Processing[Payload], errorProcessing ErrorProcessing) Runner[Payload] {
	outages := make(chan error, 1)

	return Runner[Payload]{
		consumer: consumer,
		topics:   topics,
		handler:  NewJSONHandler(processing, errorProcessing).withOutages(outages),
		outages:  outages,
		clock:    clockwork.NewRealClock(),
		backoff:  DefaultOutageBackoff,
	}
}

func (r Runner[Payload]) WithLogger(logger logr.Logger) Runner[Payload] {
	r.logger = &logger
	r.handler = r.handler.WithLogger(logger)

	return r
}

// WithBackoff sets how long consumption stays paused after an outage.
func (r Runner[Payload]) WithBackoff(clock clockwork.Clock, backoff time.Duration) Runner[Payload] {
	r.clock = clock
	r.backoff = backoff

	return r
}

func (r Runner[Payload]) Start(ctx context.Context) error {
	go func() {
		for err := range r.consumer.Errors() {
			r.logError(err, "Kafka consumer error")
		}
	}()

	for {
		err := r.consumer.Consume(ctx, r.topics, r.handler)
		if err != nil {
			r.logError(err, "Consumer failed")

			return fmt.Errorf("consumer failed: %w", err)
		}

		// Consume returns on every rebalance, loop unless the context is done
		err = ctx.Err()
		if err != nil {
			r.logInfo(0, "Context expired")

			return err
		}

		err = r.waitOutage(ctx)
		if err != nil {
			r.logInfo(0, "Context expired during outage")

			return err
		}
	}
}

func (r Runner[Payload]) waitOutage(ctx context.Context) error {
	select {
	case outage := <-r.outages:
		r.logInfo(0, "Backend unavailable, pausing consumption", "backoff", r.backoff, "reason", outage.Error())
	default:
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.clock.After(r.backoff):
		r.logInfo(1, "Resuming consumption")

		return nil
	}
}

func (r Runner[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.V(level).Info(msg, keysAndValues...)
}

func (r Runner[Payload]) logError(err error, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.Error(err, msg, keysAndValues...)
}
