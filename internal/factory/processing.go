package factory

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/ingest"
)

/*
 * DecorateProcessing decorates the event processing as follow:
 *
 * panic --> duration --> count --> retry --> main (valkey)
 */
func DecorateProcessing(main ingest.Processing[entity.Event], registry prometheus.Registerer, conf config.Retry) (ingest.Processing[entity.Event], error) {
	ret := ingest.NewRetryProcessing(main, ingest.RetryConfig{MaxAttempt: conf.MaxAttempt, Delay: conf.Delay})

	ret, err := ingest.NewEventCountProcessing(ret, registry, ingest.MetricsConfig{Namespace: "main"})
	if err != nil {
		return nil, fmt.Errorf("failed to create event count processing: %w", err)
	}

	ret, err = ingest.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), ingest.MetricsConfig{Namespace: "main"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processing: %w", err)
	}

	return ingest.NewPanicHandlerProcessing(ret), nil
}

/*
 * DecorateErrorProcessing decorates the error processing as follow:
 *
 *                                      ---> retry --> main (dlq)
 *  panic --> duration --> parallel ---|
 *                                      ---> error count
 */
func DecorateErrorProcessing(main ingest.ErrorProcessing, registry prometheus.Registerer, conf config.Retry) (ingest.ErrorProcessing, error) {
	var ret ingest.Processing[ingest.ErrProcessingError] = main

	ret = ingest.NewRetryProcessing(ret, ingest.RetryConfig{MaxAttempt: conf.MaxAttempt, Delay: conf.Delay})

	errorCount, err := ingest.NewErrorCountProcessing(registry, ingest.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create error count processing: %w", err)
	}

	ret = ingest.NewParallelProcessing[ingest.ErrProcessingError](ret, errorCount)

	ret, err = ingest.NewDurationMetricsDecoratorProcessing(ret, registry, clockwork.NewRealClock(), ingest.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processing: %w", err)
	}

	return ingest.NewPanicHandlerProcessing(ret), nil
}
