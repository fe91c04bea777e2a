package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

// Panic handler Provider

type panicHandler struct {
	provider ResourceProvider
}

func NewPanicHandlerProvider(p ResourceProvider) ResourceProvider {
	return panicHandler{
		provider: p,
	}
}

func (p panicHandler) Type() resource.Type {
	return p.provider.Type()
}

func (p panicHandler) GetResources(ctx context.Context, request resource.Request) (ret []resource.Resource, err error) {
	defer func() {
		r := recover()
		if r != nil {
			ret = nil
			err = fmt.Errorf("%w: %s: %v", ErrProviderPanic, p.provider.Type(), r)
		}
	}()

	ret, err = p.provider.GetResources(ctx, request)

	return
}

// Retry Provider

type retryProvider struct {
	provider ResourceProvider
	config   RetryConfig
}

type RetryConfig struct {
	MaxAttempt uint
	Delay      time.Duration
}

func NewRetryProvider(p ResourceProvider, config RetryConfig) ResourceProvider {
	return retryProvider{
		provider: p,
		config:   config,
	}
}

func (p retryProvider) Type() resource.Type {
	return p.provider.Type()
}

func (p retryProvider) GetResources(ctx context.Context, request resource.Request) ([]resource.Resource, error) {
	return retry.DoWithData(
		func() ([]resource.Resource, error) {
			return p.provider.GetResources(ctx, request)
		},
		retry.Context(ctx),
		retry.Attempts(p.config.MaxAttempt),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrRetryableError)
		}),
		retry.Delay(p.config.Delay),
		retry.LastErrorOnly(true),
	)
}

// Duration Metric Provider

type MetricsConfig struct {
	Namespace string
	Buckets   []float64
}

// Metrics are shared by the decorators of every Type.
type Metrics struct {
	duration  *prometheus.HistogramVec
	resources *prometheus.CounterVec
}

func NewMetrics(registry prometheus.Registerer, config MetricsConfig) (Metrics, error) {
	buckets := config.Buckets
	if len(buckets) == 0 {
		buckets = []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "provider_duration_milliseconds",
		Help:      "Time taken to project resources.",
		Buckets:   buckets,
	}, []string{"type", "failed"})

	err := registry.Register(duration)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to register metric: %w", err)
	}

	resources := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "provider_resources_total",
		Help:      "Resources returned by type.",
	}, []string{"type"})

	err = registry.Register(resources)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to register metric: %w", err)
	}

	return Metrics{
		duration:  duration,
		resources: resources,
	}, nil
}

type metricsDecorator struct {
	provider ResourceProvider
	metrics  Metrics
	clock    clockwork.Clock
}

func NewMetricsDecoratorProvider(p ResourceProvider, metrics Metrics, clock clockwork.Clock) ResourceProvider {
	return metricsDecorator{
		provider: p,
		metrics:  metrics,
		clock:    clock,
	}
}

func (p metricsDecorator) Type() resource.Type {
	return p.provider.Type()
}

func (p metricsDecorator) GetResources(ctx context.Context, request resource.Request) ([]resource.Resource, error) {
	start := p.clock.Now()

	ret, err := p.provider.GetResources(ctx, request)

	duration := p.clock.Since(start)
	durationMilli := float64(duration/time.Millisecond) + float64(duration%time.Millisecond)/float64(time.Millisecond)

	t := p.provider.Type().String()

	p.metrics.duration.WithLabelValues(t, fmt.Sprintf("%v", err != nil)).Observe(durationMilli)

	if err == nil {
		p.metrics.resources.WithLabelValues(t).Add(float64(len(ret)))
	}

	return ret, err
}
