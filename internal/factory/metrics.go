package factory

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openshift-assisted/cluster-resources/internal/config"
	"github.com/openshift-assisted/cluster-resources/internal/version"
)

// CreateRegistry returns a registry exposing the runtime and build metrics.
func CreateRegistry() (*prometheus.Registry, error) {
	ret := prometheus.NewRegistry()

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		version.NewCollector(),
	} {
		err := ret.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return ret, nil
}

func CreatePrometheusServer(conf config.Metrics, gatherer prometheus.Gatherer) *http.Server {
	ret := &http.Server{
		Addr:              fmt.Sprintf(":%v", conf.Port),
		IdleTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	ret.SetKeepAlivesEnabled(true)

	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ret.Handler = router

	return ret
}

// CreateHTTPServer serves the query API.
func CreateHTTPServer(conf config.HTTP, handler http.Handler) *http.Server {
	ret := &http.Server{
		Addr:              fmt.Sprintf(":%v", conf.Port),
		Handler:           handler,
		ReadTimeout:       conf.ReadTimeout,
		ReadHeaderTimeout: conf.ReadTimeout,
		WriteTimeout:      conf.WriteTimeout,
		IdleTimeout:       30 * time.Second,
	}

	return ret
}
