package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/openshift-assisted/cluster-resources/pkg/provider"
	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

const ResourcesPath = "/api/v1/resources/"

type ProviderSource interface {
	Get(t resource.Type) (provider.ResourceProvider, error)
}

type Handler struct {
	providers ProviderSource
	timeout   time.Duration

	logger *logr.Logger
}

func NewHandler(providers ProviderSource, timeout time.Duration) Handler {
	return Handler{
		providers: providers,
		timeout:   timeout,
	}
}

func (h Handler) WithLogger(logger logr.Logger) Handler {
	h.logger = &logger

	return h
}

// Routes returns the API mux, every route tagged with a request id.
func (h Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ResourcesPath+"{type}", h.getResources)

	return RequestID(mux)
}

type itemsResponse struct {
	Items []resource.Resource `json:"items"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (h Handler) getResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := resource.Type(r.PathValue("type"))

	request, err := ParseQuery(t, r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	p, err := h.providers.Get(t)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resources, err := p.GetResources(ctx, request)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	items := resource.Select(resources, request)

	h.logInfo(ctx, 1, "Resources served", "type", t, "count", len(items), "projected", len(resources))

	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)

	if status >= http.StatusInternalServerError {
		h.logError(ctx, err, "Query failed")
	} else {
		h.logInfo(ctx, 1, "Query rejected", "reason", err.Error())
	}

	writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		RequestID: RequestIDFromContext(ctx),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, resource.ErrInvalidPropertyID), errors.Is(err, resource.ErrUnknownProperty):
		return http.StatusBadRequest
	case errors.Is(err, resource.ErrUnsupportedType):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, resource.ErrBackendUnavailable), errors.Is(err, provider.ErrRetryableError):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func (h Handler) logInfo(ctx context.Context, level int, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.V(level).Info(msg, append(keysAndValues, "requestId", RequestIDFromContext(ctx))...)
}

func (h Handler) logError(ctx context.Context, err error, msg string, keysAndValues ...any) {
	if h.logger == nil {
		return
	}

	h.logger.Error(err, msg, append(keysAndValues, "requestId", RequestIDFromContext(ctx))...)
}
