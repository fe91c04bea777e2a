package security

import "net/http"

const (
	HeaderStrictTransportSecurity = "Strict-Transport-Security"
	HeaderXFrameOptions           = "X-Frame-Options"
	HeaderXXSSProtection          = "X-XSS-Protection"

	// HeaderDenyOverrideXFrameOptions is set by a handler that already chose
	// its own X-Frame-Options. It never leaves the server.
	HeaderDenyOverrideXFrameOptions = "deny.header.overrides.flag"
)

// ConfigSource is read once per response, so a reloaded configuration applies
// to the next response.
type ConfigSource interface {
	SSLEnabled() bool
	StrictTransportSecurity() string
	XFrameOptions() string
	XXSSProtection() string
}

// NewHandler sets the security headers on every response of next, right
// before the status line is written.
func NewHandler(source ConfigSource, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &headerWriter{ResponseWriter: w, source: source}

		next.ServeHTTP(writer, r)

		writer.apply()
	})
}

type headerWriter struct {
	http.ResponseWriter

	source  ConfigSource
	applied bool
}

func (w *headerWriter) WriteHeader(statusCode int) {
	w.apply()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *headerWriter) Write(b []byte) (int, error) {
	w.apply()

	return w.ResponseWriter.Write(b)
}

func (w *headerWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *headerWriter) apply() {
	if w.applied {
		return
	}

	w.applied = true

	header := w.Header()

	hsts := w.source.StrictTransportSecurity()
	if w.source.SSLEnabled() && hsts != "" {
		header.Set(HeaderStrictTransportSecurity, hsts)
	}

	frameOptions := w.source.XFrameOptions()
	if frameOptions != "" && header.Get(HeaderDenyOverrideXFrameOptions) == "" {
		header.Set(HeaderXFrameOptions, frameOptions)
	}

	header.Del(HeaderDenyOverrideXFrameOptions)

	xssProtection := w.source.XXSSProtection()
	if xssProtection != "" {
		header.Set(HeaderXXSSProtection, xssProtection)
	}
}
