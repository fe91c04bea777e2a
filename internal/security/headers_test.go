package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openshift-assisted/cluster-resources/internal/security"
)

type staticSource struct {
	ssl           bool
	hsts          string
	frameOptions  string
	xssProtection string
}

func (s staticSource) SSLEnabled() bool                { return s.ssl }
func (s staticSource) StrictTransportSecurity() string { return s.hsts }
func (s staticSource) XFrameOptions() string           { return s.frameOptions }
func (s staticSource) XXSSProtection() string          { return s.xssProtection }

var defaultSource = staticSource{
	ssl:           true,
	hsts:          "max-age=31536000",
	frameOptions:  "DENY",
	xssProtection: "1; mode=block",
}

func serve(source security.ConfigSource, next http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/Host", nil)

	security.NewHandler(source, next).ServeHTTP(rec, req)

	return rec
}

func TestHeadersAreSet(t *testing.T) {
	rec := serve(defaultSource, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=31536000", rec.Header().Get(security.HeaderStrictTransportSecurity))
	assert.Equal(t, "DENY", rec.Header().Get(security.HeaderXFrameOptions))
	assert.Equal(t, "1; mode=block", rec.Header().Get(security.HeaderXXSSProtection))
}

func TestOverrideFlagKeepsFrameOptions(t *testing.T) {
	rec := serve(defaultSource, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(security.HeaderDenyOverrideXFrameOptions, "true")
		w.Header().Set(security.HeaderXFrameOptions, "SAMEORIGIN")
		w.WriteHeader(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(security.HeaderXFrameOptions))
	assert.Empty(t, rec.Header().Get(security.HeaderDenyOverrideXFrameOptions), "flag is not sent")
	assert.Equal(t, "max-age=31536000", rec.Header().Get(security.HeaderStrictTransportSecurity), "other headers still set")
}

func TestNoHSTSWithoutSSL(t *testing.T) {
	source := defaultSource
	source.ssl = false

	rec := serve(source, func(http.ResponseWriter, *http.Request) {})

	assert.Empty(t, rec.Header().Get(security.HeaderStrictTransportSecurity))
	assert.Equal(t, "DENY", rec.Header().Get(security.HeaderXFrameOptions), "headers set even without body")
}

func TestEmptyValuesAreNotSent(t *testing.T) {
	rec := serve(staticSource{ssl: true}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, header := range []string{security.HeaderStrictTransportSecurity, security.HeaderXFrameOptions, security.HeaderXXSSProtection} {
		_, ok := rec.Header()[header]
		assert.False(t, ok, header)
	}
}
