package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsRequest(h http.Handler, method, origin string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/orders", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSConfig{
		AllowOrigins: []string{"https://Shop.example.com"},
		AllowHeaders: []string{"Content-Type", "api_key"},
		MaxAge:       600,
	})(okHandler())

	w := corsRequest(h, http.MethodOptions, "https://shop.example.com", map[string]string{
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://Shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, api_key", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
	assert.ElementsMatch(t,
		[]string{"Origin", "Access-Control-Request-Method", "Access-Control-Request-Headers"},
		w.Header().Values("Vary"))

	w = corsRequest(h, http.MethodOptions, "https://evil.example.com", map[string]string{
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightEchoesRequestedHeaders(t *testing.T) {
	h := CORS(CORSConfig{MaxAge: -1})(okHandler())

	w := corsRequest(h, http.MethodOptions, "https://any.example.com", map[string]string{
		"Access-Control-Request-Method":  http.MethodPut,
		"Access-Control-Request-Headers": "api_key, content-type",
	})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "api_key, content-type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "0", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_ActualRequest(t *testing.T) {
	h := CORS(CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		ExposeHeaders:    []string{RequestIDHeader, "Retry-After"},
	})(okHandler())

	w := corsRequest(h, http.MethodGet, "https://shop.example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"), "credentials echo the origin")
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "X-Request-ID, Retry-After", w.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_NoOrigin(t *testing.T) {
	open := CORS(CORSConfig{})(okHandler())
	w := corsRequest(open, http.MethodGet, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Vary"))

	restricted := CORS(CORSConfig{AllowOrigins: []string{"https://shop.example.com"}})(okHandler())
	w = corsRequest(restricted, http.MethodGet, "", nil)
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
