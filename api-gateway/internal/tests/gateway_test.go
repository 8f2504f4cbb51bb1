package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coffeehouse/api-gateway/internal/gateway"
	"coffeehouse/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Upstreams(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{
			name:    "catalog",
			method:  http.MethodGet,
			path:    "/api/coffees/1",
			wantURL: "http://coffee-svc/api/coffees/1",
		},
		{
			name:    "session submit",
			method:  http.MethodPost,
			path:    "/api/sessions/abc/submit",
			wantURL: "http://coffee-svc/api/sessions/abc/submit",
		},
		{
			name:    "session checkout readback stays on coffee-svc",
			method:  http.MethodGet,
			path:    "/api/sessions/abc/checkout",
			wantURL: "http://coffee-svc/api/sessions/abc/checkout",
		},
		{
			name:    "checkout orders",
			method:  http.MethodGet,
			path:    "/api/checkout/orders?limit=5",
			wantURL: "http://checkout-svc/api/checkout/orders?limit=5",
		},
		{
			name:    "receipt QR",
			method:  http.MethodGet,
			path:    "/api/checkout/orders/4/qrcode",
			wantURL: "http://checkout-svc/api/checkout/orders/4/qrcode",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				CoffeeSvcURL:   "http://coffee-svc",
				CheckoutSvcURL: "http://checkout-svc",
			}, mockClient, nil)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.wantURL
			})).Return(jsonResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestGateway_RouteHandler_PassesUpstreamStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{CoffeeSvcURL: "http://coffee-svc"}, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusNotFound, "Coffee not found\n"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/coffees/999", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Coffee not found")
}

func TestGateway_RouteHandler_DropsHopByHopHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{CoffeeSvcURL: "http://coffee-svc"}, mockClient, nil)

	upstream := jsonResponse(http.StatusOK, `{"status":"ok"}`)
	upstream.Header.Set("Connection", "close")
	upstream.Header.Set("Keep-Alive", "timeout=5")
	upstream.Header.Set("X-Request-Id", "abc")

	var forwarded http.Header
	mockClient.On("Do", mock.Anything).
		Run(func(args mock.Arguments) {
			forwarded = args.Get(0).(*http.Request).Header
		}).
		Return(upstream, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/coffees/1", nil)
	req.Header.Set("Connection", "keep-alive, X-Session-Hop")
	req.Header.Set("X-Session-Hop", "1")
	req.Header.Set("Proxy-Authorization", "Basic c2VjcmV0")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, forwarded)
	assert.Empty(t, forwarded.Get("Connection"))
	assert.Empty(t, forwarded.Get("X-Session-Hop"))
	assert.Empty(t, forwarded.Get("Proxy-Authorization"))
	assert.Empty(t, forwarded.Get("Upgrade"))
	assert.Equal(t, "Bearer token", forwarded.Get("Authorization"))

	assert.Empty(t, rr.Header().Get("Connection"))
	assert.Empty(t, rr.Header().Get("Keep-Alive"))
	assert.Equal(t, "abc", rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CheckoutSvcURL: "http://invalid",
	}, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_SPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=\"app\"></div>"), 0o644))

	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, mockClient, nil)

	for _, path := range []string{"/dashboard", "/checkout", "/coffee/3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		gw.SetupRoutes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "id=\"app\"", path)
	}
	mockClient.AssertNotCalled(t, "Do", mock.Anything)
}
