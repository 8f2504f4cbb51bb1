package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "coffeehouse/coffee-svc/internal/api/http"
	"coffeehouse/coffee-svc/internal/domain"
	"coffeehouse/coffee-svc/internal/service"
	"coffeehouse/coffee-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionResponse struct {
	SessionID string             `json:"session_id"`
	Item      domain.CatalogItem `json:"item"`
	Selection domain.Selection   `json:"selection"`
	State     string             `json:"state"`
	Location  string             `json:"location"`
	Back      string             `json:"back"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	_, client := newRedisClient(t)
	catalog := service.NewCatalogService(storage.NewStaticCatalog(), storage.NewRedisCache(client, time.Minute), nil)
	sessions := service.NewSessionManager(
		catalog,
		storage.NewRedisOrderState(client, time.Hour),
		storage.NewRedisFlashStore(client, time.Hour, nil),
		nil,
		time.Hour,
		nil,
	)
	return httpapi.NewRouter(httpapi.NewHandler(catalog, sessions, nil))
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func openTestSession(t *testing.T, router http.Handler, itemID string) sessionResponse {
	t.Helper()
	w := doRequest(router, "POST", "/api/coffees/"+itemID+"/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var session sessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
	return session
}

func TestGetCoffeeHandler(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode int
		wantName string
	}{
		{name: "found", id: "1", wantCode: http.StatusOK, wantName: "Capuccino"},
		{name: "unknown id", id: "999", wantCode: http.StatusNotFound},
		{name: "zero id", id: "0", wantCode: http.StatusNotFound},
		{name: "not a number", id: "abc", wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router := newTestRouter(t)

			w := doRequest(router, "GET", "/api/coffees/"+testCase.id, "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantName != "" {
				var item domain.CatalogItem
				require.NoError(t, json.NewDecoder(w.Body).Decode(&item))
				assert.Equal(t, testCase.wantName, item.Name)
			}
		})
	}
}

func TestCatalogHandlers(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, "GET", "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var categories []string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
	assert.Equal(t, []string{"popular", "latte", "espresso"}, categories)

	w = doRequest(router, "GET", "/api/categories/espresso/coffees", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []domain.CatalogItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	assert.Len(t, items, 7)

	w = doRequest(router, "GET", "/api/categories/tea/coffees", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOptionsHandler(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, "GET", "/api/options", "")
	require.Equal(t, http.StatusOK, w.Code)

	var options struct {
		Sizes []struct {
			Measure     string  `json:"measure"`
			Description string  `json:"description"`
			Surcharge   float64 `json:"surcharge"`
		} `json:"sizes"`
		Milks    []domain.MilkOption    `json:"milks"`
		Toppings []domain.ToppingOption `json:"toppings"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&options))

	require.Len(t, options.Sizes, 3)
	assert.Equal(t, "large", options.Sizes[2].Description)
	assert.Equal(t, 25.0, options.Sizes[2].Surcharge)
	assert.Len(t, options.Milks, 3)
	assert.Len(t, options.Toppings, 5)
}

func TestSelectOptionHandlers(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{name: "valid size", path: "/size", body: `{"description":"large"}`, wantCode: http.StatusOK},
		{name: "unknown size", path: "/size", body: `{"description":"huge"}`, wantCode: http.StatusBadRequest},
		{name: "valid milk", path: "/milk", body: `{"type":"Oat Milk"}`, wantCode: http.StatusOK},
		{name: "unknown milk", path: "/milk", body: `{"type":"Goat Milk"}`, wantCode: http.StatusBadRequest},
		{name: "valid topping", path: "/topping", body: `{"type":"Mint"}`, wantCode: http.StatusOK},
		{name: "unknown topping", path: "/topping", body: `{"type":"Ketchup"}`, wantCode: http.StatusBadRequest},
		{name: "invalid JSON", path: "/size", body: `{invalid}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router := newTestRouter(t)
			session := openTestSession(t, router, "1")

			w := doRequest(router, "PUT", "/api/sessions/"+session.SessionID+testCase.path, testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCustomizationFlow(t *testing.T) {
	router := newTestRouter(t)

	session := openTestSession(t, router, "1")
	assert.Equal(t, "Capuccino", session.Item.Name)
	assert.Equal(t, "idle", session.State)
	assert.Equal(t, "/dashboard", session.Back)

	// Submitting without a size is rejected and leaves a warning banner.
	w := doRequest(router, "POST", "/api/sessions/"+session.SessionID+"/submit", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rejected service.SubmitResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rejected))
	assert.Equal(t, service.StateRejected, rejected.State)
	assert.Nil(t, rejected.Order)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID+"/flash", "")
	require.Equal(t, http.StatusOK, w.Code)
	var flashes []domain.Notification
	require.NoError(t, json.NewDecoder(w.Body).Decode(&flashes))
	require.Len(t, flashes, 1)
	assert.Equal(t, "Kindly select atleast the size option", flashes[0].Message)
	assert.Equal(t, domain.LevelWarning, flashes[0].Level)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID+"/checkout", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "PUT", "/api/sessions/"+session.SessionID+"/size", `{"description":"large"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var priced sessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&priced))
	assert.Equal(t, 275.0, priced.Selection.TotalPrice)
	assert.Equal(t, "pricing", priced.State)

	w = doRequest(router, "PUT", "/api/sessions/"+session.SessionID+"/milk", `{"type":"Soya Milk"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "POST", "/api/sessions/"+session.SessionID+"/submit", "")
	require.Equal(t, http.StatusOK, w.Code)
	var accepted service.SubmitResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&accepted))
	assert.Equal(t, service.StateAccepted, accepted.State)
	assert.Equal(t, "/checkout", accepted.Redirect)
	assert.Equal(t, &domain.OrderParameters{Name: "Capuccino", Size: "large", Milk: "Soya Milk", Price: 275}, accepted.Order)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var after sessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&after))
	assert.Equal(t, "/checkout", after.Location)
	assert.Equal(t, 0.0, after.Selection.TotalPrice)
	assert.Nil(t, after.Selection.Size)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID+"/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	var checkout domain.OrderParameters
	require.NoError(t, json.NewDecoder(w.Body).Decode(&checkout))
	assert.Equal(t, 275.0, checkout.Price)
	assert.Empty(t, checkout.Topping)
}

func TestSelectAfterSubmitClearsLocation(t *testing.T) {
	type testCase struct {
		name string
		path string
		body string
	}

	cases := []testCase{
		{name: "size", path: "/size", body: `{"description":"medium"}`},
		{name: "milk", path: "/milk", body: `{"type":"Oat Milk"}`},
		{name: "topping", path: "/topping", body: `{"type":"Caramel"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)
			session := openTestSession(t, router, "1")
			base := "/api/sessions/" + session.SessionID

			w := doRequest(router, "PUT", base+"/size", `{"description":"small"}`)
			require.Equal(t, http.StatusOK, w.Code)
			w = doRequest(router, "POST", base+"/submit", "")
			require.Equal(t, http.StatusOK, w.Code)

			w = doRequest(router, "GET", base, "")
			var submitted sessionResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&submitted))
			require.Equal(t, "/checkout", submitted.Location)

			w = doRequest(router, "PUT", base+tc.path, tc.body)
			require.Equal(t, http.StatusOK, w.Code)
			var selected sessionResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&selected))
			assert.Empty(t, selected.Location)

			w = doRequest(router, "GET", base, "")
			var after sessionResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&after))
			assert.Empty(t, after.Location)
		})
	}
}

func TestSessionLifecycleHandlers(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, "POST", "/api/coffees/999/sessions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	session := openTestSession(t, router, "13")

	w = doRequest(router, "POST", "/api/sessions/"+session.SessionID+"/refresh", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "DELETE", "/api/sessions/"+session.SessionID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "GET", "/api/sessions/"+session.SessionID+"/flash", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "POST", "/api/sessions/"+session.SessionID+"/submit", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, "GET", "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "coffee-svc", body["service"])
}
