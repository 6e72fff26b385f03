package mapdata

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerResponse struct {
	Data []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	} `json:"data"`
}

func testStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, store.LoadCities(strings.NewReader(`{"London": [-0.12, 51.5], "Lyon": [4.83, 45.76], "Paris": [2.35, 48.85]}`)))
	require.NoError(t, store.LoadMaps(strings.NewReader(`{"北京": ["maps/beijing", "js"], "上海": ["maps/shanghai", "js"]}`)))
	return store
}

func serve(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, handlerResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var payload handlerResponse
	if rec.Code == http.StatusOK && method == http.MethodGet {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	}
	return rec, payload
}

func TestCitiesHandler(t *testing.T) {
	h := New(WithStore(testStore(t))).Handler()

	rec, payload := serve(t, h, http.MethodGet, "/api/mapdata/cities?q=l&limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "Lyon", payload.Data[0].Name)
	assert.JSONEq(t, `[4.83, 45.76]`, string(payload.Data[0].Value))
	assert.Equal(t, "London", payload.Data[1].Name)
}

func TestMapsHandler(t *testing.T) {
	h := New(WithStore(testStore(t))).Handler()

	_, payload := serve(t, h, http.MethodGet, "/api/mapdata/maps?q=beij")
	require.Len(t, payload.Data, 1)
	assert.Equal(t, "beijing", payload.Data[0].Name)
	assert.JSONEq(t, `"maps/beijing.js"`, string(payload.Data[0].Value))

	_, payload = serve(t, h, http.MethodGet, "/api/mapdata/maps?q=nothing-like-it")
	assert.NotNil(t, payload.Data)
	assert.Empty(t, payload.Data)
}

func TestHandlerLimitClamped(t *testing.T) {
	h := NewHandler(KindCities, WithStore(testStore(t)), WithMaxLimit(1))
	_, payload := serve(t, h, http.MethodGet, "/?limit=50")
	assert.Len(t, payload.Data, 1)
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(KindMaps, WithStore(testStore(t)))
	rec, _ := serve(t, h, http.MethodPost, "/")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestHandlerGuard(t *testing.T) {
	h := NewHandler(KindMaps,
		WithStore(testStore(t)),
		WithGuard(func(*http.Request) error {
			return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no token")}
		}),
	)
	rec, _ := serve(t, h, http.MethodGet, "/")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h = NewHandler(KindMaps, WithStore(testStore(t)), WithGuard(func(*http.Request) error { return errors.New("nope") }))
	rec, _ = serve(t, h, http.MethodGet, "/")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	patterns, err := RegisterRoutes(mux, "/v1/", WithStore(testStore(t)))
	require.NoError(t, err)
	assert.Equal(t, []string{"/v1/api/mapdata/cities", "/v1/api/mapdata/maps"}, patterns)

	_, err = RegisterRoutes(nil, "")
	require.Error(t, err)
}
