package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHomeLifecycle(t *testing.T) {
	f := newTestRouter(t)

	recorder := postJSON(t, f.router, "/services", map[string]interface{}{
		"location": "Paris",
		"price":    100,
		"host":     map[string]string{"email": "h@x.com"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var created domain.Home
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())

	// fetch it back by the returned identifier
	req := httptest.NewRequest("GET", fmt.Sprintf("/service/%s", created.ID.Hex()), nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched domain.Home
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Paris", fetched.Location)
	assert.Equal(t, float64(100), fetched.Price)
	assert.Equal(t, "h@x.com", fetched.Host.Email)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/services/%s", created.ID.Hex()), nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	req = httptest.NewRequest("GET", fmt.Sprintf("/service/%s", created.ID.Hex()), nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateHome_Validation(t *testing.T) {
	f := newTestRouter(t)

	recorder := postJSON(t, f.router, "/services", map[string]interface{}{
		"price": 100,
		"host":  map[string]string{"email": "h@x.com"},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postJSON(t, f.router, "/services", map[string]interface{}{
		"location": "Paris",
		"price":    -5,
		"host":     map[string]string{"email": "h@x.com"},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetHome_BadId(t *testing.T) {
	f := newTestRouter(t)

	req := httptest.NewRequest("GET", "/service/not-an-id", nil)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateHome(t *testing.T) {
	f := newTestRouter(t)

	recorder := postJSON(t, f.router, "/services", map[string]interface{}{
		"location": "Paris",
		"price":    100,
		"host":     map[string]string{"email": "h@x.com"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var created domain.Home
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	payload, err := json.Marshal(map[string]interface{}{
		"id":       created.ID.Hex(),
		"location": "Paris",
		"price":    150,
		"host":     map[string]string{"email": "h@x.com"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/service", bytes.NewReader(payload))
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.UpdateResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.EqualValues(t, 1, result.MatchedCount)

	updated, err := f.homes.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(150), updated.Price)
}

func TestUpdateHome_MissingId(t *testing.T) {
	f := newTestRouter(t)

	payload, err := json.Marshal(map[string]interface{}{
		"location": "Paris",
		"price":    150,
		"host":     map[string]string{"email": "h@x.com"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/service", bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearch(t *testing.T) {
	f := newTestRouter(t)

	recorder := postJSON(t, f.router, "/services", map[string]interface{}{
		"location": "Paris",
		"price":    100,
		"host":     map[string]string{"email": "h@x.com"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	t.Run("match", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/search-result?location=Paris", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var homes []domain.Home
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &homes))
		assert.Len(t, homes, 1)
	})

	t.Run("no match is empty array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/search-result?location=Dhaka", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("missing location", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/search-result", nil)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["message"])
	})
}
