package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(Options{
		BaseURL:      srv.URL,
		APIKey:       "test-key",
		Radius:       1000,
		StrictBounds: true,
	}, logger)
}

func TestClient_Autocomplete_OK(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"input":        q.Get("input"),
			"radius":       q.Get("radius"),
			"strictbounds": q.Get("strictbounds"),
			"api_key":      q.Get("api_key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"predictions": [
				{"place_id": "p1", "description": "Pizza Town", "geometry": {"location": {"lat": 25.0, "lng": 121.5}}},
				{"place_id": "p2", "description": "Pizza Corner"}
			]
		}`))
	})

	suggestions, err := client.Autocomplete(context.Background(), "pizza")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Pizza Town", suggestions[0].Description)
	assert.Equal(t, 25.0, suggestions[0].Latitude)

	// The provider is called with the configured radius, bounds and key.
	assert.Equal(t, map[string]string{
		"input":        "pizza",
		"radius":       "1000",
		"strictbounds": "true",
		"api_key":      "test-key",
	}, gotQuery)
}

func TestClient_Autocomplete_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS"}`))
	})

	suggestions, err := client.Autocomplete(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestClient_Autocomplete_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	})

	_, err := client.Autocomplete(context.Background(), "pizza")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GEOCODING_UPSTREAM", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "REQUEST_DENIED")
}

func TestClient_Autocomplete_ProviderErrorMessagePassedThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error_message": "quota exceeded"}`))
	})

	_, err := client.Autocomplete(context.Background(), "pizza")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "quota exceeded", appErr.Details())
}

func TestClient_Autocomplete_TimeoutIsGatewayTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	// Shrink the client timeout so the test stays fast.
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Autocomplete(context.Background(), "pizza")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GEOCODING_TIMEOUT", appErr.ErrorCode())
}

func TestClient_ReverseGeocode_FormattedResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25.033,121.5654", r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{"results": [{
			"formatted_address": "1 Main St",
			"address_components": [
				{"long_name": "No. 1"},
				{"long_name": "Taiwan"},
				{"long_name": "x"},
				{"long_name": "y"},
				{"long_name": "Taipei"}
			]
		}]}`))
	})

	resolved, err := client.ReverseGeocode(context.Background(), 25.033, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", resolved.Address)
	assert.Equal(t, "Taipei", resolved.City)
	assert.Equal(t, "Taiwan", resolved.State)
	assert.Equal(t, 25.033, resolved.Latitude)
	assert.Equal(t, 121.5654, resolved.Longitude)
}

func TestClient_ReverseGeocode_NoAddressFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoAddressForCoordinates))
}
