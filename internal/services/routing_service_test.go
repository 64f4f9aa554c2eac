package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dm "gompa/internal/models/domain_models"
	"gompa/pkg/utils"
)

func testStops() []dm.MonasteryStop {
	return []dm.MonasteryStop{
		{ID: "rumtek", Latitude: 27.2886, Longitude: 88.5615},
		{ID: "enchey", Latitude: 27.3360, Longitude: 88.6190},
	}
}

func newTestRouteClient(baseURL string) *OSRMRouteClient {
	return &OSRMRouteClient{
		HTTP:       &http.Client{Timeout: 5 * time.Second},
		BaseURL:    baseURL,
		Cache:      NewInMemoryRouteCache(),
		DefaultTTL: time.Hour,
		logger:     zap.NewNop(),
	}
}

func osrmPayload() map[string]interface{} {
	return map[string]interface{}{
		"code": "Ok",
		"routes": []map[string]interface{}{
			{
				"geometry": map[string]interface{}{
					"coordinates": [][]float64{{88.5615, 27.2886}, {88.6190, 27.3360}},
				},
				"distance": 23500.0,
				"duration": 3120.0,
			},
		},
	}
}

func TestOSRMRouteClient_ComputeRoute(t *testing.T) {
	t.Run("successful request flips coordinates", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Contains(t, r.URL.Path, "/route/v1/driving/")
			assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(osrmPayload())
		}))
		defer server.Close()

		client := newTestRouteClient(server.URL)
		route, err := client.ComputeRoute(context.Background(), testStops(), "driving")
		require.NoError(t, err)
		require.Len(t, route.Polyline, 2)
		// Waypoints go out as lng,lat and come back flipped for display.
		assert.Equal(t, 27.2886, route.Polyline[0].Lat)
		assert.Equal(t, 88.5615, route.Polyline[0].Lng)
		assert.Equal(t, 23500.0, route.DistanceMeters)
		assert.Equal(t, 3120.0, route.DurationSeconds)
		assert.Equal(t, 1, calls)
	})

	t.Run("second request hits the cache", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			json.NewEncoder(w).Encode(osrmPayload())
		}))
		defer server.Close()

		client := newTestRouteClient(server.URL)
		_, err := client.ComputeRoute(context.Background(), testStops(), "driving")
		require.NoError(t, err)
		_, err = client.ComputeRoute(context.Background(), testStops(), "driving")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("fewer than two stops needs no call", func(t *testing.T) {
		client := newTestRouteClient("http://127.0.0.1:1")
		route, err := client.ComputeRoute(context.Background(), testStops()[:1], "driving")
		require.NoError(t, err)
		assert.Empty(t, route.Polyline)
		assert.Zero(t, route.DistanceMeters)
	})

	t.Run("bad status surfaces as route unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestRouteClient(server.URL)
		_, err := client.ComputeRoute(context.Background(), testStops(), "driving")
		assert.ErrorIs(t, err, utils.ErrRouteUnavailable)
	})

	t.Run("non-Ok code surfaces as route unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"code": "NoRoute", "routes": []interface{}{}})
		}))
		defer server.Close()

		client := newTestRouteClient(server.URL)
		_, err := client.ComputeRoute(context.Background(), testStops(), "driving")
		assert.ErrorIs(t, err, utils.ErrRouteUnavailable)
	})

	t.Run("unknown travel mode rejected", func(t *testing.T) {
		client := newTestRouteClient("http://127.0.0.1:1")
		_, err := client.ComputeRoute(context.Background(), testStops(), "teleport")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("network error surfaces as route unavailable", func(t *testing.T) {
		client := newTestRouteClient("http://127.0.0.1:1")
		_, err := client.ComputeRoute(context.Background(), testStops(), "driving")
		assert.ErrorIs(t, err, utils.ErrRouteUnavailable)
	})
}
