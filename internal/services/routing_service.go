package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	dm "gompa/internal/models/domain_models"
	"gompa/internal/models/response_models"
	"gompa/pkg/utils"
)

// --------- In-memory cache keyed by (mode, waypoint ids) ---------

type routeKey struct {
	Mode      string
	Waypoints string // stable POI ids joined with ";"
}

type routeCacheEntry struct {
	Route     response_models.RouteResponse
	ExpiresAt time.Time
}

type RouteCache interface {
	Get(k routeKey) (response_models.RouteResponse, bool)
	Set(k routeKey, v response_models.RouteResponse, ttl time.Duration)
}

type inMemoryRouteCache struct {
	mu    sync.RWMutex
	store map[routeKey]routeCacheEntry
}

func NewInMemoryRouteCache() RouteCache {
	return &inMemoryRouteCache{store: make(map[routeKey]routeCacheEntry)}
}

func (c *inMemoryRouteCache) Get(k routeKey) (response_models.RouteResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return response_models.RouteResponse{}, false
	}
	return it.Route, true
}

func (c *inMemoryRouteCache) Set(k routeKey, v response_models.RouteResponse, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = routeCacheEntry{Route: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- OSRM route client ---------------

// RoutingServiceInterface fetches a polyline plus distance/duration for an
// ordered waypoint list from the external routing service. The service's
// internal algorithm is not ours; this is a boundary only.
type RoutingServiceInterface interface {
	ComputeRoute(ctx context.Context, stops []dm.MonasteryStop, mode string) (*response_models.RouteResponse, error)
}

type OSRMRouteClient struct {
	HTTP       *http.Client
	BaseURL    string
	Cache      RouteCache
	DefaultTTL time.Duration
	logger     *zap.Logger
}

func NewOSRMRouteClient(cache RouteCache, logger *zap.Logger) *OSRMRouteClient {
	baseURL := os.Getenv("ROUTING_BASE_URL")
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		BaseURL:    baseURL,
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
		logger:     logger,
	}
}

var validModes = map[string]bool{"driving": true, "walking": true, "cycling": true}

func (c *OSRMRouteClient) ComputeRoute(ctx context.Context, stops []dm.MonasteryStop, mode string) (*response_models.RouteResponse, error) {
	if mode == "" {
		mode = "driving"
	}
	if !validModes[mode] {
		return nil, utils.ErrInvalidInput
	}
	if len(stops) < 2 {
		// Nothing to route between; the map shows markers only.
		return &response_models.RouteResponse{Mode: mode, Polyline: []response_models.LatLng{}}, nil
	}

	ids := make([]string, len(stops))
	for i, s := range stops {
		ids[i] = s.ID
	}
	key := routeKey{Mode: mode, Waypoints: strings.Join(ids, ";")}
	if cached, ok := c.Cache.Get(key); ok {
		return &cached, nil
	}

	// Waypoints go out in lng,lat order, semicolon separated.
	coords := make([]string, len(stops))
	for i, s := range stops {
		coords[i] = fmt.Sprintf("%f,%f", s.Longitude, s.Latitude)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base url: %v", utils.ErrRouteUnavailable, err)
	}
	u.Path = fmt.Sprintf("/route/v1/%s/%s", mode, strings.Join(coords, ";"))
	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	u.RawQuery = q.Encode()

	c.logger.Debug("Calling routing service",
		zap.String("mode", mode),
		zap.Int("waypoints", len(stops)))

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Error("Routing request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		c.logger.Error("Routing service bad status", zap.String("status", resp.Status))
		return nil, fmt.Errorf("%w: status %s", utils.ErrRouteUnavailable, resp.Status)
	}

	var payload struct {
		Code   string `json:"code"`
		Routes []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrRouteUnavailable, err)
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, fmt.Errorf("%w: code=%s routes=%d", utils.ErrRouteUnavailable, payload.Code, len(payload.Routes))
	}

	route := payload.Routes[0]
	polyline := make([]response_models.LatLng, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		// Flip lng,lat to lat,lng for display.
		polyline = append(polyline, response_models.LatLng{Lat: pair[1], Lng: pair[0]})
	}

	out := response_models.RouteResponse{
		Mode:            mode,
		Polyline:        polyline,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}
	c.Cache.Set(key, out, c.DefaultTTL)
	return &out, nil
}
