package response_models

// LatLng is a display-order coordinate pair. The routing service answers
// in lng,lat order; the client flips each pair before it reaches here.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteResponse struct {
	Mode            string   `json:"mode"`
	Polyline        []LatLng `json:"polyline"`
	DistanceMeters  float64  `json:"distance_meters"`
	DurationSeconds float64  `json:"duration_seconds"`
}
