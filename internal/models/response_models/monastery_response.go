package response_models

type MonasteryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Era         string  `json:"era"`
	Founded     int     `json:"founded,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	AudioURL    string  `json:"audio_url,omitempty"`
}
