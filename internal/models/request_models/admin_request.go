package request_models

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpsertMonasteryRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Era         string  `json:"era"`
	Founded     int     `json:"founded"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	AudioURL    string  `json:"audio_url"`
}

type CreateEventRequest struct {
	ID            string `json:"id"`
	Title         string `json:"title" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Location      string `json:"location"`
	Description   string `json:"description"`
	MonasteryName string `json:"monastery_name"`
}
