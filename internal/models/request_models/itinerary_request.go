package request_models

type AddMonasteryRequest struct {
	MonasteryID string `json:"monastery_id" binding:"required"`
}

type AddEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

type ReorderRequest struct {
	SourceID string `json:"source_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
}
