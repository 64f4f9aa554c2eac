package request_models

// TextChatRequest matches the wire contract of POST /ai/text; the payload
// shape is fixed and not wrapped in the usual API envelope.
type TextChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}
