package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gompa/internal/models/request_models"
	"gompa/internal/services"
)

// AssistantController proxies the three AI endpoints. Their request and
// response shapes are a fixed wire contract consumed by the app's chat
// widgets, so replies are emitted raw rather than in the API envelope.
type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// TextChat handles POST /ai/text: {message, context?} in, {reply} out.
// Failures are a 500 with a plain text body.
func (a *AssistantController) TextChat(c *gin.Context) {
	var req request_models.TextChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.String(http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.assistantService.AskText(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		log.Printf("AI text error: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// AudioChat handles POST /ai/audio: a multipart audio upload in,
// {transcript, reply} out, 500 {error} on failure. A transcript without a
// reply is reported as total failure.
func (a *AssistantController) AudioChat(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer file.Close()

	transcript, reply, err := a.assistantService.AskAudio(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		log.Printf("AI audio error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audio processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": transcript, "reply": reply})
}

// ImageChat handles POST /ai/image: a multipart image upload in,
// {caption, reply} out, 500 {error} on failure.
func (a *AssistantController) ImageChat(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}

	caption, reply, err := a.assistantService.AskImage(c.Request.Context(), fileHeader.Header.Get("Content-Type"), image)
	if err != nil {
		log.Printf("AI image error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"caption": caption, "reply": reply})
}
