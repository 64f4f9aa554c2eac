package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// VisionClientInterface captions an uploaded image.
type VisionClientInterface interface {
	Caption(ctx context.Context, mimeType string, image []byte) (string, error)
}

// GeminiVisionClient implements VisionClientInterface using Google's
// Gemini models.
type GeminiVisionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiVisionClient(apiKey, model string) (VisionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiVisionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiVisionClient) Caption(ctx context.Context, mimeType string, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("empty image")
	}

	// genai wants the bare format ("jpeg"), not the full MIME type.
	format := "jpeg"
	if strings.HasPrefix(mimeType, "image/") {
		format = strings.TrimPrefix(mimeType, "image/")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)

	prompt := "Describe this photo in one or two sentences. " +
		"If it shows a monastery, temple or landmark of Sikkim, name it."

	resp, err := m.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
