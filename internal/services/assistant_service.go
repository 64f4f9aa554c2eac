package services

import (
	"context"
	"fmt"
	"io"

	"gompa/pkg/utils"
)

// AssistantServiceInterface is the backend side of the AI proxy: one call
// in, text out, or failure. No conversation state, no retries; a partial
// success (transcript without reply) is reported as total failure.
type AssistantServiceInterface interface {
	AskText(ctx context.Context, message, travelContext string) (string, error)
	AskAudio(ctx context.Context, filename string, audio io.Reader) (transcript, reply string, err error)
	AskImage(ctx context.Context, mimeType string, image []byte) (caption, reply string, err error)
}

type AssistantService struct {
	chat   utils.AssistantClientInterface
	vision utils.VisionClientInterface
}

func NewAssistantService(chat utils.AssistantClientInterface, vision utils.VisionClientInterface) AssistantServiceInterface {
	return &AssistantService{
		chat:   chat,
		vision: vision,
	}
}

func (s *AssistantService) AskText(ctx context.Context, message, travelContext string) (string, error) {
	reply, err := s.chat.Chat(ctx, message, travelContext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	return reply, nil
}

func (s *AssistantService) AskAudio(ctx context.Context, filename string, audio io.Reader) (string, string, error) {
	transcript, err := s.chat.Transcribe(ctx, filename, audio)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	reply, err := s.chat.Chat(ctx, transcript, "")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	return transcript, reply, nil
}

func (s *AssistantService) AskImage(ctx context.Context, mimeType string, image []byte) (string, string, error) {
	caption, err := s.vision.Caption(ctx, mimeType, image)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	reply, err := s.chat.Chat(ctx, "Tell me about this: "+caption, "")
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	return caption, reply, nil
}
