package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// AssistantClientInterface is the chat/transcription side of the AI
// boundary. Each call is independent; no conversation state is kept.
type AssistantClientInterface interface {
	Chat(ctx context.Context, message string, travelContext string) (string, error)
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

const assistantSystemPrompt = "You are a travel guide for the monasteries of Sikkim. " +
	"Answer briefly and factually about monasteries, festivals, travel logistics and local culture."

type OpenAIAssistantClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistantClient() AssistantClientInterface {
	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistantClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  model,
	}
}

func (c *OpenAIAssistantClient) Chat(ctx context.Context, message string, travelContext string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("empty message")
	}

	system := assistantSystemPrompt
	if travelContext != "" {
		system = system + "\nContext: " + travelContext
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIAssistantClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return resp.Text, nil
}
