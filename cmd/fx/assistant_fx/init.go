package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"gompa/internal/services"
	"gompa/pkg/utils"
)

var Module = fx.Provide(provideChatClient, provideVisionClient, provideAssistantService)

func provideChatClient() utils.AssistantClientInterface {
	return utils.NewOpenAIAssistantClient()
}

func provideVisionClient() utils.VisionClientInterface {
	client, err := utils.NewGeminiVisionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	return client
}

func provideAssistantService(
	chat utils.AssistantClientInterface,
	vision utils.VisionClientInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(chat, vision)
}
