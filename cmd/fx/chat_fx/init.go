package chat_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideChatService,
	ProvideChatController)

func ProvideChatService() (services.ChatServiceInterface, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}
	model := os.Getenv("OPENAI_MODEL")

	return services.NewChatService(apiKey, model)
}

func ProvideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
