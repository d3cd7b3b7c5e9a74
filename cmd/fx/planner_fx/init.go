package planner_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideFactsProvider,
	ProvidePlannerService,
	ProvidePlannerController)

// ProvideGenerationClient builds the Gemini client. A missing GEMINI_API_KEY
// is a startup failure, not a per-request surprise.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	model := getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	timeout := getEnvSeconds("GENERATION_TIMEOUT_SECONDS", 60)

	log.Printf("Initializing Gemini generation client with model: %s", model)
	return utils.NewGeminiGenerationClient(apiKey, model, timeout)
}

func ProvideFactsProvider() services.DestinationFactsProvider {
	timeout := getEnvSeconds("FACTS_TIMEOUT_SECONDS", 10)
	ttl := getEnvSeconds("FACTS_CACHE_TTL_SECONDS", 1800)

	provider := services.NewHTTPFactsProvider(timeout)
	return services.NewCachedFactsProvider(provider, memcache.NewFactsCache(ttl))
}

func ProvidePlannerService(
	generator utils.GenerationClientInterface,
	facts services.DestinationFactsProvider,
) services.PlannerServiceInterface {
	return services.NewPlannerService(generator, facts)
}

func ProvidePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
