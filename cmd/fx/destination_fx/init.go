package destination_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideDestinationEmbeddingRepo,
	ProvideEmbeddingClient,
	provideDestinationService)

// EmbeddingConfig holds configuration for embedding clients
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationEmbeddingRepo(db *gorm.DB) repositories.IDestinationEmbeddingRepository {
	return repositories.NewDestinationEmbeddingRepository(db)
}

// ProvideEmbeddingClient creates an embedding client based on environment variables
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getEmbeddingConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.Model)

	return utils.NewEmbeddingClient(config.Provider, config.APIKey, config.Model)
}

func provideDestinationService(
	destinationRepo repositories.DestinationRepository,
	embeddingRepo repositories.IDestinationEmbeddingRepository,
	embeddings utils.EmbeddingClientInterface,
) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, embeddingRepo, embeddings)
}

// getEmbeddingConfig reads configuration from environment variables.
// The local provider needs no key and keeps suggestions usable in dev.
func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "local")

	var apiKey, model string

	if strings.ToLower(provider) == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	}

	return EmbeddingConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
