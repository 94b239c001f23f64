package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	HTTPAddress string

	MongoURL string

	OpenAIAPIKey   string
	EmbeddingModel string

	TokenizerURL string

	SimilarityThreshold float64
	ProbeTimeout        time.Duration
	ProbeConcurrency    int
}

// Load reads configuration from an optional jugger_config.yaml and
// environment variables, applying defaults and validating required fields.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":         "HTTP_ADDRESS",
		"MongoURL":            "MONGO_URL",
		"OpenAIAPIKey":        "OPENAI_API_KEY",
		"EmbeddingModel":      "EMBEDDING_MODEL",
		"TokenizerURL":        "TOKENIZER_URL",
		"SimilarityThreshold": "SIMILARITY_THRESHOLD",
		"ProbeTimeout":        "PROBE_TIMEOUT",
		"ProbeConcurrency":    "PROBE_CONCURRENCY",
	}
	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("jugger_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.jugger")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("EmbeddingModel", "text-embedding-3-small")
	v.SetDefault("SimilarityThreshold", 0.5)
	v.SetDefault("ProbeTimeout", "5s")
	v.SetDefault("ProbeConcurrency", 20)
}

func validate(config *Config) error {
	var missing []string

	if config.MongoURL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if config.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if config.TokenizerURL == "" {
		missing = append(missing, "TOKENIZER_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
