package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the server configuration.
// Priority: ENV > YAML > defaults (via env-default tags).
type Config struct {
	Host      string `yaml:"host"       env:"SERVER_HOST"  env-default:"0.0.0.0"`
	Port      int    `yaml:"port"       env:"SERVER_PORT"  env-default:"8080"`
	VocabPath string `yaml:"vocab_path" env:"VOCAB_PATH"   env-required:"true"`

	// RedisURL enables the shared translation cache when set.
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	CacheTTL int    `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"3600"`

	// OpenAIKey enables the suggestion backend when set.
	OpenAIKey   string `yaml:"openai_key"   env:"OPENAI_API_KEY"`
	OpenAIModel string `yaml:"openai_model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

// LoadConfig reads configuration from a YAML file and environment variables.
// The file path comes from CONFIG_PATH (fallback "./config.yaml"); when the
// fallback file does not exist, ENV + defaults alone are used.
func LoadConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
