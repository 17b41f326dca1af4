package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"port"`
	AIEndpoint     string   `mapstructure:"ai_endpoint"`
	Model          string   `mapstructure:"model"`
	EmbeddingModel string   `mapstructure:"embedding_model"`
	OpenAIAPIKey   string   `mapstructure:"OPENAI_API_KEY"`
	UploadDir      string   `mapstructure:"upload_dir"`
	LawsDir        string   `mapstructure:"laws_dir"`
	MaxFileSizeMB  int64    `mapstructure:"max_file_size_mb"`
	CorsOrigins    []string `mapstructure:"cors_origins"`
	ChunkSize      int      `mapstructure:"chunk_size"`
	ChunkOverlap   int      `mapstructure:"chunk_overlap"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "3001")
	v.SetDefault("ai_endpoint", "https://api.openai.com/v1")
	v.SetDefault("model", "gpt-3.5-turbo")
	v.SetDefault("embedding_model", "text-embedding-3-small")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("laws_dir", "backend_laws")
	v.SetDefault("max_file_size_mb", 20)
	v.SetDefault("cors_origins", []string{
		"http://127.0.0.1:5500",
		"http://localhost:5500",
		"http://localhost:3000",
	})
	v.SetDefault("chunk_size", 1000)
	v.SetDefault("chunk_overlap", 200)

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("port", "PORT")
	v.BindEnv("model", "OPENAI_MODEL")
	v.BindEnv("max_file_size_mb", "MAX_FILE_SIZE_MB")

	// A missing config file is fine, defaults and env cover everything.
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.ChunkOverlap >= config.ChunkSize {
		return nil, fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)", config.ChunkOverlap, config.ChunkSize)
	}

	return &config, nil
}
