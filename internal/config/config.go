package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Generation GenerationConfig `mapstructure:"generation"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Breaker    BreakerConfig    `mapstructure:"breaker"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS           CORSConfig `mapstructure:"cors"`
	MaxUploadBytes int        `mapstructure:"max_upload_bytes" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type GenerationConfig struct {
	Provider     string `mapstructure:"provider" validate:"oneof=gemini openai"`
	DefaultCount int    `mapstructure:"default_count" validate:"min=1"`
	MaxCount     int    `mapstructure:"max_count" validate:"gtefield=DefaultCount"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	BaseURL          string `mapstructure:"base_url" validate:"omitempty,url"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts" validate:"max=5"`
}

type BreakerConfig struct {
	MaxConsecutiveFailures uint32 `mapstructure:"max_consecutive_failures" validate:"min=1"`
	OpenTimeoutSeconds     int    `mapstructure:"open_timeout_seconds" validate:"min=1"`
}

type TemplatesConfig struct {
	PromptTemplate     string `mapstructure:"prompt_template" validate:"omitempty,file"`
	StudySheetTemplate string `mapstructure:"study_sheet_template" validate:"omitempty,file"`
	CardsPageTemplate  string `mapstructure:"cards_page_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	dotEnvFile string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cardsmith")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		dotEnvFile: ".env",
	}, nil
}

// WithDotEnvFile changes the .env file read before environment bindings are
// resolved. An empty path disables it.
func (loader *ConfigLoader) WithDotEnvFile(path string) *ConfigLoader {
	loader.dotEnvFile = path
	return loader
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	if loader.dotEnvFile != "" {
		// Variables already set in the environment win over the file
		if err := godotenv.Load(loader.dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", loader.dotEnvFile, err)
		}
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("generation.provider", ProviderGemini)
	v.SetDefault("generation.default_count", 10)
	v.SetDefault("generation.max_count", 50)
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_retry_attempts", 0)
	v.SetDefault("breaker.max_consecutive_failures", 5)
	v.SetDefault("breaker.open_timeout_seconds", 30)
	// Templates are optional - embedded templates are used when empty
	v.SetDefault("templates.prompt_template", "")
	v.SetDefault("templates.study_sheet_template", "")
	v.SetDefault("templates.cards_page_template", "")
	v.SetDefault("outputs.directory", "outputs")

	bindings := []struct {
		key string
		env string
	}{
		{key: "gemini.api_key", env: "GEMINI_API_KEY"},
		{key: "openai.api_key", env: "OPENAI_API_KEY"},
		{key: "openai.model", env: "OPENAI_MODEL"},
		{key: "generation.provider", env: "CARDSMITH_PROVIDER"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", binding.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
