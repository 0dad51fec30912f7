package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			CORS:           CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			MaxUploadBytes: 10 << 20,
		},
		Generation: GenerationConfig{
			Provider:     ProviderGemini,
			DefaultCount: 10,
			MaxCount:     50,
		},
		Gemini: GeminiConfig{Model: "gemini-2.5-flash"},
		OpenAI: OpenAIConfig{Model: "gpt-4o-mini"},
		Breaker: BreakerConfig{
			MaxConsecutiveFailures: 5,
			OpenTimeoutSeconds:     30,
		},
		Outputs: OutputsConfig{Directory: "outputs"},
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_MODEL", "CARDSMITH_PROVIDER"} {
		t.Setenv(key, "")
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `server:
  port: 9090
  cors:
    allowed_origins:
      - https://cards.example.com
  max_upload_bytes: 1024
generation:
  provider: openai
  default_count: 5
  max_count: 20
openai:
  model: gpt-4.1
  max_retry_attempts: 2
outputs:
  directory: custom/outputs
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server = ServerConfig{
					Port:           9090,
					CORS:           CORSConfig{AllowedOrigins: []string{"https://cards.example.com"}},
					MaxUploadBytes: 1024,
				}
				cfg.Generation = GenerationConfig{Provider: ProviderOpenAI, DefaultCount: 5, MaxCount: 20}
				cfg.OpenAI.Model = "gpt-4.1"
				cfg.OpenAI.MaxRetryAttempts = 2
				cfg.Outputs.Directory = "custom/outputs"
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `gemini:
  model: gemini-2.5-pro
  base_url: http://localhost:9999
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Gemini.Model = "gemini-2.5-pro"
				cfg.Gemini.BaseURL = "http://localhost:9999"
				return cfg
			},
		},
		{
			name:          "environment variables override",
			configContent: "",
			env: map[string]string{
				"GEMINI_API_KEY":     "gemini-key",
				"OPENAI_API_KEY":     "openai-key",
				"OPENAI_MODEL":       "gpt-4o",
				"CARDSMITH_PROVIDER": "openai",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Gemini.APIKey = "gemini-key"
				cfg.OpenAI.APIKey = "openai-key"
				cfg.OpenAI.Model = "gpt-4o"
				cfg.Generation.Provider = ProviderOpenAI
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8080
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown provider",
			configContent: `generation:
  provider: claude
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "provider must be one of [gemini openai]"},
		},
		{
			name: "max count below default count",
			configContent: `generation:
  default_count: 10
  max_count: 3
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "max_count"},
		},
		{
			name: "missing template file",
			configContent: `templates:
  prompt_template: does/not/exist.tmpl
`,
			wantErr:           true,
			wantErrorContains: []string{"templates.prompt_template must be an existing and readable file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.WithDotEnvFile("").Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))

	tempDir := t.TempDir()
	t.Chdir(tempDir)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0644))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", got.Gemini.APIKey)
}

func TestConfigLoader_Load_TemplateFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	templatePath := filepath.Join(tempDir, "prompt.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Count }}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte("templates:\n  prompt_template: "+templatePath+"\n"), 0644))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, templatePath, got.Templates.PromptTemplate)
}
