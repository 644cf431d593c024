package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
				Whisper: WhisperConfig{
					ModelPath: "models/ggml-base.en.bin",
				},
			},
			wantErr: false,
		},
		{
			name: "missing api keys",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/ggml-base.en.bin",
				},
			},
			wantErr: true,
		},
		{
			name: "missing whisper model",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Gemini:  GeminiConfig{APIKeys: []string{"key-1"}},
		Whisper: WhisperConfig{ModelPath: "models/ggml-base.en.bin"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.VisionModel != cfg.Gemini.Model {
		t.Errorf("VisionModel = %v, want %v", cfg.Gemini.VisionModel, cfg.Gemini.Model)
	}
	if cfg.Export.Filename != "meeting_minutes.docx" {
		t.Errorf("Filename = %v, want meeting_minutes.docx", cfg.Export.Filename)
	}
	if cfg.Ingest.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Ingest.MaxConcurrent)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %v, want 127.0.0.1:8080", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  api_keys:
    - "key-1"
    - "key-2"
  model: "gemini-2.5-pro"

whisper:
  model_path: "models/ggml-base.en.bin"
  binary_path: "./whisper-cli"
  language: "en"

server:
  addr: "127.0.0.1:9090"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys count = %v, want 2", len(cfg.Gemini.APIKeys))
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v, want gemini-2.5-pro", cfg.Gemini.Model)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %v, want 127.0.0.1:9090", cfg.Server.Addr)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
