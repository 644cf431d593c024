package config

import "fmt"

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Whisper WhisperConfig `yaml:"whisper"`
	Convert ConvertConfig `yaml:"convert"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type GeminiConfig struct {
	APIKeys     []string `yaml:"api_keys"`
	Model       string   `yaml:"model"`
	VisionModel string   `yaml:"vision_model"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

// ConvertConfig names the external binaries used to turn office documents
// and PDFs into plain text.
type ConvertConfig struct {
	Pandoc    string `yaml:"pandoc"`
	PDFToText string `yaml:"pdftotext"`
	Soffice   string `yaml:"soffice"`
}

type IngestConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ExportConfig struct {
	Filename string `yaml:"filename"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.VisionModel == "" {
		c.Gemini.VisionModel = c.Gemini.Model
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Convert.Pandoc == "" {
		c.Convert.Pandoc = "pandoc"
	}
	if c.Convert.PDFToText == "" {
		c.Convert.PDFToText = "pdftotext"
	}
	if c.Convert.Soffice == "" {
		c.Convert.Soffice = "soffice"
	}
	if c.Ingest.MaxConcurrent == 0 {
		c.Ingest.MaxConcurrent = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
	if c.Export.Filename == "" {
		c.Export.Filename = "meeting_minutes.docx"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	return nil
}
