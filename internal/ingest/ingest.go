// Package ingest turns uploaded audio, video, document, and image files
// into plain-text transcripts.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Supported reports whether the adapter can handle this file type.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md",
		".mp3", ".wav", ".m4a",
		".mp4", ".mov", ".mkv", ".webm",
		".docx", ".pdf", ".pptx", ".xlsx",
		".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// Transcribe converts one file into plain text, dispatching on extension.
func (a *implAdapter) Transcribe(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	a.logger.Info(ctx, "Ingesting %s", path)

	switch ext {
	case ".txt", ".md":
		return a.readText(path)
	case ".mp3", ".wav", ".m4a":
		return a.transcribeAudio(ctx, path)
	case ".mp4", ".mov", ".mkv", ".webm":
		return a.transcribeVideo(ctx, path)
	case ".docx":
		return a.convertDocx(ctx, path)
	case ".pdf":
		return a.convertPDF(ctx, path)
	case ".pptx", ".xlsx":
		return a.convertOffice(ctx, path)
	case ".jpg", ".jpeg", ".png":
		return a.describeImage(ctx, path, imageMIMETypes[ext])
	default:
		return "", &DecodeError{Path: path, Reason: fmt.Sprintf("unsupported file type %q", ext)}
	}
}

func (a *implAdapter) readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "read text file", Err: err}
	}
	return string(data), nil
}

func (a *implAdapter) describeImage(ctx context.Context, path, mimeType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "read image file", Err: err}
	}

	text, err := a.vision.DescribeImage(ctx, a.cfg.Gemini.VisionModel, data, mimeType)
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "describe image", Err: err}
	}
	return text, nil
}
