package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribeAudio runs whisper.cpp on an audio file and reads back the
// plain-text output it writes next to the given prefix.
func (a *implAdapter) transcribeAudio(ctx context.Context, audioPath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "wonk-transcribe-*")
	if err != nil {
		return "", &DecodeError{Path: audioPath, Reason: "create temp dir", Err: err}
	}
	defer os.RemoveAll(tempDir)

	outputPrefix := filepath.Join(tempDir, "transcript")

	a.logger.Info(ctx, "Transcribing audio with %d threads: %s", a.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", a.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", a.cfg.Whisper.Language,
		"-t", strconv.Itoa(a.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := a.executor.Execute(ctx, a.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", &DecodeError{Path: audioPath, Reason: "whisper transcribe", Err: err}
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", &DecodeError{Path: audioPath, Reason: "read whisper output", Err: err}
	}

	return strings.TrimSpace(string(data)), nil
}
