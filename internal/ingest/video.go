package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// transcribeVideo extracts the audio track from a video container and
// transcribes it. A container without an audio stream fails distinctly with
// ErrNoAudioTrack.
func (a *implAdapter) transcribeVideo(ctx context.Context, videoPath string) (string, error) {
	if err := a.checkAudioTrack(ctx, videoPath); err != nil {
		return "", err
	}

	tempDir, err := os.MkdirTemp("", "wonk-extract-*")
	if err != nil {
		return "", &DecodeError{Path: videoPath, Reason: "create temp dir", Err: err}
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.wav")

	a.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// 16kHz mono PCM is the format whisper works best with.
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", &DecodeError{Path: videoPath, Reason: "ffmpeg extract audio", Err: err}
	}

	return a.transcribeAudio(ctx, audioPath)
}

// checkAudioTrack asks ffprobe whether the container carries any audio
// stream.
func (a *implAdapter) checkAudioTrack(ctx context.Context, videoPath string) error {
	args := []string{
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		videoPath,
	}

	out, err := a.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return &DecodeError{Path: videoPath, Reason: "probe streams", Err: err}
	}

	if strings.TrimSpace(out) == "" {
		return &DecodeError{Path: videoPath, Reason: "video has no audio stream", Err: ErrNoAudioTrack}
	}

	return nil
}
