package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wonklabs/wonk/internal/config"
	"github.com/wonklabs/wonk/internal/logger"
)

// fakeExecutor routes command invocations to a test callback.
type fakeExecutor struct {
	fn    func(name string, args []string) (string, error)
	calls []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	if f.fn == nil {
		return "", nil
	}
	return f.fn(name, args)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

type fakeVision struct {
	text string
	err  error
}

func (f *fakeVision) DescribeImage(ctx context.Context, model string, data []byte, mimeType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Gemini:  config.GeminiConfig{APIKeys: []string{"key-1"}},
		Whisper: config.WhisperConfig{ModelPath: "models/test.bin"},
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func newTestAdapter(exec *fakeExecutor, vision ImageDescriber) Adapter {
	return New(testConfig(), exec, vision, logger.New("error"))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.mp3", true},
		{"meeting.MP4", true},
		{"notes.txt", true},
		{"deck.pptx", true},
		{"scan.jpeg", true},
		{"report.docx", true},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTranscribeText(t *testing.T) {
	a := newTestAdapter(&fakeExecutor{}, &fakeVision{})
	path := writeFile(t, t.TempDir(), "notes.txt", "meeting notes")

	text, err := a.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "meeting notes" {
		t.Errorf("Transcribe() = %q", text)
	}
}

func TestTranscribeUnsupported(t *testing.T) {
	a := newTestAdapter(&fakeExecutor{}, &fakeVision{})

	_, err := a.Transcribe(context.Background(), "meeting.zip")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Transcribe() error = %T, want *DecodeError", err)
	}
}

func TestTranscribeImage(t *testing.T) {
	a := newTestAdapter(&fakeExecutor{}, &fakeVision{text: "whiteboard sketch"})
	path := writeFile(t, t.TempDir(), "board.png", "not-a-real-png")

	text, err := a.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "whiteboard sketch" {
		t.Errorf("Transcribe() = %q", text)
	}
}

func TestTranscribeVideoNoAudioTrack(t *testing.T) {
	exec := &fakeExecutor{
		fn: func(name string, args []string) (string, error) {
			if name == "ffprobe" {
				return "", nil // no audio streams
			}
			t.Fatalf("unexpected command %s after failed probe", name)
			return "", nil
		},
	}
	a := newTestAdapter(exec, &fakeVision{})

	_, err := a.Transcribe(context.Background(), "silent.mp4")
	if !errors.Is(err, ErrNoAudioTrack) {
		t.Fatalf("Transcribe() error = %v, want ErrNoAudioTrack", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Error("no-audio failure should still be a DecodeError")
	}
}

func TestTranscribeVideoWithAudio(t *testing.T) {
	exec := &fakeExecutor{}
	exec.fn = func(name string, args []string) (string, error) {
		switch name {
		case "ffprobe":
			return "audio\n", nil
		case "ffmpeg":
			return "", nil
		case "whisper-cli":
			// whisper writes its transcript next to --output-file.
			for i, arg := range args {
				if arg == "--output-file" {
					return "", os.WriteFile(args[i+1]+".txt", []byte("hello from the meeting\n"), 0644)
				}
			}
			return "", errors.New("missing --output-file")
		}
		return "", errors.New("unexpected command " + name)
	}
	a := newTestAdapter(exec, &fakeVision{})

	text, err := a.Transcribe(context.Background(), "meeting.mp4")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hello from the meeting" {
		t.Errorf("Transcribe() = %q", text)
	}

	want := []string{"ffprobe", "ffmpeg", "whisper-cli"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i, name := range want {
		if exec.calls[i] != name {
			t.Errorf("call %d = %s, want %s", i, exec.calls[i], name)
		}
	}
}

func TestConvertDocx(t *testing.T) {
	exec := &fakeExecutor{
		fn: func(name string, args []string) (string, error) {
			if name != "pandoc" {
				return "", errors.New("unexpected command " + name)
			}
			return "document body\n", nil
		},
	}
	a := newTestAdapter(exec, &fakeVision{})

	text, err := a.Transcribe(context.Background(), "report.docx")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "document body" {
		t.Errorf("Transcribe() = %q", text)
	}
}

func TestTranscribeBatch(t *testing.T) {
	a := newTestAdapter(&fakeExecutor{}, &fakeVision{})
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", "first part")
	second := writeFile(t, dir, "b.txt", "second part")

	transcript, itemErrs := a.TranscribeBatch(context.Background(), []string{first, "bad.zip", second})

	if transcript != "first part\n\nsecond part" {
		t.Errorf("transcript = %q", transcript)
	}
	if len(itemErrs) != 1 {
		t.Fatalf("item errors = %d, want 1", len(itemErrs))
	}
	if itemErrs[0].Path != "bad.zip" {
		t.Errorf("failed item = %q", itemErrs[0].Path)
	}
	var de *DecodeError
	if !errors.As(itemErrs[0].Err, &de) {
		t.Errorf("item error = %T, want *DecodeError", itemErrs[0].Err)
	}
}

func TestTranscribeBatchEmpty(t *testing.T) {
	a := newTestAdapter(&fakeExecutor{}, &fakeVision{})

	transcript, itemErrs := a.TranscribeBatch(context.Background(), nil)
	if transcript != "" || itemErrs != nil {
		t.Errorf("TranscribeBatch(nil) = %q, %v", transcript, itemErrs)
	}
}
