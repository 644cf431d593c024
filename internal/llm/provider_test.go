package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wonklabs/wonk/internal/logger"
)

func TestNewRequiresKeys(t *testing.T) {
	if _, err := New(nil, logger.New("error")); err == nil {
		t.Error("New() should fail without API keys")
	}
	if _, err := New([]string{"key-1"}, logger.New("error")); err != nil {
		t.Errorf("New() error = %v", err)
	}
}

func TestProviderError(t *testing.T) {
	cause := errors.New("auth failed")
	err := &ProviderError{Model: "gemini-2.5-flash", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ProviderError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "gemini-2.5-flash") {
		t.Errorf("Error() = %q, should name the model", err.Error())
	}

	var pe *ProviderError
	wrapped := fmt.Errorf("generate: %w", err)
	if !errors.As(wrapped, &pe) {
		t.Error("errors.As should find ProviderError through wrapping")
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", errors.New("googleapi: Error 429: too many requests"), true},
		{"quota message", errors.New("quota exceeded for this project"), true},
		{"resource exhausted", errors.New("rpc error: RESOURCE_EXHAUSTED"), true},
		{"auth error", errors.New("invalid API key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuotaError(tt.err); got != tt.want {
				t.Errorf("isQuotaError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyRotation(t *testing.T) {
	p, err := New([]string{"key-1", "key-2", "key-3"}, logger.New("error"))
	if err != nil {
		t.Fatal(err)
	}
	impl := p.(*implProvider)

	if got := impl.nextKey(false); got != "key-1" {
		t.Errorf("current key = %q, want key-1", got)
	}
	if got := impl.nextKey(true); got != "key-2" {
		t.Errorf("rotated key = %q, want key-2", got)
	}
	impl.nextKey(true)
	if got := impl.nextKey(true); got != "key-1" {
		t.Errorf("rotation should wrap around, got %q", got)
	}
}
