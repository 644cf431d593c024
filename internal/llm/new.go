package llm

import (
	"fmt"
	"sync"

	"github.com/wonklabs/wonk/internal/logger"
)

type implProvider struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
}

// New creates a Provider that rotates through the supplied Gemini API keys.
func New(apiKeys []string, log logger.Logger) (Provider, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &implProvider{
		apiKeys: apiKeys,
		logger:  log,
	}, nil
}
