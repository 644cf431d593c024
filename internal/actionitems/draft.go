package actionitems

import (
	"context"
	"fmt"

	"github.com/wonklabs/wonk/internal/logger"
)

// Kind selects the communication format drafted for an action item.
type Kind string

const (
	KindEmail Kind = "email"
	KindChat  Kind = "chat"
	KindMemo  Kind = "memo"
)

var templates = map[Kind]string{
	KindEmail: "Draft an email for the following action item: %s",
	KindChat:  "Draft a chat message for the following action item: %s",
	KindMemo:  "Draft a memo for the following action item: %s",
}

// Valid reports whether k is a known draft kind.
func (k Kind) Valid() bool {
	_, ok := templates[k]
	return ok
}

// Instruction builds the per-kind system directive for one action item.
func Instruction(parent string, kind Kind) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown draft kind %q", kind)
	}
	return fmt.Sprintf(tmpl, parent), nil
}

// Provider is the completion backend used to draft communications.
type Provider interface {
	Complete(ctx context.Context, model, instruction, transcript string) (string, error)
}

// Expander drafts secondary communications for parsed action items.
type Expander struct {
	provider Provider
	logger   logger.Logger
	model    string
}

// NewExpander creates an Expander drafting with the given model.
func NewExpander(provider Provider, log logger.Logger, model string) *Expander {
	return &Expander{
		provider: provider,
		logger:   log,
		model:    model,
	}
}

// Draft generates one communication for an action item. The original full
// transcript is the context; the built instruction is the system directive.
// Failures propagate without retry and the result is never persisted.
func (e *Expander) Draft(ctx context.Context, transcript, parent string, kind Kind) (string, error) {
	instruction, err := Instruction(parent, kind)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Drafting %s for action item: %s", kind, parent)

	text, err := e.provider.Complete(ctx, e.model, instruction, transcript)
	if err != nil {
		return "", fmt.Errorf("draft %s: %w", kind, err)
	}
	return text, nil
}
