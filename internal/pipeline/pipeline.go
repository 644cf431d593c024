// Package pipeline holds a session's configurable generation tasks and runs
// them against a transcript to produce the named artifact set.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wonklabs/wonk/internal/logger"
	"github.com/wonklabs/wonk/internal/registry"
)

// ErrTaskNotFound is returned when a task id is unknown.
var ErrTaskNotFound = errors.New("task not found")

// Provider is the completion backend the pipeline generates with.
type Provider interface {
	Complete(ctx context.Context, model, instruction, transcript string) (string, error)
}

// Task is one user-configurable unit of work. Model, prompt, and heading are
// freely editable after creation.
type Task struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Heading string `json:"heading"`
}

// TaskPatch carries in-place edits for a task. Nil fields are left alone.
type TaskPatch struct {
	Model   *string `json:"model"`
	Prompt  *string `json:"prompt"`
	Heading *string `json:"heading"`
}

// Pipeline owns one session's ordered task list.
type Pipeline struct {
	registry     *registry.Registry
	provider     Provider
	logger       logger.Logger
	defaultModel string
	tasks        []Task
}

// New creates an empty Pipeline.
func New(reg *registry.Registry, provider Provider, log logger.Logger, defaultModel string) *Pipeline {
	return &Pipeline{
		registry:     reg,
		provider:     provider,
		logger:       log,
		defaultModel: defaultModel,
	}
}

// AddFromTemplate appends a task seeded from a catalog template and the
// default model.
func (p *Pipeline) AddFromTemplate(group, templateID string) (Task, error) {
	tmpl, err := p.registry.Lookup(group, templateID)
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:      uuid.NewString(),
		Model:   p.defaultModel,
		Prompt:  tmpl.Prompt,
		Heading: tmpl.Heading,
	}
	p.tasks = append(p.tasks, task)
	return task, nil
}

// AddBlank appends a task with empty prompt and heading, to be filled in by
// the user.
func (p *Pipeline) AddBlank() Task {
	task := Task{
		ID:    uuid.NewString(),
		Model: p.defaultModel,
	}
	p.tasks = append(p.tasks, task)
	return task
}

// Edit mutates a task in place.
func (p *Pipeline) Edit(id string, patch TaskPatch) (Task, error) {
	for i := range p.tasks {
		if p.tasks[i].ID != id {
			continue
		}
		if patch.Model != nil {
			p.tasks[i].Model = *patch.Model
		}
		if patch.Prompt != nil {
			p.tasks[i].Prompt = *patch.Prompt
		}
		if patch.Heading != nil {
			p.tasks[i].Heading = *patch.Heading
		}
		return p.tasks[i], nil
	}
	return Task{}, fmt.Errorf("task %q: %w", id, ErrTaskNotFound)
}

// Remove deletes a task, preserving the order of the rest. Removing an
// unknown id is a no-op so a double-submitted removal stays safe.
func (p *Pipeline) Remove(id string) {
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return
		}
	}
}

// Tasks returns the current task list in insertion order.
func (p *Pipeline) Tasks() []Task {
	out := make([]Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Generate runs every task against the transcript, sequentially in list
// order. Each call uses the full transcript; tasks are independent, never
// chained. The first failure aborts the remaining calls and no partial set
// is returned. The task list itself is not touched.
func (p *Pipeline) Generate(ctx context.Context, transcript string) (*ArtifactSet, error) {
	set := NewArtifactSet()

	for i, task := range p.tasks {
		heading := task.Heading
		if heading == "" {
			heading = fmt.Sprintf("Task %d", i+1)
		}

		model := task.Model
		if model == "" {
			model = p.defaultModel
		}

		p.logger.Info(ctx, "[%d/%d] Generating %q with model %s", i+1, len(p.tasks), heading, model)

		body, err := p.provider.Complete(ctx, model, task.Prompt, transcript)
		if err != nil {
			return nil, fmt.Errorf("generate %q: %w", heading, err)
		}

		set.Set(heading, body)
	}

	return set, nil
}
