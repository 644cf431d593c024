// Package session owns the per-session state the action handlers operate
// on: the transcript, the task pipeline, the current artifact set, and the
// draft request states.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wonklabs/wonk/internal/actionitems"
	"github.com/wonklabs/wonk/internal/pipeline"
)

// Session is one user's working state. Actions on a session are serialized
// by its mutex, so within a session there is never concurrent mutation.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time
	Pipeline  *pipeline.Pipeline

	transcript string
	artifacts  *pipeline.ArtifactSet
	drafts     map[actionitems.DraftKey]actionitems.DraftState
}

// New creates a Session around a pipeline.
func New(p *pipeline.Pipeline) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Pipeline:  p,
		drafts:    make(map[actionitems.DraftKey]actionitems.DraftState),
	}
}

// Transcript returns the current transcript text.
func (s *Session) Transcript() string {
	return s.transcript
}

// SetTranscript replaces the transcript wholesale. Draft states reset
// because the action-item rows they referred to may no longer exist.
func (s *Session) SetTranscript(text string) {
	s.transcript = text
	s.drafts = make(map[actionitems.DraftKey]actionitems.DraftState)
}

// Artifacts returns the last fully generated set, or nil.
func (s *Session) Artifacts() *pipeline.ArtifactSet {
	return s.artifacts
}

// SetArtifacts replaces the artifact set wholesale. Called only after a
// generation fully succeeds; a failed generation leaves the prior set
// visible.
func (s *Session) SetArtifacts(set *pipeline.ArtifactSet) {
	s.artifacts = set
	s.drafts = make(map[actionitems.DraftKey]actionitems.DraftState)
}

// DraftState returns the request state for one action-item row and kind.
func (s *Session) DraftState(key actionitems.DraftKey) actionitems.DraftState {
	return s.drafts[key]
}

// SetDraftState records a row's transition through the request lifecycle.
func (s *Session) SetDraftState(key actionitems.DraftKey, state actionitems.DraftState) {
	if state == actionitems.StateUnrequested {
		delete(s.drafts, key)
		return
	}
	s.drafts[key] = state
}
