package ingest

import (
	"errors"
	"fmt"
)

// ErrNoAudioTrack marks a video container with no audio stream. It is
// wrapped in a DecodeError so the two can be told apart.
var ErrNoAudioTrack = errors.New("no audio track")

// DecodeError reports an input that could not be normalized into text.
type DecodeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Path, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
