package events

import (
	"time"
)

// Change is one recorded catalog mutation. Version counts changes within
// the stream of a single part or product; Sequence counts all changes.
type Change struct {
	Type     string    `json:"type" yaml:"type"`
	Stream   string    `json:"stream" yaml:"stream"`
	Version  int       `json:"version" yaml:"version"`
	Sequence int       `json:"sequence" yaml:"sequence"`
	At       time.Time `json:"timestamp" yaml:"timestamp"`
	Summary  string    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Payload  any       `json:"-" yaml:"-"`
}

// Summarizer is implemented by payloads that describe themselves in one line
type Summarizer interface {
	Summary() string
}

// Handler reacts to appended changes
type Handler interface {
	Handle(change Change) error
	CanHandle(changeType string) bool
}

// Store is an append-only log of catalog changes, readable as a whole or
// per part/product stream
type Store interface {
	Append(stream, changeType string, payload any) (Change, error)
	Stream(stream string, fromVersion int) ([]Change, error)
	Since(position int) ([]Change, error)
	Position() int
	Subscribe(changeTypes []string, handler Handler) error
}

// HandlerFunc adapts a function to Handler. It accepts every change type
// it was subscribed to.
type HandlerFunc func(change Change) error

func (f HandlerFunc) Handle(change Change) error {
	return f(change)
}

func (f HandlerFunc) CanHandle(string) bool {
	return true
}

func summarize(payload any) string {
	if s, ok := payload.(Summarizer); ok {
		return s.Summary()
	}
	return ""
}
