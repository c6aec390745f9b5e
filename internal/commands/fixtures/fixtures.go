// Package fixtures holds recorders for command wiring tests.
package fixtures

import "sync"

// RecordingRegistry captures command handlers registered during wiring.
type RecordingRegistry struct {
	mu       sync.Mutex
	Handlers []any
	Err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{Handlers: make([]any, 0)}
}

// RegisterCommand records handler, or returns Err when set.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}
