package sherlock

import (
	"sync"
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnWrite registers a callback invoked after a locale file is written
	OnWrite(WriteHook)

	// OnPending registers a callback invoked with the changes of a locale
	// before they are confirmed, and in dry runs instead of writing
	OnPending(PendingHook)
}

// WriteHook is called after a locale file has been written.
type WriteHook func(change FileChange)

// PendingHook is called with the changes of a locale before confirmation.
type PendingHook func(changes LocaleChanges)

// hooks manages event callbacks for file writes
type hooks struct {
	mu        sync.RWMutex
	onWrite   []WriteHook
	onPending []PendingHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnWrite registers a callback for written files
func (h *hooks) OnWrite(fn WriteHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onWrite = append(h.onWrite, fn)
}

func (h *hooks) triggerWrite(change FileChange) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onWrite {
		hook(change)
	}
}

// OnPending registers a callback for changes awaiting confirmation
func (h *hooks) OnPending(fn PendingHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPending = append(h.onPending, fn)
}

func (h *hooks) triggerPending(changes LocaleChanges) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onPending {
		hook(changes)
	}
}
