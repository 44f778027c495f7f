// Package errorboard keeps the field errors currently on display and clears
// them after a fixed delay unless a newer validation pass supersedes them.
package errorboard

import (
	"sync"
	"time"

	"loan-approval-simulator/internal/models"
)

// DefaultTimeout is used when New is given a non-positive timeout.
const DefaultTimeout = 3 * time.Second

// Board holds the visible field errors.
type Board struct {
	mu         sync.Mutex
	timeout    time.Duration
	errs       models.FieldErrors
	generation uint64
	timer      *time.Timer
	onClear    func()
}

// New creates a board. onClear, if set, runs after errors expire on their own;
// it is not called for Reset or for a superseding Show.
func New(timeout time.Duration, onClear func()) *Board {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Board{timeout: timeout, onClear: onClear}
}

// Timeout returns the display window.
func (b *Board) Timeout() time.Duration {
	return b.timeout
}

// Show replaces whatever is displayed with errs and schedules the clear.
// An empty errs just clears the board.
func (b *Board) Show(errs models.FieldErrors) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearLocked()
	if len(errs) == 0 {
		return
	}

	b.errs = make(models.FieldErrors, len(errs))
	for field, err := range errs {
		b.errs[field] = err
	}

	gen := b.generation
	b.timer = time.AfterFunc(b.timeout, func() { b.expire(gen) })
}

// Message returns the displayed message for a field.
func (b *Board) Message(field models.Field) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err, ok := b.errs[field]; ok {
		return err.Message, true
	}
	return "", false
}

// Reset clears the board and cancels any pending expiry.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearLocked()
}

func (b *Board) clearLocked() {
	b.generation++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.errs = nil
}

func (b *Board) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.generation {
		b.mu.Unlock()
		return
	}
	b.errs = nil
	b.timer = nil
	onClear := b.onClear
	b.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}
