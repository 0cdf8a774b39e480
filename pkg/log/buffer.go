package log

import (
	"fmt"
	"io"
	"sync"
)

// CircularBuffer is an [io.Writer] that keeps the most recent writes. It is
// used to hold log output while the TUI owns the terminal.
type CircularBuffer struct {
	entries [][]byte
	next    int
	mu      sync.RWMutex
	full    bool
}

// NewCircularBuffer creates a buffer holding up to capacity writes. A
// non-positive capacity selects 100.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = 100
	}

	return &CircularBuffer{
		entries: make([][]byte, capacity),
	}
}

// Write stores a copy of p as one entry, replacing the oldest entry when
// the buffer is full.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.entries[cb.next] = append([]byte(nil), p...)
	cb.next = (cb.next + 1) % len(cb.entries)

	if cb.next == 0 {
		cb.full = true
	}

	return len(p), nil
}

// Entries returns copies of the stored entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	var order [][]byte
	if cb.full {
		order = append(order, cb.entries[cb.next:]...)
	}

	order = append(order, cb.entries[:cb.next]...)

	out := make([][]byte, 0, len(order))
	for _, e := range order {
		out = append(out, append([]byte(nil), e...))
	}

	return out
}

// Size returns the number of stored entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.full {
		return len(cb.entries)
	}

	return cb.next
}

// Capacity returns the maximum number of entries.
func (cb *CircularBuffer) Capacity() int {
	return len(cb.entries)
}

// IsFull reports whether older entries have been dropped or are about to
// be.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.full
}

// WriteTo writes all entries to w, oldest first.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
