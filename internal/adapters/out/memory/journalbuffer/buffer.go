// Package journalbuffer holds accepted journal entries in memory until the
// flush job writes them to storage.
package journalbuffer

import (
	"context"
	"log/slog"
	"sync"

	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/ports"
)

// DefaultCapacity bounds the number of entries kept while storage is unavailable.
const DefaultCapacity = 10000

// Buffer is a bounded FIFO of journal entries. When full, the oldest entries
// are discarded first.
type Buffer struct {
	mu       sync.Mutex
	entries  []journal.Entry
	capacity int
	logger   *slog.Logger
}

var _ ports.EventJournal = (*Buffer)(nil)

// New returns an empty buffer. A non-positive capacity falls back to DefaultCapacity.
func New(capacity int, logger *slog.Logger) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		capacity: capacity,
		logger:   logger.With("component", "journal_buffer"),
	}
}

// Append queues entry for the next flush.
func (b *Buffer) Append(ctx context.Context, entry journal.Entry) {
	b.mu.Lock()
	b.entries = append(b.entries, entry)
	dropped := b.trim()
	b.mu.Unlock()

	if dropped > 0 {
		b.logger.WarnContext(ctx, "Journal buffer full, discarding oldest entries", "dropped", dropped)
	}
}

// Drain removes and returns every queued entry in append order.
func (b *Buffer) Drain() []journal.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.entries
	b.entries = nil
	return entries
}

// Restore puts entries back in front of anything appended since they were drained.
func (b *Buffer) Restore(entries []journal.Entry) {
	if len(entries) == 0 {
		return
	}

	b.mu.Lock()
	b.entries = append(append(make([]journal.Entry, 0, len(entries)+len(b.entries)), entries...), b.entries...)
	dropped := b.trim()
	b.mu.Unlock()

	if dropped > 0 {
		b.logger.Warn("Journal buffer full after restore, discarding oldest entries", "dropped", dropped)
	}
}

// Len returns the number of queued entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// trim must be called with b.mu held.
func (b *Buffer) trim() int {
	over := len(b.entries) - b.capacity
	if over <= 0 {
		return 0
	}
	b.entries = append([]journal.Entry(nil), b.entries[over:]...)
	return over
}

// Discard is the journal used when journaling is disabled.
type Discard struct{}

var _ ports.EventJournal = Discard{}

// Append does nothing.
func (Discard) Append(context.Context, journal.Entry) {}
