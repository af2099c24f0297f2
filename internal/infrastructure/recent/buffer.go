package recent

import (
	"sync"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

// DefaultCapacity is the number of predictions kept in memory.
const DefaultCapacity = 3

// Buffer is a fixed-capacity, most-recent-first log of predictions. It is
// safe for concurrent use and lost on restart.
type Buffer struct {
	mu       sync.Mutex
	entries  []model.RecentPrediction
	capacity int
}

// NewBuffer creates a Buffer. A non-positive capacity uses DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		entries:  make([]model.RecentPrediction, 0, capacity),
		capacity: capacity,
	}
}

// Push puts entry at the front, evicting the oldest entry when full.
func (b *Buffer) Push(entry model.RecentPrediction) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) < b.capacity {
		b.entries = append(b.entries, model.RecentPrediction{})
	}
	copy(b.entries[1:], b.entries[:len(b.entries)-1])
	b.entries[0] = entry
}

// List returns a copy of the entries, most recent first.
func (b *Buffer) List() []model.RecentPrediction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.RecentPrediction, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len reports the number of entries held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
