// Package memlog provides an in-memory sink for the JSON log lines zerolog
// writes, so they can be shown inside the TUI.
package memlog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries a Buffer from New keeps.
const DefaultCapacity = 1000

// Entry is a single log entry, as decoded from its JSON line.
type Entry = map[string]any

// Reader allows reading access to a log.
type Reader interface {
	Get() []Entry
}

// Buffer is a bounded in-memory log. It keeps the newest entries, dropping
// the oldest once full. Safe for concurrent use.
type Buffer struct {
	mtx      sync.Mutex
	capacity int
	log      []Entry
}

// New returns a buffer keeping at most capacity entries; a capacity < 1 means
// DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Write decodes p as a JSON log line and appends it.
func (b *Buffer) Write(p []byte) (int, error) {
	entry := Entry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%w) (input:'%s')", err, string(p))
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	if b.capacity < 1 {
		b.capacity = DefaultCapacity
	}
	if len(b.log) >= b.capacity {
		b.log = append(b.log[:0], b.log[len(b.log)-b.capacity+1:]...)
	}
	b.log = append(b.log, entry)
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (b *Buffer) Get() []Entry {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	result := make([]Entry, len(b.log))
	copy(result, b.log)
	return result
}
