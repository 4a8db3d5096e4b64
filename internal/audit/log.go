package audit

import (
	"sync"
	"time"
)

const DefaultCapacity = 1000

// Action tags recorded for privileged mutations.
const (
	ActionDeleteEvaluation  = "delete_evaluation"
	ActionDeleteUser        = "delete_user"
	ActionUpdateUser        = "update_user"
	ActionUpdateAdminStatus = "update_admin_status"
	ActionAddProduct        = "add_product"
	ActionUpdateProduct     = "update_product"
	ActionDeleteProduct     = "delete_product"
)

type Entry struct {
	Action     string    `json:"action"`
	Details    any       `json:"details"`
	AdminPhone string    `json:"adminPhone"`
	Time       time.Time `json:"time"`
}

// Log is a bounded, append-only journal of admin actions kept in memory.
// Once full, each append evicts the oldest entry.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	head     int // index of the oldest entry
	size     int
	now      func() time.Time
	onRecord func(Entry)
}

type Option func(*Log)

// WithListener registers fn to receive each entry after it is stored.
func WithListener(fn func(Entry)) Option {
	return func(l *Log) {
		l.onRecord = fn
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

func NewLog(capacity int, opts ...Option) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	l := &Log{
		entries: make([]Entry, capacity),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Log) Record(action string, details any, adminPhone string) {
	l.mu.Lock()
	entry := Entry{
		Action:     action,
		Details:    details,
		AdminPhone: adminPhone,
		Time:       l.now(),
	}

	capacity := len(l.entries)
	if l.size < capacity {
		l.entries[(l.head+l.size)%capacity] = entry
		l.size++
	} else {
		l.entries[l.head] = entry
		l.head = (l.head + 1) % capacity
	}
	listener := l.onRecord
	l.mu.Unlock()

	if listener != nil {
		listener(entry)
	}
}

// List returns the entries in insertion order.
func (l *Log) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.entries[(l.head+i)%len(l.entries)]
	}
	return out
}

// Recent returns the entries newest first.
func (l *Log) Recent() []Entry {
	out := l.List()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

func (l *Log) Capacity() int {
	return len(l.entries)
}
