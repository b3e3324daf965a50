package bootfmt

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// Allocator decides whether a heap allocation of n bytes may proceed. It
// models the small, fixed heap of a boot environment.
type Allocator interface {
	Allocate(n int) bool
}

// AllocatorFunc adapts a function to [Allocator].
type AllocatorFunc func(n int) bool

// Allocate calls f(n).
func (f AllocatorFunc) Allocate(n int) bool { return f(n) }

// Heap permits every allocation. It is used when a [Printer] has no
// Allocator.
var Heap Allocator = AllocatorFunc(func(int) bool { return true })

// Budget permits allocations while their running total stays within Limit.
// The zero value refuses everything. It is safe for concurrent use; Limit
// must not change after the first Allocate.
type Budget struct {
	Limit int

	once sync.Once
	sem  *semaphore.Weighted

	mu   sync.Mutex
	used int
}

func (b *Budget) weighted() *semaphore.Weighted {
	b.once.Do(func() {
		b.sem = semaphore.NewWeighted(int64(max(b.Limit, 0)))
	})
	return b.sem
}

// Allocate reserves n bytes if the budget has room.
func (b *Budget) Allocate(n int) bool {
	if n < 0 || !b.weighted().TryAcquire(int64(n)) {
		return false
	}
	b.mu.Lock()
	b.used += n
	b.mu.Unlock()
	return true
}

// Used returns the bytes reserved so far.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Reset returns every reservation to the budget.
func (b *Budget) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.used > 0 {
		b.weighted().Release(int64(b.used))
	}
	b.used = 0
}
