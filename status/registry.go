// Package status is a small atomic metrics facade. Game code caches metric
// pointers at construction and writes to them lock-free from the tick loop;
// the renderer's debug line and the shutdown log read them.
package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// MetricMap is a thread-safe registry for metrics of type T
// Registration uses mutex; cached pointer access is lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the metric pointer for key, creating it if absent.
// The first call for a key allocates; later calls return the cached pointer
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := m.items[key]; ok {
		return ptr
	}

	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// Range iterates over all metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Registry is the central metrics facade
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Snapshot renders every metric as "key=value" in sorted key order,
// bools first. Used by the shutdown log and the debug overlay
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.Bools.Count()+r.Ints.Count())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", key, ptr.Load()))
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	return out
}
