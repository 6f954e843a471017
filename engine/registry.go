package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// SystemStats provides execution statistics for a single system
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	name   string
	system System
	stats  SystemStats
}

// Registry holds named systems in registration order
// Names are unique; the first registration of a name wins
type Registry struct {
	// order is the registration order; byName indexes it
	order  []*systemEntry
	byName map[string]*systemEntry
	logger zerolog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		order:  make([]*systemEntry, 0),
		byName: make(map[string]*systemEntry),
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Add registers a system under name
// Returns false and leaves the registry unchanged when the name is already in use
func (r *Registry) Add(name string, s System) bool {
	if _, exists := r.byName[name]; exists {
		r.logger.Debug().Str("system", name).Msg("system already registered, keeping first registration")
		return false
	}
	entry := &systemEntry{
		name:   name,
		system: s,
		stats:  SystemStats{Name: name, MinDuration: time.Duration(1<<63 - 1)},
	}
	r.order = append(r.order, entry)
	r.byName[name] = entry
	return true
}

// Remove unregisters the system under name; returns false when absent
func (r *Registry) Remove(name string) bool {
	entry, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	for i, e := range r.order {
		if e == entry {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the system registered under name
func (r *Registry) Get(name string) (System, bool) {
	if entry, ok := r.byName[name]; ok {
		return entry.system, true
	}
	return nil, false
}

// Len returns the number of registered systems
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the registered names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, e := range r.order {
		names[i] = e.name
	}
	return names
}

// Run executes every system once, sequentially, in registration order
// after, when non-nil, is called with the system name once that system has returned
// The order is snapshotted first so systems may add or remove systems without affecting this tick
func (r *Registry) Run(cs *ComponentStore, after func(name string)) {
	entries := make([]*systemEntry, len(r.order))
	copy(entries, r.order)

	for _, entry := range entries {
		start := time.Now()
		entry.system.Update(cs)
		entry.record(time.Since(start))

		if after != nil {
			after(entry.name)
		}
	}
}

func (e *systemEntry) record(d time.Duration) {
	e.stats.ExecutionCount++
	e.stats.LastDuration = d
	e.stats.TotalDuration += d
	e.stats.MinDuration = min(e.stats.MinDuration, d)
	e.stats.MaxDuration = max(e.stats.MaxDuration, d)
	e.stats.AvgDuration = e.stats.TotalDuration / time.Duration(e.stats.ExecutionCount)
}

// Stats returns execution statistics in registration order
// Systems that never ran report a zero MinDuration
func (r *Registry) Stats() []SystemStats {
	stats := make([]SystemStats, len(r.order))
	for i, e := range r.order {
		stats[i] = e.stats
		if stats[i].ExecutionCount == 0 {
			stats[i].MinDuration = 0
		}
	}
	return stats
}
