package flash

import (
	"sort"
	"sync"
	"time"
)

// Module is a flash update the shell has been told about.
type Module struct {
	FileName   string
	DetectedAt time.Time
	Announced  int // times this file name has been detected
}

// Registry is a thread-safe record of announced flash updates. It only
// tracks names and timestamps; file contents are never inspected.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
	}
}

// Record notes a detection. A re-created physical file under the same name
// bumps the announcement count rather than adding a second entry.
func (r *Registry) Record(fileName string, detectedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.modules[fileName]; ok {
		existing.DetectedAt = detectedAt
		existing.Announced++
		return
	}
	r.modules[fileName] = &Module{
		FileName:   fileName,
		DetectedAt: detectedAt,
		Announced:  1,
	}
}

// Snapshot returns a copy of all modules, most recent first.
func (r *Registry) Snapshot() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DetectedAt.After(result[j].DetectedAt)
	})
	return result
}

// Count returns the number of distinct module files seen.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
