package tracking

import "sync"

// Registry is the ordered set of known project names. Names are only ever
// appended; nothing is removed or reordered.
type Registry struct {
	mu    sync.RWMutex
	names []string
	index map[string]struct{}
}

// NewRegistry creates a registry seeded with names, dropping duplicates and
// blanks while keeping first-seen order.
func NewRegistry(names []string) *Registry {
	r := &Registry{index: make(map[string]struct{})}
	r.Merge(names)
	return r
}

// Names returns a copy of the names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// Add appends name after the last entry. It returns false if name is blank
// or already present.
func (r *Registry) Add(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(name)
}

// Merge appends every name not yet registered, in the order given, and
// returns how many were added.
func (r *Registry) Merge(names []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	added := 0
	for _, name := range names {
		if r.addLocked(name) {
			added++
		}
	}
	return added
}

func (r *Registry) addLocked(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := r.index[name]; ok {
		return false
	}
	r.index[name] = struct{}{}
	r.names = append(r.names, name)
	return true
}
