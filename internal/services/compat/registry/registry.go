package registry

import (
	"sort"
	"sync"
)

// Registry holds change definitions, the name index, and the override table.
type Registry struct {
	mu        sync.RWMutex
	changes   map[ChangeID]Change
	names     map[string]ChangeID
	overrides map[overrideKey]bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		changes:   make(map[ChangeID]Change),
		names:     make(map[string]ChangeID),
		overrides: make(map[overrideKey]bool),
	}
}

// AddChange inserts or replaces the definition for c.ID.
func (r *Registry) AddChange(c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addLocked(c)
}

// MergeChanges upserts every definition under one lock acquisition, so
// readers see either none or all of the batch.
func (r *Registry) MergeChanges(changes []Change) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range changes {
		r.addLocked(c)
	}
}

func (r *Registry) addLocked(c Change) {
	if prev, ok := r.changes[c.ID]; ok && prev.Name != c.Name {
		// Drop the stale index entry unless another change claimed the
		// name after this id did.
		if owner, ok := r.names[prev.Name]; ok && owner == c.ID {
			delete(r.names, prev.Name)
		}
	}
	r.changes[c.ID] = c
	// Last-added entry wins for duplicate names.
	r.names[c.Name] = c.ID
}

// LookupChangeID returns the id registered under name, or -1 when the name is
// unknown. Under duplicate names the most-recently-added entry wins.
func (r *Registry) LookupChangeID(name string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.names[name]
	if !ok {
		return -1
	}
	return int64(id)
}

// SetOverride inserts or replaces the override for (id, pkg). The id does not
// need to be a registered change; the override takes effect regardless.
func (r *Registry) SetOverride(id ChangeID, pkg string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[overrideKey{id: id, pkg: pkg}] = enabled
}

// RemoveOverride deletes the override for (id, pkg) and reports whether an
// entry existed. Resolution afterwards is identical to never having set one.
func (r *Registry) RemoveOverride(id ChangeID, pkg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := overrideKey{id: id, pkg: pkg}
	_, ok := r.overrides[key]
	if ok {
		delete(r.overrides, key)
	}
	return ok
}

// ListChanges returns registered definitions matching pred in ascending id
// order. A nil pred matches everything.
func (r *Registry) ListChanges(pred func(Change) bool) []Change {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Change, 0, len(r.changes))
	for _, c := range r.changes {
		if pred == nil || pred(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Overrides returns a snapshot of the override table ordered by change id,
// then package name.
func (r *Registry) Overrides() []Override {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Override, 0, len(r.overrides))
	for key, enabled := range r.overrides {
		result = append(result, Override{ChangeID: key.id, PackageName: key.pkg, Enabled: enabled})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ChangeID != result[j].ChangeID {
			return result[i].ChangeID < result[j].ChangeID
		}
		return result[i].PackageName < result[j].PackageName
	})
	return result
}

// Len returns the number of registered changes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.changes)
}
