package registry

import "sort"

// IsChangeEnabled resolves whether the change is enabled for the app.
//
// Precedence, first match wins:
//  1. an override for (id, app.PackageName) returns its value, even when the
//     id is not a registered change;
//  2. an unknown id returns true;
//  3. a disabled change returns false regardless of the SDK gate;
//  4. a gated change returns app.TargetSDKVersion > gate (strict);
//  5. otherwise true.
func (r *Registry) IsChangeEnabled(id ChangeID, app AppInfo) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.enabledLocked(id, app)
}

// DisabledChanges returns, in ascending order, every registered change id
// that resolves disabled for the app. The verdict per id agrees exactly with
// IsChangeEnabled since both share one resolution path.
func (r *Registry) DisabledChanges(app AppInfo) []ChangeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []ChangeID
	for id := range r.changes {
		if !r.enabledLocked(id, app) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// enabledLocked applies the resolution precedence. Callers hold at least the
// read lock.
func (r *Registry) enabledLocked(id ChangeID, app AppInfo) bool {
	if enabled, ok := r.overrides[overrideKey{id: id, pkg: app.PackageName}]; ok {
		return enabled
	}
	c, ok := r.changes[id]
	if !ok {
		return true
	}
	if c.Disabled {
		return false
	}
	if c.Gated() {
		return app.TargetSDKVersion > c.EnableAfterTargetSDK
	}
	return true
}
