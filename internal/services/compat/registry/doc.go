// Package registry owns the set of known compatibility changes and the
// per-package override table, and answers enablement queries over them.
//
// A change is a named behavior switch gated by target SDK version or an
// unconditional disabled flag. Overrides are explicit per-package directives
// that beat a change's static definition; they may reference change ids the
// registry has never seen. Resolution precedence is fixed: override, then
// unknown-id default, then disabled flag, then SDK gate.
//
// The registry is read-mostly. All operations are safe for concurrent use
// behind a single RWMutex; readers never observe a partially applied merge.
package registry
