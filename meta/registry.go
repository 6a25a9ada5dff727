// Copyright © 2026 The qassert authors

package meta

import "sync"

// Registry answers description queries from a static Table, falling back to
// an optional Resolver for assertions the table does not contain.
//
// The table is immutable once the Registry is built. The fallback slot is
// safe for concurrent registration and lookup.
type Registry struct {
	table Table
	index map[Key]int

	mu       sync.RWMutex
	fallback Resolver
}

var _ Resolver = (*Registry)(nil)

// New returns a Registry over table. The table is copied so later changes
// by the caller do not affect the registry.
func New(table Table) *Registry {
	r := &Registry{
		table: append(Table(nil), table...),
		index: make(map[Key]int, len(table)),
	}
	for i, e := range r.table {
		k := e.Key()
		if _, ok := r.index[k]; ok {
			continue // first declaration wins
		}
		r.index[k] = i
	}
	return r
}

// NewDefault returns a Registry over the built-in QP/C++ assertion table.
func NewDefault() *Registry {
	return New(QPCPP)
}

// Initialize clears any installed fallback. It does not touch the table and
// may be called any number of times.
func (r *Registry) Initialize() {
	r.RegisterFallback(nil)
}

// RegisterFallback installs fallback as the resolver consulted when the
// table has no match, replacing any previously installed one. A nil fallback
// clears the slot.
func (r *Registry) RegisterFallback(fallback Resolver) {
	r.mu.Lock()
	r.fallback = fallback
	r.mu.Unlock()
}

// Fallback returns the installed fallback, or nil.
func (r *Registry) Fallback() Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// GetDescription writes the description of the assertion identified by
// module and id to out and reports whether one was found.
//
// The static table is always searched first. On a miss the installed
// fallback, if any, is called with the same arguments and its result is
// returned verbatim; the fallback may have written to out even when it
// reports false. An empty module or a nil out yields false without
// consulting the fallback.
func (r *Registry) GetDescription(module string, id int, out *Description) bool {
	if module == "" || out == nil {
		return false
	}
	if i, ok := r.index[Key{Module: module, ID: id}]; ok {
		*out = r.table[i].Description
		return true
	}
	fallback := r.Fallback()
	if fallback == nil {
		return false
	}
	return callFallback(fallback, module, id, out)
}

// Resolve is GetDescription; it lets a Registry serve as another
// registry's fallback.
func (r *Registry) Resolve(module string, id int, out *Description) bool {
	return r.GetDescription(module, id, out)
}

// Lookup returns the description of module and id, if any.
func (r *Registry) Lookup(module string, id int) (Description, bool) {
	var d Description
	ok := r.GetDescription(module, id, &d)
	return d, ok
}

// Known reports whether the static table describes module and id. The
// fallback is not consulted.
func (r *Registry) Known(module string, id int) bool {
	_, ok := r.index[Key{Module: module, ID: id}]
	return ok
}

// Entries returns a copy of the static table in declaration order.
func (r *Registry) Entries() Table {
	return append(Table(nil), r.table...)
}

// callFallback runs fallback and turns a panic into a miss. Lookups happen
// on the way to a fatal assertion and must not raise one of their own.
func callFallback(fallback Resolver, module string, id int, out *Description) (found bool) {
	defer func() {
		if recover() != nil {
			found = false
		}
	}()
	return fallback.Resolve(module, id, out)
}
