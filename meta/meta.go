// Copyright © 2026 The qassert authors

// Package meta maps the (module, id) pair reported by a failed QP/QF
// framework assertion to a human readable Description.
//
// A Registry holds an ordered, read-only Table of known assertions and a
// single optional fallback Resolver that is consulted only when the table
// has no match. The package performs no I/O and never panics; it is meant to
// be called from a fatal-assertion handler or from post-mortem tooling.
package meta

// Description explains an assertion failure. The empty string marks an
// absent field.
type Description struct {
	Brief string `json:"brief,omitempty" yaml:"brief,omitempty"`
	Tips  string `json:"tips,omitempty" yaml:"tips,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// IsZero reports whether all fields of d are absent.
func (d Description) IsZero() bool {
	return d.Brief == "" && d.Tips == "" && d.URL == ""
}

// Resolver supplies descriptions for assertions a Registry does not know.
//
// Resolve has full control over out: it may write to it even when it
// returns false.
type Resolver interface {
	Resolve(module string, id int, out *Description) bool
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(module string, id int, out *Description) bool

// Resolve calls fn(module, id, out).
func (fn ResolverFunc) Resolve(module string, id int, out *Description) bool {
	return fn(module, id, out)
}

// Chain returns a Resolver that consults each non-nil resolver in order and
// stops at the first one reporting a match.
func Chain(resolvers ...Resolver) Resolver {
	var rs []Resolver
	for _, r := range resolvers {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return chain(rs)
}

type chain []Resolver

func (c chain) Resolve(module string, id int, out *Description) bool {
	for _, r := range c {
		if r.Resolve(module, id, out) {
			return true
		}
	}
	return false
}
