// Copyright © 2026 The qassert authors

// Package metatest contains helpers for testing code that consumes the meta
// package.
package metatest

import (
	"sync"

	"github.com/luthersystems/qassert/meta"
)

// Call is one recorded Resolve invocation.
type Call struct {
	Module string
	ID     int
}

// Recorder is a meta.Resolver that records its arguments. When Found is true
// it writes Description to the output before returning.
type Recorder struct {
	Found       bool
	Description meta.Description

	mu    sync.Mutex
	calls []Call
}

var _ meta.Resolver = (*Recorder)(nil)

func (r *Recorder) Resolve(module string, id int, out *meta.Description) bool {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Module: module, ID: id})
	r.mu.Unlock()
	if !r.Found {
		return false
	}
	*out = r.Description
	return true
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent invocation and whether there was one.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}
