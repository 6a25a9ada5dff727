// Copyright © 2026 The qassert authors

// Package metatrace records fallback description lookups as OpenTelemetry
// spans, so post-mortem tooling can see which assertions the built-in table
// could not explain.
package metatrace

import (
	"context"

	"github.com/luthersystems/qassert/meta"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the instrumentation name used when no tracer is
	// configured.
	TracerName = "github.com/luthersystems/qassert"

	// SpanName is the name of the span recorded for each lookup.
	SpanName = "qassert.resolve"
)

// Attribute keys set on every span.
const (
	ModuleKey = attribute.Key("qassert.module")
	IDKey     = attribute.Key("qassert.id")
	FoundKey  = attribute.Key("qassert.found")
)

// Option configures a traced resolver.
type Option func(*resolver)

// WithTracer records spans with t instead of the global tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *resolver) { r.tracer = t }
}

// WithContext sets the parent context of recorded spans.
func WithContext(ctx context.Context) Option {
	return func(r *resolver) { r.ctx = ctx }
}

type resolver struct {
	next   meta.Resolver
	tracer trace.Tracer
	ctx    context.Context
}

// Resolver wraps next so each Resolve call is recorded as a span carrying the
// module, id and outcome. The result of next is returned unchanged.
func Resolver(next meta.Resolver, opts ...Option) meta.Resolver {
	r := &resolver{next: next, ctx: context.Background()}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.GetTracerProvider().Tracer(TracerName)
	}
	return r
}

func (r *resolver) Resolve(module string, id int, out *meta.Description) bool {
	_, span := r.tracer.Start(r.ctx, SpanName, trace.WithAttributes(
		ModuleKey.String(module),
		IDKey.Int(id),
	))
	defer span.End()
	found := r.next.Resolve(module, id, out)
	span.SetAttributes(FoundKey.Bool(found))
	return found
}
