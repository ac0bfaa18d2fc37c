package tracing

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/arbor/internal/domain/resolve"
	"github.com/zjrosen/arbor/internal/domain/tree"
)

// TraceHooks bridges resolver observation onto OpenTelemetry spans. Each
// resolved descriptor gets one span; child spans nest under their parent
// through the context the resolver threads down the tree. The domain never
// sees OpenTelemetry.
type TraceHooks struct {
	tracer trace.Tracer
}

// NewTraceHooks creates hooks that record spans on the given tracer.
func NewTraceHooks(tracer trace.Tracer) *TraceHooks {
	return &TraceHooks{tracer: tracer}
}

// ResolveStart opens a span for the descriptor and returns the span context.
func (h *TraceHooks) ResolveStart(ctx context.Context, d resolve.Descriptor) context.Context {
	ctx, _ = h.tracer.Start(ctx, SpanResolveNode,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(descriptorAttributes(d)...),
	)
	return ctx
}

// ResolveEnd records the outcome on the descriptor's span and ends it.
func (h *TraceHooks) ResolveEnd(ctx context.Context, _ resolve.Descriptor, node *tree.Node, err error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorType, fmt.Sprintf("%T", err)))
		return
	}

	span.SetStatus(codes.Ok, "")
	if node == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.Int(AttrNodeChildren, node.ChildCount()),
		attribute.Int(AttrNodeSize, node.Size()),
	}
	if key, ok := tree.KeyString(node.Key()); ok {
		attrs = append(attrs, attribute.String(AttrNodeKey, key))
	}
	if v := node.Value(); v != nil {
		attrs = append(attrs, attribute.String(AttrValueType, reflect.TypeOf(v).String()))
	}
	span.SetAttributes(attrs...)
}

func descriptorAttributes(d resolve.Descriptor) []attribute.KeyValue {
	if d.IsType() {
		return []attribute.KeyValue{
			attribute.String(AttrDescriptorKind, DescriptorKindType),
			attribute.String(AttrDescriptor, d.Type().String()),
		}
	}
	return []attribute.KeyValue{
		attribute.String(AttrDescriptorKind, DescriptorKindName),
		attribute.String(AttrDescriptor, d.Name()),
	}
}

// TracedLookup decorates a Lookup, recording each registry hit or miss as an
// event on the active span. It adds nothing when no span is recording, so
// the decorator is safe to leave in place with tracing disabled.
type TracedLookup struct {
	next resolve.Lookup
}

// NewTracedLookup wraps next with span event recording.
func NewTracedLookup(next resolve.Lookup) *TracedLookup {
	return &TracedLookup{next: next}
}

// ByName delegates to the wrapped lookup and records the outcome.
func (l *TracedLookup) ByName(ctx context.Context, name string) (any, error) {
	value, err := l.next.ByName(ctx, name)
	recordLookup(ctx, resolve.ByName(name), err)
	return value, err
}

// ByType delegates to the wrapped lookup and records the outcome.
func (l *TracedLookup) ByType(ctx context.Context, t reflect.Type) (any, error) {
	value, err := l.next.ByType(ctx, t)
	recordLookup(ctx, resolve.ByType(t), err)
	return value, err
}

func recordLookup(ctx context.Context, d resolve.Descriptor, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(EventLookup, trace.WithAttributes(
		attribute.String(AttrDescriptor, d.String()),
		attribute.String(AttrLookupOutcome, lookupOutcome(err)),
	))
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return LookupOutcomeOK
	case errors.Is(err, resolve.ErrNotFound):
		return LookupOutcomeNotFound
	case errors.Is(err, resolve.ErrAmbiguous):
		return LookupOutcomeAmbiguous
	default:
		return LookupOutcomeError
	}
}
