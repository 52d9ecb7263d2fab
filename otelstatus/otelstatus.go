// Package otelstatus records xgxstatus values on OpenTelemetry spans.
//
// A recorded status becomes one span event named EventName carrying the
// attributes below, and the span status is set to Error with the status
// message. Live statuses are detached first so the recorded detail matches
// the incident at the time of the call.
package otelstatus

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// EventName is the name of the span event added by Record.
const EventName = "xgx.status"

// Attribute keys.
const (
	DomainKey        = attribute.Key("xgx.status.domain")
	CodeKey          = attribute.Key("xgx.status.code")
	ConditionKey     = attribute.Key("xgx.status.condition")
	MessageKey       = attribute.Key("xgx.status.message")
	PlatformErrorKey = attribute.Key("xgx.status.platform_error")
	FunctionKey      = attribute.Key("code.function")
	FileKey          = attribute.Key("code.filepath")
	LineKey          = attribute.Key("code.lineno")
)

// Attributes describes d as span attributes. Location and platform error
// attributes are present only when recorded.
func Attributes(d xgxstatus.Detached) []attribute.KeyValue {
	if d.IsZero() {
		return nil
	}
	attrs := make([]attribute.KeyValue, 0, 8)
	attrs = append(attrs,
		DomainKey.String(d.Domain().Name()),
		CodeKey.String(d.Code().String()),
	)
	if n, ok := d.Domain().(interface{ ConditionName(xgxstatus.Code) string }); ok {
		attrs = append(attrs, ConditionKey.String(n.ConditionName(d.Code())))
	}
	attrs = append(attrs, MessageKey.String(d.Message()))
	if pe := d.PlatformError(); pe != 0 {
		attrs = append(attrs, PlatformErrorKey.Int(pe))
	}
	if loc := d.Location(); !loc.IsZero() {
		attrs = append(attrs,
			FunctionKey.String(loc.Function()),
			FileKey.String(loc.File()),
			LineKey.Int(loc.Line()),
		)
	}
	return attrs
}

// Record adds the status event to span and marks the span as failed.
func Record(span trace.Span, d xgxstatus.Detached, opts ...trace.EventOption) {
	if span == nil || d.IsZero() || !span.IsRecording() {
		return
	}
	opts = append(opts, trace.WithAttributes(Attributes(d)...))
	span.AddEvent(EventName, opts...)
	span.SetStatus(codes.Error, d.Message())
}

// RecordStatus detaches s and records it on span.
func RecordStatus(span trace.Span, s xgxstatus.Status, opts ...trace.EventOption) {
	if s.IsZero() {
		return
	}
	Record(span, s.Detach(), opts...)
}

// RecordError records the first status in err's chain on the span carried by
// ctx. It reports whether a status was found.
func RecordError(ctx context.Context, err error) bool {
	d, ok := xgxstatus.DetachedOf(err)
	if !ok {
		return false
	}
	Record(trace.SpanFromContext(ctx), d)
	return true
}
