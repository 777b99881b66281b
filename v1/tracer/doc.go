// Package tracer wraps the OpenTelemetry SDK for lyricml.
//
// It configures a TracerProvider with service and environment resource
// attributes, an optional OTLP/HTTP exporter and W3C trace-context plus
// baggage propagation, and offers helpers for spans and carriers:
//
//	ctx, span := t.StartSpan(ctx, "classify")
//	defer span.End()
//	if err != nil {
//		t.RecordErrorOnSpan(span, err)
//	}
//
// The OTLP exporter reads the standard OTEL_EXPORTER_OTLP_* environment
// variables for its endpoint and headers.
package tracer
