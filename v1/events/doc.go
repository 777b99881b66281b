// Package events publishes "lyrics.analyzed" notifications after each
// successful analysis.
//
// An Event is serialized as JSON and handed to a Sink together with a
// message key ("artist/title") and string headers. Brokers contribute
// sinks through the fx value group "event_sinks"; Config.Backend picks one
// of them (none, rabbit or kafka). When a Carrier such as *tracer.Tracer is
// available, the trace context of the request is copied into the headers so
// consumers can continue the trace.
//
// Publishing is best effort: the Emitter logs failures and callers are
// free to ignore the returned error.
package events
