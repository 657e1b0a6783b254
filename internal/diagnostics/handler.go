package diagnostics

import (
	"fmt"
	"io"

	"github.com/mcgru/dparse/internal/token"
)

// Handler is the capability the parser calls on every diagnostic it
// produces. It is infallible: a Handler implementation never returns an
// error, matching spec.md's "a handler is infallible" failure semantics.
type Handler interface {
	Handle(loc token.Location, sev Severity, isSupplemental bool, format string, args ...interface{})
}

// SuppressHandler discards every diagnostic. Useful for speculative
// probes that must not pollute the real diagnostic stream.
type SuppressHandler struct{}

func (SuppressHandler) Handle(token.Location, Severity, bool, string, ...interface{}) {}

// CollectHandler appends every diagnostic to a Set, wiring supplementals
// onto whatever primary preceded them.
type CollectHandler struct {
	Set *Set
}

func NewCollectHandler(set *Set) *CollectHandler {
	return &CollectHandler{Set: set}
}

func (h *CollectHandler) Handle(loc token.Location, sev Severity, isSupplemental bool, format string, args ...interface{}) {
	if isSupplemental {
		h.Set.AddSupplementalToLast(loc, format, args...)
		return
	}
	h.Set.Add(New(loc, sev, format, args...))
}

// ImmediateHandler writes each diagnostic straight to a sink keyed by
// severity, bypassing the Set entirely — an alternative to
// CollectHandler for callers that have no need to collect.
type ImmediateHandler struct {
	ErrorSink, WarningSink, DeprecationSink io.Writer
}

func (h *ImmediateHandler) sinkFor(sev Severity) io.Writer {
	switch sev {
	case Warning:
		return h.WarningSink
	case Deprecation:
		return h.DeprecationSink
	default:
		return h.ErrorSink
	}
}

func (h *ImmediateHandler) Handle(loc token.Location, sev Severity, isSupplemental bool, format string, args ...interface{}) {
	sink := h.sinkFor(sev)
	if sink == nil {
		return
	}
	prefix := "  "
	if !isSupplemental {
		prefix = ""
	}
	fmt.Fprintf(sink, "%s%s: %s: %s\n", prefix, loc, sev, fmt.Sprintf(format, args...))
}

// Reporter drains a Set to a sink, emitting each entry's primary line
// followed by its supplemental lines.
type Reporter struct {
	ErrorSink, WarningSink, DeprecationSink io.Writer
}

func (r *Reporter) sinkFor(sev Severity) io.Writer {
	switch sev {
	case Warning:
		return r.WarningSink
	case Deprecation:
		return r.DeprecationSink
	default:
		return r.ErrorSink
	}
}

// Drain writes every diagnostic in set to r's sinks in append order.
func (r *Reporter) Drain(set *Set) {
	for _, d := range set.All() {
		r.emit(d, "")
		for _, sup := range d.Supplementals {
			r.emit(sup, "  ")
		}
	}
}

func (r *Reporter) emit(d Diagnostic, indent string) {
	sink := r.sinkFor(d.Severity)
	if sink == nil {
		return
	}
	fmt.Fprintf(sink, "%s%s: %s: %s\n", indent, d.Location, d.Severity, d.Message)
}
