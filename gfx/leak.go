package gfx

import (
	"log/slog"
	"reflect"
	"runtime"
)

type releasable interface {
	Release()
	released() bool
}

// watchRelease registers a finalizer that reports value if it is
// garbage collected before Release was called. The finalizer never
// releases anything itself, as gpu calls are bound to the render thread.
func watchRelease[T releasable](value T) T {
	runtime.SetFinalizer(value, reportLeak[T])
	return value
}

func unwatchRelease[T releasable](value T) {
	runtime.SetFinalizer(value, nil)
}

func reportLeak[T releasable](value T) {
	if value.released() {
		return
	}

	typ := reflect.TypeOf(value).String()
	slog.Warn("Garbage collected gpu resource without Release", slog.String("type", typ))
}
