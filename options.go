package trilist

import "go.uber.org/zap"

// Options represents a set of options to tune a List upon creation.
type Options struct {
	// Capacity determines how many elements the List storage reserves upon
	// creation. Values smaller than the amount of initial elements are
	// ignored. Defaults to the amount of initial elements.
	Capacity int

	// LogHandler represents a zap logger that will be used by the List to
	// report modifier registrations and resets at debug level. Reads and
	// pushes are never logged. Defaults to a noop zap.Logger, which will
	// discard all messages.
	LogHandler *zap.Logger
}

func (o *Options) normalize(initial int) {
	if o.Capacity < initial {
		o.Capacity = initial
	}

	if o.LogHandler == nil {
		o.LogHandler = zap.NewNop()
	}
}
