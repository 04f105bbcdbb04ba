package optable

import (
	"io"
	"log/slog"
)

// NewEngineWith creates an Engine and sets it up with table in one step. The returned Engine is nil
// when the table is rejected.
//
// Configuration example:
//
//	engine, err := NewEngineWith([]Descriptor{
//		NewOption(WithShort("v"), WithLong("verbose"), WithDescription("prints more output")),
//		NewOption(WithLong("output"), WithValues("<file>"), WithDescription("writes to file")),
//	}, "1.0.0", WithLogger(slog.Default()))
func NewEngineWith(table []Descriptor, version string, configs ...ConfigureEngineFunc) (*Engine, error) {
	e := New(configs...)
	if err := e.Setup(table, version); err != nil {
		return nil, err
	}

	return e, nil
}

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(logger *slog.Logger) ConfigureEngineFunc {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

// WithStderr sets the writer Fail reports errors to. Defaults to os.Stderr.
func WithStderr(w io.Writer) ConfigureEngineFunc {
	return func(engine *Engine) {
		engine.stderr = w
	}
}

// WithHeaders decorates group headers in help output
func WithHeaders(header HeaderFunc) ConfigureEngineFunc {
	return func(engine *Engine) {
		engine.header = header
	}
}

// WithPreset queues tokens ahead of the arguments passed to Engine.Classify, as if they had been
// typed right after the program name
func WithPreset(tokens ...string) ConfigureEngineFunc {
	return func(engine *Engine) {
		engine.preset = append([]string(nil), tokens...)
	}
}
