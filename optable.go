// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package optable provides a declarative command-line option engine.
//
// Callers declare a table of option descriptors. Each option has up to three identifiers:
//
//	Short - a single character used as -x (short flags can be clustered: -xyz)
//	Long - a name used as --name
//	Keyword - a bare-word alias
//
// and an arity: boolean (no value), a fixed number of values or variadic (one or more values).
//
// NewRegistry validates the table, Registry.Classify sorts an argument vector into boolean options,
// value-taking options and positional parameters, and Renderer produces column-aligned help output
// grouped by each option's Group and wrapped to a display width.
//
// Engine ties these together with a single-shot lifecycle: Setup once, Classify once, then Teardown.
package optable

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/napalu/optable/errs"
)

// Engine owns a Registry and the Result of classifying one argument vector. Setup and Classify
// may each be called once; Teardown releases both and must be the last call. Engine is not safe
// for concurrent use.
type Engine struct {
	registry   *Registry
	result     *Result
	renderer   *Renderer
	header     HeaderFunc
	preset     []string
	logger     *slog.Logger
	stderr     io.Writer
	setupDone  bool
	classified bool
	tornDown   bool
}

// New creates an Engine configured with configs
func New(configs ...ConfigureEngineFunc) *Engine {
	e := &Engine{}
	for _, config := range configs {
		config(e)
	}
	e.ensureInit()

	return e
}

func (e *Engine) ensureInit() {
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
}

// Setup validates table and builds the engine's Registry. It fails with errs.ErrAlreadySetup when called
// more than once, whether or not the first call succeeded.
func (e *Engine) Setup(table []Descriptor, version string) error {
	if e.tornDown {
		return errs.ErrTornDown
	}
	if e.setupDone {
		return errs.ErrAlreadySetup
	}
	e.setupDone = true

	registry, err := NewRegistry(table, version)
	if err != nil {
		e.logger.Debug("option table rejected", "error", err)
		return err
	}

	e.registry = registry
	var configs []ConfigureRendererFunc
	if e.header != nil {
		configs = append(configs, WithHeaderFunc(e.header))
	}
	e.renderer = NewRenderer(registry, configs...)

	e.logger.Debug("option table set up",
		"version", version,
		"options", registry.Len(),
		"groups", len(registry.groups),
		"indent", registry.Indent())

	return nil
}

// Classify classifies argv against the registry built by Setup. argv[0] is the program name.
// Tokens configured with WithPreset are classified ahead of argv[1:].
// Classify may be called once; on failure no partial result is kept.
func (e *Engine) Classify(argv []string) error {
	if e.tornDown {
		return errs.ErrTornDown
	}
	if e.registry == nil {
		return errs.ErrNotSetup
	}
	if e.classified {
		return errs.ErrAlreadyClassified
	}
	e.classified = true

	result, err := e.registry.ClassifyWith(argv, e.preset)
	if err != nil {
		e.logger.Debug("classification failed", "error", err)
		return err
	}

	e.result = result
	e.logger.Debug("arguments classified",
		"preset", len(e.preset),
		"value_flags", result.NumValueFlags(),
		"bool_flags", result.NumBoolFlags(),
		"positionals", result.NumPositionals())

	return nil
}

// Registry returns the registry built by Setup
func (e *Engine) Registry() (*Registry, error) {
	if e.tornDown {
		return nil, errs.ErrTornDown
	}
	if e.registry == nil {
		return nil, errs.ErrNotSetup
	}

	return e.registry, nil
}

// Result returns the result of Classify
func (e *Engine) Result() (*Result, error) {
	if e.tornDown {
		return nil, errs.ErrTornDown
	}
	if e.result == nil {
		return nil, errs.ErrNotClassified
	}

	return e.result, nil
}

// ValueFlags returns the indices of the value-taking options encountered by Classify
func (e *Engine) ValueFlags() ([]int, error) {
	result, err := e.Result()
	if err != nil {
		return nil, err
	}

	return result.ValueFlags(), nil
}

// BoolFlags returns the indices of the boolean options encountered by Classify
func (e *Engine) BoolFlags() ([]int, error) {
	result, err := e.Result()
	if err != nil {
		return nil, err
	}

	return result.BoolFlags(), nil
}

// Positionals returns the positional parameters found by Classify
func (e *Engine) Positionals() ([]string, error) {
	result, err := e.Result()
	if err != nil {
		return nil, err
	}

	return result.Positionals(), nil
}

// Bind assigns the positional parameters found by Classify to the value-taking options
func (e *Engine) Bind() (*Binding, error) {
	result, err := e.Result()
	if err != nil {
		return nil, err
	}

	return e.registry.Bind(result)
}

// Help renders all option groups at width
func (e *Engine) Help(width int) (string, error) {
	if e.tornDown {
		return "", errs.ErrTornDown
	}
	if e.renderer == nil {
		return "", errs.ErrNotSetup
	}

	return e.renderer.RenderAll(width)
}

// HelpFor renders the option identified by id at width
func (e *Engine) HelpFor(id string, width int) (string, error) {
	if e.tornDown {
		return "", errs.ErrTornDown
	}
	if e.renderer == nil {
		return "", errs.ErrNotSetup
	}

	return e.renderer.RenderOne(id, width)
}

// Fail writes err to the engine's error writer and returns the matching process exit status
func (e *Engine) Fail(err error) int {
	if err == nil {
		return errs.ExitOK
	}

	_, _ = fmt.Fprintf(e.stderr, "error: %s\n", err)

	return errs.ExitCode(err)
}

// Teardown releases the registry and result. Every later call on the engine fails with errs.ErrTornDown.
func (e *Engine) Teardown() {
	e.registry = nil
	e.result = nil
	e.renderer = nil
	e.tornDown = true
}
