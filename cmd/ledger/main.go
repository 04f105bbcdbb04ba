// Command ledger demonstrates the option engine with the command line of a small expense ledger.
// Options can be preset in the LEDGER_OPTS environment variable; LEDGER_DEBUG enables debug logging.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/napalu/optable"
	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/parse"
	termutil "github.com/napalu/optable/util"
)

const version = "1.0.0"

var now = time.Now

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func ledgerOptions() []optable.Descriptor {
	const (
		records = "Records"
		ranges  = "Ranges"
		filters = "Filters"
	)

	return []optable.Descriptor{
		optable.Value("h", "help", "Prints help message", "[option]"),
		optable.NewOption(
			optable.WithShort("a"), optable.WithLong("add"),
			optable.WithValues("<money>", "<last_4_digits>", "<item>", "<remark>"),
			optable.WithDescription("Adds an expense or income record"), optable.WithGroup(records)),
		optable.NewOption(
			optable.WithShort("f"), optable.WithLong("fetch"), optable.WithValues("[yymmdd]"),
			optable.WithDescription("Fetches all records of the specified day or today"), optable.WithGroup(records)),
		optable.NewOption(
			optable.WithShort("d"), optable.WithLong("delete"), optable.WithValues("<serial_no>"),
			optable.WithDescription("Deletes record of the given serial number"), optable.WithGroup(records)),
		optable.NewOption(
			optable.WithLong("sort"), optable.WithValues("<new/old/high/low>"),
			optable.WithDescription("Sorts records in the given order"), optable.WithGroup(ranges)),
		optable.NewOption(
			optable.WithLong("from"), optable.WithValues("<yymmdd/yymm/yyww/yy>"),
			optable.WithDescription("Provides a start point for range operations (inclusive)"), optable.WithGroup(ranges)),
		optable.NewOption(
			optable.WithLong("to"), optable.WithValues("<yymmdd/yymm/yyww/yy>"),
			optable.WithDescription("Provides a finish point for range operations (inclusive)"), optable.WithGroup(ranges)),
		optable.NewOption(
			optable.WithShort("e"), optable.WithLong("expense"),
			optable.WithDescription("Does expense-related operations only"), optable.WithGroup(filters)),
		optable.NewOption(
			optable.WithShort("i"), optable.WithLong("income"),
			optable.WithDescription("Does income-related operations only"), optable.WithGroup(filters)),
		optable.NewOption(
			optable.WithShort("w"), optable.WithLong("week"),
			optable.WithDescription("Signals the date string in format of yyww"), optable.WithGroup(filters)),
		optable.Flag("v", "verbose", "Prints verbose messages"),
		optable.Flag("", "now", "Gets today's date information: year, month, week, date"),
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("LEDGER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// envOptions returns the options preset in LEDGER_OPTS
func envOptions() ([]string, error) {
	preset := os.Getenv("LEDGER_OPTS")
	if strings.TrimSpace(preset) == "" {
		return nil, nil
	}

	tokens, err := parse.Split(preset)
	if err != nil {
		return nil, fmt.Errorf("LEDGER_OPTS: %w", err)
	}

	return tokens, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	bold := color.New(color.Bold).SprintFunc()
	preset, presetErr := envOptions()
	engine := optable.New(
		optable.WithLogger(newLogger(stderr)),
		optable.WithStderr(stderr),
		optable.WithHeaders(func(header string) string {
			return bold(header)
		}),
		optable.WithPreset(preset...),
	)
	defer engine.Teardown()

	if presetErr != nil {
		return engine.Fail(presetErr)
	}
	if err := engine.Setup(ledgerOptions(), version); err != nil {
		return engine.Fail(err)
	}
	if err := engine.Classify(args); err != nil {
		return engine.Fail(err)
	}

	registry, _ := engine.Registry()
	result, _ := engine.Result()

	// help wins over incomplete value options
	if help, _ := registry.Lookup("help"); result.Has(help) {
		return printHelp(engine, helpTopics(engine, help, result), stdout)
	}

	binding, err := engine.Bind()
	if err != nil {
		return engine.Fail(err)
	}

	if err := printRecord(registry, result, binding, stdout); err != nil {
		return engine.Fail(err)
	}

	return errs.ExitOK
}

// helpTopics returns the values bound to help, or the first positional when the other
// value options leave nothing to bind
func helpTopics(engine *optable.Engine, help int, result *optable.Result) []string {
	if binding, err := engine.Bind(); err == nil {
		return binding.Values(help)
	}
	if positionals := result.Positionals(); len(positionals) > 0 {
		return positionals[:1]
	}

	return nil
}

func printHelp(engine *optable.Engine, topics []string, stdout io.Writer) int {
	width := termutil.TerminalWidth()
	if len(topics) == 0 {
		help, err := engine.Help(width)
		if err != nil {
			return engine.Fail(err)
		}
		_, _ = fmt.Fprintf(stdout, "ledger %s\n\n%s", version, help)
		return errs.ExitOK
	}

	usage, err := engine.HelpFor(topics[0], width)
	if err != nil {
		return engine.Fail(err)
	}
	_, _ = fmt.Fprint(stdout, usage)

	return errs.ExitOK
}

func printRecord(registry *optable.Registry, result *optable.Result, binding *optable.Binding, stdout io.Writer) error {
	_, _ = fmt.Fprintf(stdout, "bool: %d value: %d positional: %d\n",
		result.NumBoolFlags(), result.NumValueFlags(), result.NumPositionals())

	for _, index := range result.ValueFlags() {
		d, _ := registry.Option(index)
		values := binding.Values(index)

		switch d.Long {
		case "from", "to":
			t, err := dateparse.ParseAny(values[0])
			if err != nil {
				return errs.ErrInvalidValue.WithArgs(values[0], "--"+d.Long).Wrap(err)
			}
			_, _ = fmt.Fprintf(stdout, "--%s: %s\n", d.Long, t.Format("2006-01-02"))
		default:
			_, _ = fmt.Fprintf(stdout, "--%s: %s\n", d.Long, strings.Join(values, " "))
		}
	}

	for _, index := range result.BoolFlags() {
		d, _ := registry.Option(index)
		if d.Long == "now" {
			t := now()
			_, week := t.ISOWeek()
			_, _ = fmt.Fprintf(stdout, "--now: year %d month %d week %d date %s\n",
				t.Year(), t.Month(), week, t.Format("2006-01-02"))
			continue
		}
		_, _ = fmt.Fprintf(stdout, "--%s\n", d.Long)
	}

	if rest := binding.Rest(); len(rest) > 0 {
		_, _ = fmt.Fprintf(stdout, "unbound: %s\n", strings.Join(rest, " "))
	}

	return nil
}
