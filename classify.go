package optable

import (
	"strings"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/parse"
	"github.com/napalu/optable/types"
)

// Result holds the classification of an argument vector: the indices of the value-taking and boolean
// options encountered - each recorded once, in order of first appearance - and the positional
// parameters in input order, duplicates included.
type Result struct {
	valueFlags  []int
	boolFlags   []int
	positionals []string
	seen        map[int]struct{}
}

func newResult(size int) *Result {
	return &Result{
		valueFlags:  []int{},
		boolFlags:   []int{},
		positionals: make([]string, 0, size),
		seen:        map[int]struct{}{},
	}
}

// Classify resolves each element of argv following the program name (argv[0]):
//
//	--name   matched against long names
//	-abc     each character matched against short flags
//	word     matched against keywords, otherwise kept as a positional parameter
//
// A lone "-" or "--" is invalid. Classification stops at the first unknown flag or invalid argument.
func (r *Registry) Classify(argv []string) (*Result, error) {
	return r.ClassifyWith(argv, nil)
}

// ClassifyWith classifies argv as if the preset tokens had been given right after the program name,
// e.g. options read from an environment variable. Preset tokens follow the same rules as argv.
func (r *Registry) ClassifyWith(argv, preset []string) (*Result, error) {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	state := parse.NewState(args)
	state.PushFront(preset...)

	res := newResult(state.Remaining())
	for state.Advance() {
		if err := r.classifyArg(state, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (r *Registry) classifyArg(state parse.State, res *Result) error {
	arg := state.CurrentArg()

	switch {
	case arg == "-" || arg == "--":
		return errs.ErrInvalidArgument.WithArgs(arg)
	case strings.HasPrefix(arg, "--"):
		index, found := r.longs[arg[2:]]
		if !found {
			return errs.ErrUnknownFlag.WithArgs(arg)
		}
		res.record(index, r.options[index].Arity)
	case strings.HasPrefix(arg, "-"):
		for _, c := range arg[1:] {
			index, found := r.shorts[string(c)]
			if !found {
				return errs.ErrUnknownShortFlag.WithArgs(c, arg)
			}
			res.record(index, r.options[index].Arity)
		}
	default:
		if index, found := r.keywords[arg]; found {
			res.record(index, r.options[index].Arity)
		} else {
			res.positionals = append(res.positionals, arg)
		}
	}

	return nil
}

func (res *Result) record(index int, arity types.Arity) {
	if _, found := res.seen[index]; found {
		return
	}
	res.seen[index] = struct{}{}

	if arity.IsBoolean() {
		res.boolFlags = append(res.boolFlags, index)
	} else {
		res.valueFlags = append(res.valueFlags, index)
	}
}

// ValueFlags returns the indices of the value-taking options encountered
func (res *Result) ValueFlags() []int {
	return append([]int{}, res.valueFlags...)
}

// BoolFlags returns the indices of the boolean options encountered
func (res *Result) BoolFlags() []int {
	return append([]int{}, res.boolFlags...)
}

// Positionals returns the arguments which did not resolve to an option
func (res *Result) Positionals() []string {
	return append([]string{}, res.positionals...)
}

func (res *Result) NumValueFlags() int {
	return len(res.valueFlags)
}

func (res *Result) NumBoolFlags() int {
	return len(res.boolFlags)
}

func (res *Result) NumPositionals() int {
	return len(res.positionals)
}

// Has returns true when the option at index was encountered
func (res *Result) Has(index int) bool {
	_, found := res.seen[index]
	return found
}
