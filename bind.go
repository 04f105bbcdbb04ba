package optable

import (
	"strings"

	"github.com/napalu/optable/errs"
)

// Binding maps the value-taking options of a Result to the positional parameters they consume
type Binding struct {
	values map[int][]string
	rest   []string
}

// Values returns the parameters bound to the option at index
func (b *Binding) Values(index int) []string {
	return append([]string{}, b.values[index]...)
}

// Rest returns the positional parameters not bound to any option
func (b *Binding) Rest() []string {
	return append([]string{}, b.rest...)
}

// IsOptionalHint returns true for hints written in square brackets, e.g. "[yymmdd]"
func IsOptionalHint(hint string) bool {
	return strings.HasPrefix(hint, "[") && strings.HasSuffix(hint, "]")
}

// Bind assigns the positional parameters of res to its value-taking options, in the order the options
// were encountered. An option with arity N takes up to N parameters and a variadic option takes as many
// as it can. Parameters needed by the options following it are never taken. Values whose hint is
// optional may be left out; a shortfall of required values fails with errs.ErrMissingValues.
// res must come from r: a nil res fails with errs.ErrNotClassified and an option index r does not
// hold fails with errs.ErrForeignResult.
func (r *Registry) Bind(res *Result) (*Binding, error) {
	if res == nil {
		return nil, errs.ErrNotClassified
	}
	for _, index := range res.valueFlags {
		if index < 0 || index >= len(r.options) {
			return nil, errs.ErrForeignResult.WithArgs(index)
		}
	}

	b := &Binding{values: make(map[int][]string, len(res.valueFlags))}

	pos := 0
	for k, index := range res.valueFlags {
		d := r.options[index]

		reserved := 0
		for _, later := range res.valueFlags[k+1:] {
			reserved += requiredValues(r.options[later])
		}

		take := len(res.positionals) - pos - reserved
		if !d.Arity.IsVariadic() && take > int(d.Arity) {
			take = int(d.Arity)
		}
		if take < 0 {
			take = 0
		}

		if need := requiredValues(d); take < need {
			return nil, errs.ErrMissingValues.WithArgs(displayName(d), need, take)
		}

		b.values[index] = res.positionals[pos : pos+take]
		pos += take
	}
	b.rest = res.positionals[pos:]

	return b, nil
}

func requiredValues(d Descriptor) int {
	if d.Arity.IsVariadic() {
		if IsOptionalHint(d.Hints[0]) {
			return 0
		}
		return 1
	}

	n := 0
	for _, hint := range d.Hints {
		if !IsOptionalHint(hint) {
			n++
		}
	}

	return n
}

// displayName returns the identifier an option is best known by: --long, -s or its keyword
func displayName(d Descriptor) string {
	switch {
	case d.Long != "":
		return "--" + d.Long
	case d.Short != "":
		return "-" + d.Short
	default:
		return d.Keyword
	}
}
