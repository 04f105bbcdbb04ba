package optable

import "github.com/napalu/optable/types"

const (
	// DefaultGroup is the group of options declared without a group label
	DefaultGroup = "Options"
	// MaxNameLength is the maximum length of a long name or keyword
	MaxNameLength = 19
	// MinWidth is the smallest display width help output is rendered at. Smaller widths are raised to MinWidth.
	MinWidth = 20
)

// Descriptor declares a command-line option. At least one of Short, Long or Keyword must be set.
//
//	-v          Short
//	--verbose   Long
//	add         Keyword (bare word)
type Descriptor struct {
	// Short is a single letter or digit used as -x. Several short options can be clustered: -xyz
	Short string
	// Long is used as --name
	Long string
	// Keyword is a bare-word alias
	Keyword string
	// Arity is the number of values the option expects: types.Boolean, 1..types.MaxArity or types.Variadic
	Arity types.Arity
	// Hints holds one placeholder per expected value, e.g. "<file>". Variadic options declare exactly one hint.
	Hints []string
	// Description is shown in help output and must not be blank
	Description string
	// Group organizes help output. Options without a group are listed under DefaultGroup.
	Group string
}

// End terminates a legacy option table. Entries following it are ignored.
var End = Descriptor{}

// IsEnd returns true when d is the End sentinel
func (d Descriptor) IsEnd() bool {
	return d.Short == "" && d.Long == "" && d.Keyword == "" && d.Arity == types.Boolean &&
		len(d.Hints) == 0 && d.Description == "" && d.Group == ""
}

// IsBoolean returns true when the option takes no value
func (d Descriptor) IsBoolean() bool {
	return d.Arity.IsBoolean()
}

func (d Descriptor) clone() Descriptor {
	if d.Hints != nil {
		d.Hints = append([]string(nil), d.Hints...)
	}

	return d
}

// TableLen returns the count of descriptors preceding the first End sentinel, or len(table) when there is none
func TableLen(table []Descriptor) int {
	for i := range table {
		if table[i].IsEnd() {
			return i
		}
	}

	return len(table)
}

// OptionInfo holds the precomputed help text of an option
type OptionInfo struct {
	// Index of the option in the option table
	Index int
	// Signature lists the option's identifiers followed by its value hints, e.g. "-f, --file <path>"
	Signature string
	Description string
}

// Group is a labelled list of options in declaration order
type Group struct {
	Label   string
	Options []OptionInfo
}

func (g Group) clone() Group {
	g.Options = append([]OptionInfo(nil), g.Options...)
	return g
}

// HeaderFunc decorates group headers in help output
type HeaderFunc func(header string) string

// ConfigureDescriptorFunc is used when defining options with NewOption
type ConfigureDescriptorFunc func(descriptor *Descriptor)

// ConfigureEngineFunc is used when creating an Engine
type ConfigureEngineFunc func(engine *Engine)

// ConfigureRendererFunc is used when creating a Renderer
type ConfigureRendererFunc func(renderer *Renderer)
