package optable

import "github.com/napalu/optable/types"

// NewOption convenience initialization method to declare options
func NewOption(configs ...ConfigureDescriptorFunc) Descriptor {
	d := Descriptor{}
	for _, config := range configs {
		config(&d)
	}

	return d
}

// Flag declares a boolean option
func Flag(short, long, description string) Descriptor {
	return Descriptor{Short: short, Long: long, Description: description}
}

// Value declares an option taking one value per hint
func Value(short, long string, description string, hints ...string) Descriptor {
	return NewOption(WithShort(short), WithLong(long), WithValues(hints...), WithDescription(description))
}

// WithShort sets the single-character identifier used as -x
func WithShort(short string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Short = short
	}
}

// WithLong sets the identifier used as --name
func WithLong(long string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Long = long
	}
}

// WithKeyword sets the bare-word alias
func WithKeyword(keyword string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Keyword = keyword
	}
}

// WithArity sets the arity without touching hints
func WithArity(arity types.Arity) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Arity = arity
	}
}

// WithValues declares one value per hint
func WithValues(hints ...string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Arity = types.Arity(len(hints))
		d.Hints = hints
	}
}

// WithVariadic declares one or more values described by hint
func WithVariadic(hint string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Arity = types.Variadic
		d.Hints = []string{hint}
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Description = description
	}
}

// WithGroup sets the help group of the option
func WithGroup(group string) ConfigureDescriptorFunc {
	return func(d *Descriptor) {
		d.Group = group
	}
}
