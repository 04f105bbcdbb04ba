package types

import "strconv"

// Arity is the number of values an option expects on the command line.
type Arity int

const (
	// Variadic denotes an option accepting one or more values which are collected as a single logical parameter
	Variadic Arity = -1
	// Boolean denotes an option which accepts no value - its presence is the signal
	Boolean Arity = 0
)

// MaxArity is the largest fixed number of values an option may declare
const MaxArity = 10

// IsBoolean returns true when the option takes no value
func (a Arity) IsBoolean() bool {
	return a == Boolean
}

// IsVariadic returns true when the option takes one or more values
func (a Arity) IsVariadic() bool {
	return a == Variadic
}

// Valid reports whether a is Boolean, Variadic or a fixed count in 1..MaxArity
func (a Arity) Valid() bool {
	return a == Variadic || (a >= Boolean && a <= MaxArity)
}

// String returns the string representation of an Arity
func (a Arity) String() string {
	switch {
	case a == Variadic:
		return "variadic"
	case a == Boolean:
		return "boolean"
	default:
		return strconv.Itoa(int(a))
	}
}

// Kind classifies an error in the engine's error taxonomy
type Kind int

const (
	KindUnknown     Kind = iota // KindUnknown is used for errors not produced by the engine
	KindDeclaration             // KindDeclaration denotes a malformed or ambiguous option table
	KindUsage                   // KindUsage denotes a bad command line or misuse of a single-shot operation
	KindLookup                  // KindLookup denotes a non-fatal miss (e.g. help for an unknown option)
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindUsage:
		return "usage"
	case KindLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

// Fatal returns true when errors of this kind must stop the caller
func (k Kind) Fatal() bool {
	return k == KindDeclaration || k == KindUsage
}
