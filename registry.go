package optable

import (
	"strings"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/internal/util"
	"github.com/napalu/optable/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry is a validated, immutable option table. Options are partitioned into groups
// in the order in which each group label first appears in the table.
type Registry struct {
	options  []Descriptor
	version  string
	groups   []Group
	indent   int
	shorts   map[string]int
	longs    map[string]int
	keywords map[string]int
}

// NewRegistry validates table and returns a Registry. The table is read up to the first End sentinel,
// if any. Validation stops at the first malformed descriptor; the returned error names its index and
// the offending field. Identifiers must be unique per kind: no two options may share a short flag, a
// long name or a keyword.
func NewRegistry(table []Descriptor, version string) (*Registry, error) {
	if len(table) == 0 {
		return nil, errs.ErrEmptyTable
	}
	if !util.HasText(version) {
		return nil, errs.ErrEmptyVersion
	}

	size := TableLen(table)
	if size == 0 {
		return nil, errs.ErrEmptyTable
	}

	options := make([]Descriptor, size)
	for i := 0; i < size; i++ {
		options[i] = table[i].clone()
		if err := validateDescriptor(i, &options[i]); err != nil {
			return nil, err
		}
	}

	if err := checkDuplicates(options); err != nil {
		return nil, err
	}

	r := &Registry{
		options:  options,
		version:  version,
		shorts:   make(map[string]int, size),
		longs:    make(map[string]int, size),
		keywords: make(map[string]int, size),
	}
	r.buildIndex()
	r.buildGroups()

	return r, nil
}

func validateDescriptor(index int, d *Descriptor) error {
	if err := validateIdentifiers(index, d); err != nil {
		return err
	}

	if !d.Arity.Valid() {
		return errs.ErrInvalidArity.WithArgs(index, int(types.Variadic), types.MaxArity, int(d.Arity))
	}

	if err := validateHints(index, d); err != nil {
		return err
	}

	if !util.HasText(d.Description) {
		return errs.ErrMissingDescription.WithArgs(index)
	}

	return nil
}

func validateIdentifiers(index int, d *Descriptor) error {
	if d.Short != "" && (util.RuneLen(d.Short) != 1 || !util.IsAlphanumericString(d.Short)) {
		return errs.ErrInvalidShortFlag.WithArgs(index, d.Short)
	}

	for _, id := range []struct{ field, value string }{{"long", d.Long}, {"keyword", d.Keyword}} {
		if id.value == "" {
			continue
		}
		if util.RuneLen(id.value) > MaxNameLength {
			return errs.ErrIdentifierTooLong.WithArgs(index, id.field, MaxNameLength)
		}
		if !util.IsAlphanumericString(id.value) {
			return errs.ErrInvalidIdentifier.WithArgs(index, id.field, id.value)
		}
	}

	if d.Short == "" && d.Long == "" && d.Keyword == "" {
		return errs.ErrMissingIdentifier.WithArgs(index)
	}

	return nil
}

func validateHints(index int, d *Descriptor) error {
	if d.Arity.IsBoolean() {
		if len(d.Hints) > 0 {
			return errs.ErrUnexpectedHints.WithArgs(index, len(d.Hints))
		}
		return nil
	}

	want := int(d.Arity)
	if d.Arity.IsVariadic() {
		want = 1
	}
	if len(d.Hints) != want {
		return errs.ErrHintCount.WithArgs(index, want, len(d.Hints))
	}

	for i, hint := range d.Hints {
		if !util.HasText(hint) {
			return errs.ErrBlankHint.WithArgs(index, i)
		}
	}

	return nil
}

// checkDuplicates compares every descriptor with all earlier ones
func checkDuplicates(options []Descriptor) error {
	for i := 1; i < len(options); i++ {
		for j := 0; j < i; j++ {
			switch {
			case options[i].Short != "" && options[i].Short == options[j].Short:
				return errs.ErrDuplicateIdentifier.WithArgs(i, "short", options[i].Short, j)
			case options[i].Long != "" && options[i].Long == options[j].Long:
				return errs.ErrDuplicateIdentifier.WithArgs(i, "long", options[i].Long, j)
			case options[i].Keyword != "" && options[i].Keyword == options[j].Keyword:
				return errs.ErrDuplicateIdentifier.WithArgs(i, "keyword", options[i].Keyword, j)
			}
		}
	}

	return nil
}

func (r *Registry) buildIndex() {
	for i, d := range r.options {
		if d.Short != "" {
			r.shorts[d.Short] = i
		}
		if d.Long != "" {
			r.longs[d.Long] = i
		}
		if d.Keyword != "" {
			r.keywords[d.Keyword] = i
		}
	}
}

func (r *Registry) buildGroups() {
	byLabel := orderedmap.New()
	for i, d := range r.options {
		label := d.Group
		if label == "" {
			label = DefaultGroup
		}

		value, found := byLabel.Get(label)
		if !found {
			value = &Group{Label: label}
			byLabel.Set(label, value)
		}

		info := OptionInfo{
			Index:       i,
			Signature:   signature(d),
			Description: d.Description,
		}
		if l := util.RuneLen(info.Signature); l > r.indent {
			r.indent = l
		}

		group := value.(*Group)
		group.Options = append(group.Options, info)
	}

	r.groups = make([]Group, 0, byLabel.Len())
	for pair := byLabel.Oldest(); pair != nil; pair = pair.Next() {
		r.groups = append(r.groups, *pair.Value.(*Group))
	}
}

// signature renders the identifiers of d joined by ", " followed by its value hints:
//
//	-a, --add, add <money> <item>
//	--files <file>...
func signature(d Descriptor) string {
	ids := make([]string, 0, 3)
	if d.Short != "" {
		ids = append(ids, "-"+d.Short)
	}
	if d.Long != "" {
		ids = append(ids, "--"+d.Long)
	}
	if d.Keyword != "" {
		ids = append(ids, d.Keyword)
	}

	sig := strings.Join(ids, ", ")
	switch {
	case d.Arity.IsVariadic():
		sig += " " + d.Hints[0] + "..."
	case !d.Arity.IsBoolean():
		sig += " " + strings.Join(d.Hints, " ")
	}

	return sig
}

// Len returns the number of options
func (r *Registry) Len() int {
	return len(r.options)
}

// Version returns the version the registry was set up with
func (r *Registry) Version() string {
	return r.version
}

// Option returns the descriptor at index
func (r *Registry) Option(index int) (Descriptor, bool) {
	if index < 0 || index >= len(r.options) {
		return Descriptor{}, false
	}

	return r.options[index].clone(), true
}

// Options returns a copy of all descriptors in declaration order
func (r *Registry) Options() []Descriptor {
	options := make([]Descriptor, len(r.options))
	for i := range r.options {
		options[i] = r.options[i].clone()
	}

	return options
}

// Groups returns a copy of the option groups in first-seen order
func (r *Registry) Groups() []Group {
	groups := make([]Group, len(r.groups))
	for i := range r.groups {
		groups[i] = r.groups[i].clone()
	}

	return groups
}

// Indent returns the length of the longest option signature
func (r *Registry) Indent() int {
	return r.indent
}

// Signature returns the precomputed signature of the option at index
func (r *Registry) Signature(index int) string {
	if index < 0 || index >= len(r.options) {
		return ""
	}

	return signature(r.options[index])
}

// Lookup finds an option by identifier. "-x" only matches short flags and "--name" only matches
// long names. A bare identifier is tried as a short flag, then as a long name, then as a keyword.
func (r *Registry) Lookup(id string) (int, bool) {
	switch {
	case strings.HasPrefix(id, "--"):
		i, found := r.longs[id[2:]]
		return i, found
	case strings.HasPrefix(id, "-"):
		i, found := r.shorts[id[1:]]
		return i, found
	}

	if i, found := r.shorts[id]; found {
		return i, true
	}
	if i, found := r.longs[id]; found {
		return i, true
	}
	i, found := r.keywords[id]

	return i, found
}
