package optable

import (
	"errors"
	"strings"
	"testing"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerTable() []Descriptor {
	return []Descriptor{
		{Short: "h", Long: "help", Arity: 1, Hints: []string{"[option]"}, Description: "Prints help message"},
		{Short: "a", Long: "add", Keyword: "add", Arity: 2, Hints: []string{"<money>", "<item>"}, Description: "Adds a record", Group: "Records"},
		{Short: "v", Long: "verbose", Description: "Prints verbose messages"},
		{Short: "q", Long: "quiet", Description: "Prints nothing"},
		{Long: "files", Arity: types.Variadic, Hints: []string{"<file>"}, Description: "Files to import", Group: "Records"},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(ledgerTable(), "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, 5, r.Len())
	assert.Equal(t, "1.0.0", r.Version())
	assert.Equal(t, len("-a, --add, add <money> <item>"), r.Indent())

	d, ok := r.Option(1)
	assert.True(t, ok)
	assert.Equal(t, "add", d.Keyword)

	_, ok = r.Option(5)
	assert.False(t, ok)
	_, ok = r.Option(-1)
	assert.False(t, ok)
}

func TestNewRegistry_Errors(t *testing.T) {
	valid := func() Descriptor {
		return Descriptor{Short: "x", Long: "xtra", Arity: 1, Hints: []string{"<value>"}, Description: "extra"}
	}
	with := func(f func(d *Descriptor)) []Descriptor {
		d := valid()
		f(&d)
		return []Descriptor{valid(), d}
	}
	fixup := func(d *Descriptor) {
		d.Short, d.Long = "y", "yes"
	}

	tests := []struct {
		name    string
		table   []Descriptor
		version string
		wantErr *errs.Error
		message string
	}{
		{
			name:    "nil table",
			table:   nil,
			version: "1",
			wantErr: errs.ErrEmptyTable,
		},
		{
			name:    "only the end sentinel",
			table:   []Descriptor{End, valid()},
			version: "1",
			wantErr: errs.ErrEmptyTable,
		},
		{
			name:    "blank version",
			table:   []Descriptor{valid()},
			version: "  ",
			wantErr: errs.ErrEmptyVersion,
		},
		{
			name:    "short with two characters",
			table:   with(func(d *Descriptor) { fixup(d); d.Short = "ab" }),
			version: "1",
			wantErr: errs.ErrInvalidShortFlag,
			message: `option[1].short "ab" must be a single letter or digit`,
		},
		{
			name:    "short which is not alphanumeric",
			table:   with(func(d *Descriptor) { fixup(d); d.Short = "-" }),
			version: "1",
			wantErr: errs.ErrInvalidShortFlag,
		},
		{
			name:    "long with a dash",
			table:   with(func(d *Descriptor) { fixup(d); d.Long = "dry-run" }),
			version: "1",
			wantErr: errs.ErrInvalidIdentifier,
			message: `option[1].long "dry-run" must contain only letters and digits`,
		},
		{
			name:    "keyword with a space",
			table:   with(func(d *Descriptor) { fixup(d); d.Keyword = "a b" }),
			version: "1",
			wantErr: errs.ErrInvalidIdentifier,
		},
		{
			name:    "long too long",
			table:   with(func(d *Descriptor) { fixup(d); d.Long = strings.Repeat("l", MaxNameLength+1) }),
			version: "1",
			wantErr: errs.ErrIdentifierTooLong,
			message: "option[1].long must not be longer than 19 characters",
		},
		{
			name:    "no identifier",
			table:   with(func(d *Descriptor) { d.Short, d.Long = "", "" }),
			version: "1",
			wantErr: errs.ErrMissingIdentifier,
			message: "option[1] must have at least one identifier",
		},
		{
			name:    "arity above maximum",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = types.MaxArity + 1 }),
			version: "1",
			wantErr: errs.ErrInvalidArity,
			message: "option[1].arity should use -1 for variable length or a value between 0 and 10 (not 11)",
		},
		{
			name:    "arity below variadic",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = -2 }),
			version: "1",
			wantErr: errs.ErrInvalidArity,
		},
		{
			name:    "boolean with hints",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = types.Boolean }),
			version: "1",
			wantErr: errs.ErrUnexpectedHints,
		},
		{
			name:    "too few hints",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = 2 }),
			version: "1",
			wantErr: errs.ErrHintCount,
			message: "option[1] expected 2 hint(s) but received 1",
		},
		{
			name:    "variadic with two hints",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = types.Variadic; d.Hints = []string{"<a>", "<b>"} }),
			version: "1",
			wantErr: errs.ErrHintCount,
		},
		{
			name:    "blank hint",
			table:   with(func(d *Descriptor) { fixup(d); d.Arity = 2; d.Hints = []string{"<a>", " "} }),
			version: "1",
			wantErr: errs.ErrBlankHint,
			message: "option[1].hints[1] should contain valid help text",
		},
		{
			name:    "blank description",
			table:   with(func(d *Descriptor) { fixup(d); d.Description = "\t" }),
			version: "1",
			wantErr: errs.ErrMissingDescription,
		},
		{
			name:    "duplicate short",
			table:   with(func(d *Descriptor) { d.Long = "other" }),
			version: "1",
			wantErr: errs.ErrDuplicateIdentifier,
			message: `option[1].short "x" is already declared by option[0]`,
		},
		{
			name:    "duplicate long",
			table:   with(func(d *Descriptor) { d.Short = "y" }),
			version: "1",
			wantErr: errs.ErrDuplicateIdentifier,
			message: `option[1].long "xtra" is already declared by option[0]`,
		},
		{
			name: "duplicate keyword",
			table: []Descriptor{
				{Keyword: "add", Description: "adds"},
				{Short: "a", Description: "all"},
				{Keyword: "add", Description: "adds again"},
			},
			version: "1",
			wantErr: errs.ErrDuplicateIdentifier,
			message: `option[2].keyword "add" is already declared by option[0]`,
		},
		{
			name:    "syntax is checked before description",
			table:   with(func(d *Descriptor) { d.Short = "?"; d.Description = "" }),
			version: "1",
			wantErr: errs.ErrInvalidShortFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.table, tt.version)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "unexpected error: %v", err)
			assert.Equal(t, types.KindDeclaration, errs.KindOf(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestNewRegistry_EndSentinel(t *testing.T) {
	table := []Descriptor{
		{Short: "v", Description: "verbose"},
		End,
		{Short: "!", Description: ""},
	}

	r, err := NewRegistry(table, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, TableLen(table))
}

func TestNewRegistry_CopiesTable(t *testing.T) {
	table := ledgerTable()
	r, err := NewRegistry(table, "1")
	require.NoError(t, err)

	table[1].Hints[0] = "<changed>"
	table[2].Long = "changed"

	d, _ := r.Option(1)
	assert.Equal(t, "<money>", d.Hints[0])
	_, found := r.Lookup("--verbose")
	assert.True(t, found)

	options := r.Options()
	options[0].Hints[0] = "<changed>"
	d, _ = r.Option(0)
	assert.Equal(t, "[option]", d.Hints[0])
}

func TestRegistry_Signature(t *testing.T) {
	r, err := NewRegistry(ledgerTable(), "1")
	require.NoError(t, err)

	assert.Equal(t, "-h, --help [option]", r.Signature(0))
	assert.Equal(t, "-a, --add, add <money> <item>", r.Signature(1))
	assert.Equal(t, "-v, --verbose", r.Signature(2))
	assert.Equal(t, "--files <file>...", r.Signature(4))
	assert.Equal(t, "", r.Signature(5))
}

func TestRegistry_Groups(t *testing.T) {
	table := []Descriptor{
		{Short: "a", Description: "a", Group: "A"},
		{Short: "b", Description: "b", Group: "B"},
		{Short: "c", Description: "c", Group: "A"},
		{Short: "d", Description: "d", Group: "C"},
		{Short: "e", Description: "e"},
	}

	r, err := NewRegistry(table, "1")
	require.NoError(t, err)

	groups := r.Groups()
	require.Len(t, groups, 4)

	var labels []string
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"A", "B", "C", DefaultGroup}, labels)

	require.Len(t, groups[0].Options, 2)
	assert.Equal(t, 0, groups[0].Options[0].Index)
	assert.Equal(t, 2, groups[0].Options[1].Index)
	assert.Equal(t, "-c", groups[0].Options[1].Signature)
	assert.Equal(t, "c", groups[0].Options[1].Description)

	groups[0].Options[0].Signature = "changed"
	assert.Equal(t, "-a", r.Groups()[0].Options[0].Signature)
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry(ledgerTable(), "1")
	require.NoError(t, err)

	tests := []struct {
		id    string
		index int
		found bool
	}{
		{"v", 2, true},
		{"-v", 2, true},
		{"verbose", 2, true},
		{"--verbose", 2, true},
		{"add", 1, true},
		{"a", 1, true},
		{"files", 4, true},
		{"--v", 0, false},
		{"-verbose", 0, false},
		{"nope", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			index, found := r.Lookup(tt.id)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.index, index)
			}
		})
	}
}
