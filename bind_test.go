package optable

import (
	"testing"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Bind(t *testing.T) {
	r, err := NewRegistry(ledgerTable(), "1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		argv   []string
		values map[int][]string
		rest   []string
	}{
		{
			name:   "no value options",
			argv:   []string{"ledger", "-v", "x"},
			values: map[int][]string{},
			rest:   []string{"x"},
		},
		{
			name:   "fixed arity",
			argv:   []string{"ledger", "add", "12", "lunch", "extra"},
			values: map[int][]string{1: {"12", "lunch"}},
			rest:   []string{"extra"},
		},
		{
			name:   "optional value left out",
			argv:   []string{"ledger", "--help"},
			values: map[int][]string{0: {}},
			rest:   []string{},
		},
		{
			name:   "variadic leaves required values for later options",
			argv:   []string{"ledger", "--files", "--add", "a.csv", "b.csv", "12", "lunch"},
			values: map[int][]string{4: {"a.csv", "b.csv"}, 1: {"12", "lunch"}},
			rest:   []string{},
		},
		{
			name:   "order of options decides",
			argv:   []string{"ledger", "-a", "12", "lunch", "-h", "report"},
			values: map[int][]string{1: {"12", "lunch"}, 0: {"report"}},
			rest:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Classify(tt.argv)
			require.NoError(t, err)

			b, err := r.Bind(res)
			require.NoError(t, err)
			for index, values := range tt.values {
				assert.Equal(t, values, b.Values(index), "option %d", index)
			}
			assert.Equal(t, tt.rest, b.Rest())
		})
	}
}

func TestRegistry_BindMissingValues(t *testing.T) {
	r, err := NewRegistry(ledgerTable(), "1")
	require.NoError(t, err)

	res, err := r.Classify([]string{"ledger", "--add", "12", "--files"})
	require.NoError(t, err)

	b, err := r.Bind(res)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, errs.ErrMissingValues)
	assert.EqualError(t, err, "option '--add' expects 2 value(s) but received 0")
	assert.Equal(t, types.KindUsage, errs.KindOf(err))
}

func TestIsOptionalHint(t *testing.T) {
	assert.True(t, IsOptionalHint("[yymmdd]"))
	assert.False(t, IsOptionalHint("<yymmdd>"))
	assert.False(t, IsOptionalHint("[yymmdd"))
	assert.False(t, IsOptionalHint("yymmdd"))
}

func TestRegistry_BindRejectsOtherResults(t *testing.T) {
	r, err := NewRegistry(ledgerTable()[:2], "1")
	require.NoError(t, err)

	b, err := r.Bind(nil)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, errs.ErrNotClassified)

	larger, err := NewRegistry(ledgerTable(), "1")
	require.NoError(t, err)
	res, err := larger.Classify([]string{"ledger", "--files", "a.csv"})
	require.NoError(t, err)

	b, err = r.Bind(res)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, errs.ErrForeignResult)
	assert.EqualError(t, err, "option index 4 is not part of this registry")
	assert.Equal(t, types.KindUsage, errs.KindOf(err))
}
