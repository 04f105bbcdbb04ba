package util

import (
	"reflect"
	"testing"

	"github.com/napalu/optable/errs"
	"github.com/stretchr/testify/assert"
)

type options struct {
	Verbose bool
}

func TestUnwrapValue(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{
			name:    "nil pointer",
			input:   (*options)(nil),
			wantErr: true,
		},
		{
			name:    "nil interface",
			input:   nil,
			wantErr: true,
		},
		{
			name:  "single pointer",
			input: &options{Verbose: true},
		},
		{
			name:  "double pointer",
			input: ptr(&options{Verbose: true}),
		},
		{
			name:  "non-pointer",
			input: options{Verbose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unwrapped, err := UnwrapValue(reflect.ValueOf(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrNilPointer)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, options{Verbose: true}, unwrapped.Interface())
		})
	}
}

func TestUnwrapType(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected reflect.Kind
	}{
		{
			name:     "struct",
			input:    options{},
			expected: reflect.Struct,
		},
		{
			name:     "pointer to struct",
			input:    &options{},
			expected: reflect.Struct,
		},
		{
			name:     "pointer to pointer to string",
			input:    ptr(ptr("test")),
			expected: reflect.String,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnwrapType(reflect.TypeOf(tt.input)).Kind())
		})
	}

	assert.Nil(t, UnwrapType(nil))
}

func ptr[T any](v T) *T {
	return &v
}
