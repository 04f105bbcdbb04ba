package util

import (
	"reflect"

	"github.com/napalu/optable/errs"
)

// UnwrapValue recursively unwraps pointers and returns the underlying value
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, errs.ErrNilPointer
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, errs.ErrNilPointer
		}
		v = v.Elem()
	}

	return v, nil
}

// UnwrapType recursively unwraps pointer types and returns the underlying type. A nil type is returned as is.
func UnwrapType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
