package parse

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/internal/util"
	"github.com/napalu/optable/types"
)

// TagName is the struct tag key read by UnmarshalTag
const TagName = "optable"

// TagConfig holds the option declaration read from a struct tag
type TagConfig struct {
	Short       string
	Long        string
	Keyword     string
	Arity       *types.Arity
	Hints       []string
	Description string
	Group       string
}

// ArityFromString converts "variadic" (or "*"), "boolean" or a non-negative integer to a types.Arity
func ArityFromString(s string) (types.Arity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "variadic", "*":
		return types.Variadic, nil
	case "boolean", "bool":
		return types.Boolean, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return types.Arity(n), nil
}

// UnmarshalTag parses a tag of the form
//
//	short:v;long:verbose;keyword:add;arity:2;hints:<a>,<b>;desc:some text;group:General
//
// Keys may appear in any order and all are optional.
func UnmarshalTag(tag string, field reflect.StructField) (*TagConfig, error) {
	config := &TagConfig{}
	if strings.TrimSpace(tag) == "" {
		return config, nil
	}

	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}

		switch strings.TrimSpace(key) {
		case "short":
			config.Short = value
		case "long":
			config.Long = value
		case "keyword":
			config.Keyword = value
		case "arity":
			arity, err := ArityFromString(value)
			if err != nil {
				return nil, errs.ErrInvalidTagValue.WithArgs("arity", field.Name).Wrap(err)
			}
			config.Arity = &arity
		case "hints":
			config.Hints = strings.Split(value, ",")
		case "desc":
			config.Description = value
		case "group":
			config.Group = value
		default:
			return nil, errs.ErrUnrecognizedTag.WithArgs(key, field.Name)
		}
	}

	return config, nil
}

// InferArity derives an arity from a field type: booleans take no value, slices and arrays
// take one or more values and everything else takes exactly one value. Pointers are
// looked through.
func InferArity(t reflect.Type) types.Arity {
	t = util.UnwrapType(t)
	if t == nil {
		return 1
	}

	switch t.Kind() {
	case reflect.Bool:
		return types.Boolean
	case reflect.Slice, reflect.Array:
		return types.Variadic
	default:
		return 1
	}
}
