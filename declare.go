package optable

import (
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optable/errs"
	"github.com/napalu/optable/internal/util"
	"github.com/napalu/optable/parse"
	"github.com/napalu/optable/types"
)

// DescriptorsFromStruct declares one option per exported field of v carrying an `optable` tag.
// v must be a struct or a pointer to one. Fields tagged `optable:"-"` are skipped.
//
//	type Options struct {
//		Verbose bool     `optable:"short:v;desc:prints more output"`
//		Files   []string `optable:"long:file;desc:files to process;group:Input"`
//		Out     string   `optable:"short:o;hints:<path>;desc:output file"`
//	}
//
// A field without identifiers is declared with its name in lowerCamel case as long name. When
// the arity is omitted it is inferred from the field type (see parse.InferArity), and options
// taking a single or variadic value without hints get a hint derived from the field name.
// The returned table is not validated; pass it to NewRegistry or Engine.Setup.
func DescriptorsFromStruct(v interface{}) ([]Descriptor, error) {
	value, err := util.UnwrapValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	st := value.Type()
	if st.Kind() != reflect.Struct {
		return nil, errs.ErrOnlyStructs
	}

	var table []Descriptor
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, ok := field.Tag.Lookup(parse.TagName)
		if !ok || tag == "-" {
			continue
		}

		d, err := descriptorFromField(field, tag)
		if err != nil {
			return nil, errs.ErrProcessingField.WithArgs(field.Name).Wrap(err)
		}
		table = append(table, d)
	}

	return table, nil
}

func descriptorFromField(field reflect.StructField, tag string) (Descriptor, error) {
	config, err := parse.UnmarshalTag(tag, field)
	if err != nil {
		return Descriptor{}, err
	}

	d := Descriptor{
		Short:       config.Short,
		Long:        config.Long,
		Keyword:     config.Keyword,
		Hints:       config.Hints,
		Description: config.Description,
		Group:       config.Group,
	}
	if d.Short == "" && d.Long == "" && d.Keyword == "" {
		d.Long = strcase.ToLowerCamel(field.Name)
	}

	if config.Arity != nil {
		d.Arity = *config.Arity
	} else {
		d.Arity = parse.InferArity(field.Type)
	}

	if len(d.Hints) == 0 && (d.Arity == 1 || d.Arity == types.Variadic) {
		d.Hints = []string{"<" + strcase.ToKebab(field.Name) + ">"}
	}

	return d, nil
}
