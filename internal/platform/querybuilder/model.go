package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// modelLayout is the db-tagged column layout of a struct type.
type modelLayout struct {
	columns []string
	fields  []int
}

var layouts sync.Map // reflect.Type -> modelLayout

// InsertModel builds an INSERT from the exported db-tagged fields of model,
// in declaration order. Fields tagged "-" or without a tag are skipped.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", nil, fmt.Errorf("insert %s: model cannot be nil", table)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", nil, fmt.Errorf("insert %s: model must be a struct, got %s", table, value.Kind())
	}

	layout, err := layoutOf(value.Type())
	if err != nil {
		return "", nil, fmt.Errorf("insert %s: %w", table, err)
	}
	values := make([]any, len(layout.fields))
	for i, field := range layout.fields {
		values[i] = value.Field(field).Interface()
	}

	return InsertInto(table).
		Columns(layout.columns...).
		Values(values...).
		Suffix(suffix).
		ToSQL()
}

func layoutOf(typ reflect.Type) (modelLayout, error) {
	if cached, ok := layouts.Load(typ); ok {
		return cached.(modelLayout), nil
	}

	var layout modelLayout
	seen := make(map[string]string, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		if other, dup := seen[column]; dup {
			return modelLayout{}, fmt.Errorf("column %q is tagged on both %s and %s", column, other, field.Name)
		}
		seen[column] = field.Name
		layout.columns = append(layout.columns, column)
		layout.fields = append(layout.fields, i)
	}
	if len(layout.columns) == 0 {
		return modelLayout{}, fmt.Errorf("%s has no db columns", typ.Name())
	}

	layouts.Store(typ, layout)
	return layout, nil
}
