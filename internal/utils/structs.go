package utils

import (
	"fmt"
	"reflect"
)

// ColumnTag is the struct tag the repositories map onto table columns.
var ColumnTag = "db"

func structValue(input any) reflect.Value {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a struct or a pointer to a struct")
	}

	return v
}

// StructTagValues returns the column names of every tagged exported field, in
// declaration order.
func StructTagValues(input any) []string {
	v := structValue(input)
	t := v.Type()

	result := make([]string, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue
		}

		tag := t.Field(i).Tag.Get(ColumnTag)
		if tag == "" || tag == "-" {
			continue
		}

		result = append(result, tag)
	}

	return result
}

// StructToMap maps column name to field value for every tagged exported field.
func StructToMap(input any) map[string]any {
	v := structValue(input)
	t := v.Type()

	result := make(map[string]any, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue
		}

		tag := t.Field(i).Tag.Get(ColumnTag)
		if tag == "" || tag == "-" {
			continue
		}

		result[tag] = v.Field(i).Interface()
	}

	return result
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
