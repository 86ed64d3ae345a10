package dataset

import (
	"fmt"
	"reflect"
)

// Columns returns the column names of a record in field order, read from its
// db struct tags. The inserter and exporters use this so they stay generic
// over all record types.
func Columns(record any) ([]string, error) {
	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dataset: record must be a struct, got %T", record)
	}

	t := v.Type()
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns, nil
}

// Values returns a record's field values in the same order Columns reports
// them. Nil pointer fields become nil so they insert as NULL.
func Values(record any) ([]any, error) {
	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dataset: record must be a struct, got %T", record)
	}

	t := v.Type()
	values := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		field := v.Field(i)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				values = append(values, nil)
				continue
			}
			field = field.Elem()
		}
		values = append(values, field.Interface())
	}
	return values, nil
}
