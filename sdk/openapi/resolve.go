// Copyright 2022, Pulumi Corporation.  All rights reserved.

package openapi

import (
	"fmt"
	"reflect"
)

// UnknownFieldError is returned when a path segment names a field the current
// type does not declare.
type UnknownFieldError struct {
	Type  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Type, e.Field)
}

// UnknownKeyError is returned when a path segment following a map field is
// not a key of the decoded map.
type UnknownKeyError struct {
	Field string
	Key   string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s has no entry %q", e.Field, e.Key)
}

// ResolveFields walks path from root and returns the fields declared by the
// type found at its end, in declaration order.
//
// The segment after a map field is a key of that map. A path that ends on a
// map field, or on a type outside the model, has no fields. Extension maps
// are never listed.
func ResolveFields(root *Swagger, path []string) ([]Field, error) {
	v := reflect.Zero(rootType)
	if root != nil {
		v = reflect.ValueOf(root).Elem()
	}

	for i := 0; i < len(path); i++ {
		v = indirect(v)
		d, ok := registry[v.Type()]
		if !ok {
			return nil, &UnknownFieldError{Type: typeLabel(v.Type()), Field: path[i]}
		}
		f, ok := d.field(path[i])
		if !ok {
			return nil, &UnknownFieldError{Type: typeLabel(d.typ), Field: path[i]}
		}
		v = v.FieldByIndex(f.index)
		if f.Kind != Map {
			continue
		}
		if i+1 == len(path) {
			return nil, nil
		}
		i++
		entry, ok := mapIndex(indirect(v), path[i])
		if !ok {
			return nil, &UnknownKeyError{Field: f.Name, Key: path[i]}
		}
		v = entry
	}

	v = indirect(v)
	d, ok := registry[v.Type()]
	if !ok {
		return nil, nil
	}
	return d.list(), nil
}

// indirect follows pointers and interfaces. A nil pointer resolves to the zero
// value of its element type.
func indirect(v reflect.Value) reflect.Value {
	for {
		switch v.Kind() {
		case reflect.Pointer:
			if v.IsNil() {
				v = reflect.Zero(v.Type().Elem())
				continue
			}
			v = v.Elem()
		case reflect.Interface:
			if v.IsNil() {
				return v
			}
			v = v.Elem()
		default:
			return v
		}
	}
}

func mapIndex(m reflect.Value, key string) (reflect.Value, bool) {
	if m.Kind() != reflect.Map || m.Type().Key().Kind() != reflect.String || m.IsNil() {
		return reflect.Value{}, false
	}
	entry := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	return entry, entry.IsValid()
}
