// Copyright 2022, Pulumi Corporation.  All rights reserved.

package openapi

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// Kind classifies the value a field holds.
type Kind int

const (
	Scalar Kind = iota
	Object
	List
	Map
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case List:
		return "list"
	case Map:
		return "map"
	default:
		return "scalar"
	}
}

// Field is a field a model type declares.
type Field struct {
	// The key the field is written as.
	Name string
	Kind Kind
	// A short label for the field's type, such as "Contact" or "[]Tag".
	Detail string
}

type fieldDescriptor struct {
	Field
	index []int
	typ   reflect.Type
}

type typeDescriptor struct {
	typ    reflect.Type
	fields []fieldDescriptor
	byName map[string]int
}

func (d *typeDescriptor) field(name string) (fieldDescriptor, bool) {
	i, ok := d.byName[name]
	if !ok {
		return fieldDescriptor{}, false
	}
	return d.fields[i], true
}

func (d *typeDescriptor) list() []Field {
	fields := make([]Field, len(d.fields))
	for i, f := range d.fields {
		fields[i] = f.Field
	}
	return fields
}

var (
	rootType = reflect.TypeOf(Swagger{})
	// Only types declared under this package path are introspected. Everything
	// else is an opaque leaf.
	modelNamespace = rootType.PkgPath()
	registry       = buildRegistry(rootType)
)

func inNamespace(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() != "" &&
		strings.HasPrefix(t.PkgPath(), modelNamespace)
}

// buildRegistry describes root and every model type reachable from it.
func buildRegistry(root reflect.Type) map[reflect.Type]*typeDescriptor {
	registry := map[reflect.Type]*typeDescriptor{}
	queue := []reflect.Type{root}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if _, ok := registry[t]; ok {
			continue
		}
		d := describe(t)
		registry[t] = d
		for _, f := range d.fields {
			if next, ok := modelType(f.typ); ok {
				queue = append(queue, next)
			}
		}
	}
	return registry
}

func describe(t reflect.Type) *typeDescriptor {
	d := &typeDescriptor{typ: t, byName: map[string]int{}}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := yamlName(sf)
		if !ok {
			continue
		}
		_, dup := d.byName[name]
		contract.Assertf(!dup, "%s declares the key %q twice", t.Name(), name)
		d.byName[name] = len(d.fields)
		d.fields = append(d.fields, fieldDescriptor{
			Field: Field{
				Name:   name,
				Kind:   kindOf(sf.Type),
				Detail: typeLabel(sf.Type),
			},
			index: sf.Index,
			typ:   sf.Type,
		})
	}
	return d
}

// yamlName returns the key a struct field is decoded from. Unexported, skipped
// and inline fields have no key.
func yamlName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}
	name, opts, _ := strings.Cut(sf.Tag.Get("yaml"), ",")
	if name == "-" {
		return "", false
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "inline" {
			return "", false
		}
	}
	if name == "" {
		name = strings.ToLower(sf.Name)
	}
	return name, true
}

// modelType finds the model type held by t, looking through pointers and
// collection elements.
func modelType(t reflect.Type) (reflect.Type, bool) {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t, inNamespace(t)
		}
	}
}

func kindOf(t reflect.Type) Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return List
	case reflect.Map:
		return Map
	}
	if inNamespace(t) {
		return Object
	}
	return Scalar
}

func typeLabel(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return typeLabel(t.Elem())
	case reflect.Slice, reflect.Array:
		return "[]" + typeLabel(t.Elem())
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", typeLabel(t.Key()), typeLabel(t.Elem()))
	case reflect.Interface:
		return "any"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
