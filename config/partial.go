// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
)

// checkShapes verifies that O is the optional counterpart of C: every field
// of C has exactly one field in O with the same name whose type is a pointer
// to the C field's type, and both fields are exported so the field-wise merge
// can set them. Returns a descriptive error naming the first offending field.
func checkShapes[C, O any]() error {
	ct := reflect.TypeOf((*C)(nil)).Elem()
	ot := reflect.TypeOf((*O)(nil)).Elem()

	if ct.Kind() != reflect.Struct {
		return fmt.Errorf("complete type %s is not a struct", ct)
	}
	if ot.Kind() != reflect.Struct {
		return fmt.Errorf("optional type %s is not a struct", ot)
	}
	if ot.NumField() != ct.NumField() {
		return fmt.Errorf("field count mismatch: %s has %d fields, %s has %d", ct, ct.NumField(), ot, ot.NumField())
	}

	for i := 0; i < ot.NumField(); i++ {
		of := ot.Field(i)
		if !of.IsExported() {
			return fmt.Errorf("optional field %s.%s is unexported", ot, of.Name)
		}

		cf, ok := ct.FieldByName(of.Name)
		if !ok {
			return fmt.Errorf("optional field %s.%s has no counterpart in %s", ot, of.Name, ct)
		}
		if !cf.IsExported() {
			return fmt.Errorf("complete field %s.%s is unexported", ct, cf.Name)
		}
		if of.Type.Kind() != reflect.Pointer {
			return fmt.Errorf("optional field %s.%s must be a pointer, got %s", ot, of.Name, of.Type)
		}
		if of.Type.Elem() != cf.Type {
			return fmt.Errorf("optional field %s.%s points to %s, complete field has %s", ot, of.Name, of.Type.Elem(), cf.Type)
		}
	}

	return nil
}

// applyPartial overrides dst's fields with the values behind partial's
// non-nil pointers; nil pointers leave the corresponding field untouched.
// Shapes are assumed to have passed checkShapes.
func applyPartial[C, O any](dst *C, partial *O) {
	dv := reflect.ValueOf(dst).Elem()
	pv := reflect.ValueOf(partial).Elem()
	pt := pv.Type()

	for i := 0; i < pv.NumField(); i++ {
		field := pv.Field(i)
		if field.IsNil() {
			continue
		}
		dv.FieldByName(pt.Field(i).Name).Set(field.Elem())
	}
}
