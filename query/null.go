// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package query

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"

	"gopkg.in/guregu/null.v4"
)

// Error messages.
var (
	ErrSanitize = "query: can not sanitize value %v of type %s"
)

// Null types of gopkg.in/guregu/null.v4.
// They can be scanned, marshaled to JSON and are accepted as values.
type (
	NullString = null.String
	NullBool   = null.Bool
	NullInt    = null.Int
	NullFloat  = null.Float
	NullTime   = null.Time
)

// NewNullString creates a new NullString.
func NewNullString(s string, valid bool) NullString {
	return null.NewString(s, valid)
}

// NewNullBool creates a new NullBool.
func NewNullBool(b bool, valid bool) NullBool {
	return null.NewBool(b, valid)
}

// NewNullInt creates a new NullInt.
func NewNullInt(i int64, valid bool) NullInt {
	return null.NewInt(i, valid)
}

// NewNullFloat creates a new NullFloat.
func NewNullFloat(f float64, valid bool) NullFloat {
	return null.NewFloat(f, valid)
}

// NewNullTime creates a new NullTime.
func NewNullTime(t time.Time, valid bool) NullTime {
	return null.NewTime(t, valid)
}

// Sanitize normalizes a value before it is passed to the driver.
// Integers are converted to int64, unsigned integers to int64, floats to float64.
// A driver.Valuer (like the Null types) is resolved, an invalid one returns nil.
// Strings, bools, time.Time, []byte and nil are returned unchanged.
// Error will return for any other kind.
func Sanitize(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string, bool, []byte, time.Time:
		return v, nil
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		return Sanitize(dv)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		return Sanitize(rv.Elem().Interface())
	}

	return nil, fmt.Errorf(ErrSanitize, value, rv.Type().String())
}

// SanitizeToString converts the sanitized value to a string.
// A nil value returns an empty string.
func SanitizeToString(value interface{}) (string, error) {
	v, err := Sanitize(value)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	return fmt.Sprintf("%v", v), nil
}
