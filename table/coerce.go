// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/schema"
	"github.com/spf13/cast"
)

// datetime layouts which are accepted as input.
var layouts = []string{
	schema.DateTimeFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// isList reports if the value is a slice or array, []byte and json.RawMessage are single values.
func isList(v interface{}) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case []byte, json.RawMessage:
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// list returns the elements of a slice or array.
func list(v interface{}) []interface{} {
	rv := reflect.ValueOf(v)
	rs := make([]interface{}, rv.Len())
	for i := range rs {
		rs[i] = rv.Index(i).Interface()
	}
	return rs
}

// coerce converts the value to the write form of the column.
// nil stays nil, which is written as NULL.
func coerce(c schema.Column, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		v = rv.Elem().Interface()
	}

	switch c.NativeType() {
	case schema.JSON:
		if raw, ok := v.(json.RawMessage); ok {
			return string(raw), nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("table: %s: %w", c.Name(), err)
		}
		return string(b), nil
	case schema.Blob:
		switch b := v.(type) {
		case []byte:
			return base64.StdEncoding.EncodeToString(b), nil
		case string:
			return base64.StdEncoding.EncodeToString([]byte(b)), nil
		}
	}

	// resolve Null types.
	s, err := query.Sanitize(v)
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", c.Name(), err)
	}
	if s == nil {
		return nil, nil
	}

	switch c.NativeType() {
	case schema.Int:
		return toInt64(s), nil
	case schema.Bool:
		if toBool(s) {
			return int64(1), nil
		}
		return int64(0), nil
	case schema.Float:
		return toFloat64(s), nil
	case schema.DateTime:
		if t, ok := toTime(s); ok {
			return t.Format(schema.DateTimeFormat), nil
		}
		return toString(raw(s)), nil
	case schema.Blob:
		return base64.StdEncoding.EncodeToString([]byte(toString(raw(s)))), nil
	}
	if b, ok := s.([]byte); ok {
		return string(b), nil
	}
	return toString(s), nil
}

// decode converts a scanned value to the native type of the column.
// A value which can not be decoded is returned as string.
func decode(c schema.Column, v interface{}) interface{} {
	if v == nil {
		return nil
	}

	switch c.NativeType() {
	case schema.Int:
		return toInt64(v)
	case schema.Bool:
		return toBool(v)
	case schema.Float:
		return toFloat64(v)
	case schema.DateTime:
		if t, ok := toTime(v); ok {
			return t
		}
	case schema.JSON:
		var rv interface{}
		if err := json.Unmarshal([]byte(toString(raw(v))), &rv); err == nil {
			return rv
		}
	case schema.Blob:
		if b, err := base64.StdEncoding.DecodeString(toString(raw(v))); err == nil {
			return b
		}
	}
	return toString(raw(v))
}

// raw converts driver bytes to a string.
func raw(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// toInt64 converts numbers, bools and numeric strings. Anything else is 0.
func toInt64(v interface{}) int64 {
	switch n := raw(v).(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
		return 0
	}
	if s, err := query.Sanitize(v); err == nil && isNumber(s) {
		return toInt64(s)
	}
	return 0
}

// toFloat64 converts numbers, bools and numeric strings. Anything else is 0.
func toFloat64(v interface{}) float64 {
	switch n := raw(v).(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return f
	}
	if s, err := query.Sanitize(v); err == nil && isNumber(s) {
		return toFloat64(s)
	}
	return 0
}

// toBool is true for true, a number other than 0, the strings yes and on and every string strconv.ParseBool accepts as true.
func toBool(v interface{}) bool {
	switch b := raw(v).(type) {
	case bool:
		return b
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		if s == "yes" || s == "on" {
			return true
		}
		ok, err := cast.ToBoolE(s)
		return err == nil && ok
	}
	return toFloat64(v) != 0
}

// toTime parses time.Time or a string in one of the accepted layouts.
// Other date strings like RFC1123 are parsed by cast.
func toTime(v interface{}) (time.Time, bool) {
	switch t := raw(v).(type) {
	case time.Time:
		return t, true
	case string:
		t = strings.TrimSpace(t)
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		if parsed, err := cast.ToTimeE(t); err == nil && t != "" {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// isNumber reports if the sanitized value is an int64 or float64.
func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

// Interpolate replaces every ? placeholder with the quoted argument.
// It is meant for logs and tests, never execute the result.
func Interpolate(stmt string, args []interface{}) string {
	parts := strings.Split(stmt, "?")
	if len(parts)-1 != len(args) {
		return stmt
	}

	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(args) {
			b.WriteString(literal(args[i]))
		}
	}
	return b.String()
}

// literal renders a single argument.
func literal(v interface{}) string {
	s, err := query.Sanitize(v)
	if err != nil {
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", v), "'", "''") + "'"
	}
	switch n := s.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		if n {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + n.Format(schema.DateTimeFormat) + "'"
	}
	str, _ := query.SanitizeToString(s)
	return "'" + strings.ReplaceAll(str, "'", "''") + "'"
}
