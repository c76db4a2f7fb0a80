// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/patrickascher/tablekit/stringer"
	"github.com/patrickascher/tablekit/structer"
)

// TagName of the struct tag.
const TagName = "table"

// Tag keys.
const (
	tagSkip          = "-"
	tagName          = "name"
	tagKind          = "kind"
	tagType          = "type"
	tagNative        = "native"
	tagLength        = "length"
	tagPrecision     = "precision"
	tagUnsigned      = "unsigned"
	tagAutoIncrement = "autoincrement"
	tagNullable      = "nullable"
	tagDefault       = "default"
	tagOnUpdate      = "onupdate"
	tagSearchable    = "searchable"
	tagIndex         = "index"
	tagUnique        = "unique"
	tagPrimary       = "primary"
)

// Column kind names which can be used in the kind tag.
const (
	KindInteger  = "integer"
	KindFloat    = "float"
	KindString   = "string"
	KindText     = "text"
	KindBlob     = "blob"
	KindBinary   = "binary"
	KindBoolean  = "boolean"
	KindDateTime = "datetime"
)

var timeType = reflect.TypeOf(time.Time{})

// ColumnsFromStruct creates the columns of all exported struct fields.
// The column name is the snake case field name, the kind is derived from the field type and can be changed by tag.
//
//	type Post struct {
//		ID    int    `table:"primary;autoincrement;unsigned"`
//		Title string `table:"length:120;searchable"`
//		Body  string `table:"kind:text"`
//		Extra string `table:"-"`
//	}
func ColumnsFromStruct(v interface{}) ([]Column, error) {
	rt := reflect.TypeOf(v)
	if rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrStruct, v)
	}

	var columns []Column
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := structer.ParseTag(field.Tag.Get(TagName))
		if _, skip := tag[tagSkip]; skip {
			continue
		}

		name := stringer.ColumnName(field.Name)
		if n, ok := tag[tagName]; ok && n != "" {
			name = n
		}

		ft := field.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
			nullable = true
		}

		kind, ok := tag[tagKind]
		if !ok || kind == "" {
			kind, ok = kindOf(ft)
			if !ok {
				return nil, fmt.Errorf("schema: field %s type %s is not supported, use the kind tag", field.Name, field.Type)
			}
		}

		opts, err := tagOptions(tag, ft)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: %w", field.Name, err)
		}
		if nullable {
			opts = append(opts, Nullable())
		}

		c, err := NewColumn(kind, name, opts...)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: %w", field.Name, err)
		}
		columns = append(columns, c)
	}

	return columns, nil
}

// TableName returns the plural snake case name of the struct type.
// Post becomes posts, BlogCategory becomes blog_categories.
func TableName(v interface{}) string {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil {
		return ""
	}
	return stringer.TableName(rt.Name())
}

// DefinitionFromStruct returns a definition named by TableName with the columns of ColumnsFromStruct.
func DefinitionFromStruct(v interface{}) (Definition, error) {
	columns, err := ColumnsFromStruct(v)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Name: TableName(v), Columns: columns}, nil
}

// NewColumn creates a column by its kind name.
func NewColumn(kind string, name string, opts ...Option) (Column, error) {
	var c Column
	switch strings.ToLower(kind) {
	case KindInteger:
		c = NewInteger(name, opts...)
	case KindFloat:
		c = NewFloat(name, opts...)
	case KindString:
		c = NewString(name, opts...)
	case KindText:
		c = NewText(name, opts...)
	case KindBlob:
		c = NewBlob(name, opts...)
	case KindBinary:
		c = NewBinary(name, opts...)
	case KindBoolean:
		c = NewBoolean(name, opts...)
	case KindDateTime:
		c = NewDateTime(name, opts...)
	default:
		return nil, fmt.Errorf("schema: column kind %q is not supported", kind)
	}
	if err := c.Error(); err != nil {
		return nil, err
	}
	return c, nil
}

// kindOf maps the go type to a column kind.
func kindOf(rt reflect.Type) (string, bool) {
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger, true
	case reflect.Float32, reflect.Float64:
		return KindFloat, true
	case reflect.String:
		return KindString, true
	case reflect.Bool:
		return KindBoolean, true
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return KindBlob, true
		}
		return KindText, true
	case reflect.Map:
		return KindText, true
	case reflect.Struct:
		if rt == timeType {
			return KindDateTime, true
		}
		return KindText, true
	}
	return "", false
}

// tagOptions converts the tag into column options.
func tagOptions(tag map[string]string, rt reflect.Type) ([]Option, error) {
	var opts []Option

	switch rt.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		opts = append(opts, Unsigned())
	case reflect.Map, reflect.Slice, reflect.Struct:
		if rt != timeType && !(rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8) {
			opts = append(opts, WithNativeType(JSON))
		}
	}

	for k, v := range tag {
		switch k {
		case tagType:
			opts = append(opts, WithSQLType(v))
		case tagNative:
			opts = append(opts, WithNativeType(NativeType(v)))
		case tagLength, tagPrecision:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("tag %s: %w", k, err)
			}
			if k == tagLength {
				opts = append(opts, WithLength(n))
			} else {
				opts = append(opts, WithPrecision(n))
			}
		case tagUnsigned:
			opts = append(opts, Unsigned())
		case tagAutoIncrement:
			opts = append(opts, AutoIncrement())
		case tagNullable:
			opts = append(opts, Nullable())
		case tagDefault:
			opts = append(opts, WithDefault(v))
		case tagOnUpdate:
			opts = append(opts, WithOnUpdate(v))
		case tagSearchable:
			opts = append(opts, Searchable())
		case tagIndex:
			opts = append(opts, Indexed())
		case tagUnique:
			opts = append(opts, Unique())
		case tagPrimary:
			opts = append(opts, Primary())
		case tagName, tagKind:
		default:
			return nil, fmt.Errorf("tag %q is not supported", k)
		}
	}

	return opts, nil
}
