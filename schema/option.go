// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

// Option configures a column on creation.
// A failing option is recorded on the column and returned by Error() and schema.New.
type Option func(Column) error

// apply runs all options on the column.
func apply[T Column](c T, opts []Option) T {
	for _, opt := range opts {
		c.base().addError(opt(c))
	}
	return c
}

// WithSQLType sets the sql type.
func WithSQLType(t string) Option {
	return func(c Column) error { return c.SetSQLType(t) }
}

// WithNativeType sets the native type.
func WithNativeType(t NativeType) Option {
	return func(c Column) error { return c.SetNativeType(t) }
}

// WithLength sets the length of a Lengthable column.
func WithLength(n int) Option {
	return func(c Column) error { return SetLength(c, n) }
}

// WithPrecision sets the precision of a Precisionable column.
func WithPrecision(n int) Option {
	return func(c Column) error { return SetPrecision(c, n) }
}

// Unsigned marks a Signable column as unsigned.
func Unsigned() Option {
	return func(c Column) error { return SetUnsigned(c, true) }
}

// AutoIncrement enables auto increment.
func AutoIncrement() Option {
	return func(c Column) error { return SetAutoIncrement(c, true) }
}

// Nullable allows NULL values.
func Nullable() Option {
	return func(c Column) error {
		c.SetNullable(true)
		return nil
	}
}

// WithDefault sets the default value.
func WithDefault(v string) Option {
	return func(c Column) error {
		c.SetDefault(v)
		return nil
	}
}

// WithoutDefault removes a default value set by the column kind.
func WithoutDefault() Option {
	return func(c Column) error {
		c.UnsetDefault()
		return nil
	}
}

// WithOnUpdate sets the ON UPDATE clause.
func WithOnUpdate(clause string) Option {
	return func(c Column) error {
		c.SetOnUpdate(clause)
		return nil
	}
}

// Searchable marks the column for term searches.
func Searchable() Option {
	return func(c Column) error {
		c.SetSearchable(true)
		return nil
	}
}

// Indexed declares a plain index on the column.
func Indexed() Option {
	return func(c Column) error { return SetIsIndex(c, true) }
}

// Unique declares a unique index on the column.
func Unique() Option {
	return func(c Column) error { return SetIsUnique(c, true) }
}

// Primary declares the column as primary key.
func Primary() Option {
	return func(c Column) error { return SetIsPrimary(c, true) }
}

// ID is a shortcut for an unsigned auto increment primary key.
func ID() Option {
	return func(c Column) error {
		for _, opt := range []Option{Unsigned(), AutoIncrement(), Primary()} {
			if err := opt(c); err != nil {
				return err
			}
		}
		return nil
	}
}
