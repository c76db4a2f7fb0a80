// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import "fmt"

// Lengthable is implemented by columns with a length, e.g. varchar(191).
type Lengthable interface {
	Length() int
	SetLength(int)
}

// Precisionable is implemented by columns with a precision, e.g. decimal(10,2).
type Precisionable interface {
	Precision() int
	SetPrecision(int)
}

// Signable is implemented by numeric columns which can be unsigned.
type Signable interface {
	Unsigned() bool
	SetUnsigned(bool)
}

// AutoIncrementable is implemented by columns which can auto increment.
type AutoIncrementable interface {
	AutoIncrement() bool
	SetAutoIncrement(bool)
}

// Indexable is implemented by columns which can declare their own index.
type Indexable interface {
	IsIndex() bool
	SetIsIndex(bool)
	IsUnique() bool
	SetIsUnique(bool)
	IsPrimary() bool
	SetIsPrimary(bool)
}

// length trait.
type length struct {
	length int
}

// Length of the column.
func (l *length) Length() int {
	return l.length
}

// SetLength of the column. A zero value will not be rendered.
func (l *length) SetLength(n int) {
	l.length = n
}

// precision trait.
type precision struct {
	precision int
}

// Precision of the column.
func (p *precision) Precision() int {
	return p.precision
}

// SetPrecision of the column. A zero value will not be rendered.
func (p *precision) SetPrecision(n int) {
	p.precision = n
}

// sign trait.
type sign struct {
	unsigned bool
}

// Unsigned reports if the column is unsigned.
func (s *sign) Unsigned() bool {
	return s.unsigned
}

// SetUnsigned sets the column unsigned.
func (s *sign) SetUnsigned(b bool) {
	s.unsigned = b
}

// autoIncrement trait.
type autoIncrement struct {
	autoIncrement bool
}

// AutoIncrement reports if the column auto increments.
func (a *autoIncrement) AutoIncrement() bool {
	return a.autoIncrement
}

// SetAutoIncrement sets the auto increment flag.
func (a *autoIncrement) SetAutoIncrement(b bool) {
	a.autoIncrement = b
}

// index trait.
type index struct {
	index   bool
	unique  bool
	primary bool
}

// IsIndex reports if a plain index is declared.
func (i *index) IsIndex() bool {
	return i.index
}

// SetIsIndex declares a plain index.
func (i *index) SetIsIndex(b bool) {
	i.index = b
}

// IsUnique reports if a unique index is declared.
func (i *index) IsUnique() bool {
	return i.unique
}

// SetIsUnique declares a unique index.
func (i *index) SetIsUnique(b bool) {
	i.unique = b
}

// IsPrimary reports if the column is the primary key.
func (i *index) IsPrimary() bool {
	return i.primary
}

// SetIsPrimary declares the column as primary key.
func (i *index) SetIsPrimary(b bool) {
	i.primary = b
}

// capabilityError returns an ErrCapability for the column and capability.
func capabilityError(c Column, capability string) error {
	return fmt.Errorf("%w %s (%s)", ErrCapability, capability, c.Kind())
}

// SetLength sets the length if the column is Lengthable.
func SetLength(c Column, n int) error {
	l, ok := c.(Lengthable)
	if !ok {
		return capabilityError(c, "length")
	}
	l.SetLength(n)
	return nil
}

// SetPrecision sets the precision if the column is Precisionable.
func SetPrecision(c Column, n int) error {
	p, ok := c.(Precisionable)
	if !ok {
		return capabilityError(c, "precision")
	}
	p.SetPrecision(n)
	return nil
}

// SetUnsigned sets the sign if the column is Signable.
func SetUnsigned(c Column, b bool) error {
	s, ok := c.(Signable)
	if !ok {
		return capabilityError(c, "unsigned")
	}
	s.SetUnsigned(b)
	return nil
}

// SetAutoIncrement sets the flag if the column is AutoIncrementable.
func SetAutoIncrement(c Column, b bool) error {
	a, ok := c.(AutoIncrementable)
	if !ok {
		return capabilityError(c, "auto increment")
	}
	a.SetAutoIncrement(b)
	return nil
}

// SetIsIndex sets the flag if the column is Indexable.
func SetIsIndex(c Column, b bool) error {
	i, ok := c.(Indexable)
	if !ok {
		return capabilityError(c, "index")
	}
	i.SetIsIndex(b)
	return nil
}

// SetIsUnique sets the flag if the column is Indexable.
func SetIsUnique(c Column, b bool) error {
	i, ok := c.(Indexable)
	if !ok {
		return capabilityError(c, "unique")
	}
	i.SetIsUnique(b)
	return nil
}

// SetIsPrimary sets the flag if the column is Indexable.
func SetIsPrimary(c Column, b bool) error {
	i, ok := c.(Indexable)
	if !ok {
		return capabilityError(c, "primary")
	}
	i.SetIsPrimary(b)
	return nil
}

// IsAutoIncrement reports if the column implements AutoIncrementable and has it enabled.
func IsAutoIncrement(c Column) bool {
	a, ok := c.(AutoIncrementable)
	return ok && a.AutoIncrement()
}

// IsPrimary reports if the column implements Indexable and is flagged as primary.
func IsPrimary(c Column) bool {
	i, ok := c.(Indexable)
	return ok && i.IsPrimary()
}
