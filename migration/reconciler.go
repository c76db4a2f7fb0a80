// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package migration

import (
	"strconv"

	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/query/types"
	"github.com/patrickascher/tablekit/schema"
)

// Reconciler brings the live table structure in line with the schema columns.
// Indexes are not its concern, they are added by the migrator afterwards.
type Reconciler interface {
	Reconcile(s Store, t *schema.Table) error
}

// DDLReconciler creates the table if it does not exist.
// Otherwise, missing columns are added and columns with a changed type or nullability are modified.
// Columns which are not defined in the schema anymore are kept.
type DDLReconciler struct{}

// Reconcile the table.
func (DDLReconciler) Reconcile(s Store, t *schema.Table) error {
	exists, err := s.TableExists(t.Name())
	if err != nil {
		return err
	}
	if !exists {
		return s.Exec(t.CreateDefinition())
	}

	live, err := s.Columns(t.Name())
	if err != nil {
		return err
	}
	columns := make(map[string]query.Column, len(live))
	for _, c := range live {
		columns[c.Name] = c
	}

	primary := make(map[string]bool)
	for _, name := range t.PrimaryColumns() {
		primary[name] = true
	}

	for _, c := range t.Columns().Items() {
		def, _ := c.Definition()
		lc, ok := columns[c.Name()]
		switch {
		case !ok:
			err = s.Exec("ALTER TABLE " + s.Quote(t.Name()) + " ADD COLUMN " + def)
		case drifted(c, lc, primary[c.Name()]):
			err = s.Exec("ALTER TABLE " + s.Quote(t.Name()) + " MODIFY COLUMN " + def)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// drifted reports if the live column type or nullability differs from the schema column.
// Primary key columns are never reported as nullable.
func drifted(c schema.Column, lc query.Column, primary bool) bool {
	if lc.Type == nil || !ExpectedType(c).Equal(lc.Type) {
		return true
	}
	return !primary && c.Nullable() != lc.NullAble
}

// ExpectedType returns the column type as the store reports it.
func ExpectedType(c schema.Column) types.Interface {
	raw := c.SQLType()

	l, hasLength := c.(schema.Lengthable)
	p, hasPrecision := c.(schema.Precisionable)
	switch {
	case hasLength && hasPrecision && l.Length() > 0 && p.Precision() > 0:
		raw += "(" + strconv.Itoa(l.Length()) + "," + strconv.Itoa(p.Precision()) + ")"
	case hasLength && l.Length() > 0:
		raw += "(" + strconv.Itoa(l.Length()) + ")"
	case hasPrecision && p.Precision() > 0:
		raw += "(" + strconv.Itoa(p.Precision()) + ")"
	}

	if s, ok := c.(schema.Signable); ok && s.Unsigned() {
		raw += " unsigned"
	}
	return types.Parse(raw)
}
