// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Version returns the version signature of the table.
// It is the declared version, followed by every group version and a checksum of the rendered definition.
// The signature changes whenever a column or index changes, it must never be edited by hand.
func (t *Table) Version() string {
	parts := []string{t.version}
	for _, g := range t.groups {
		v := g.Version
		if v == "" {
			v = DefaultVersion
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ".") + "-" + t.signature
}

// checksum over the create statement and all explicit index statements.
func (t *Table) checksum() string {
	var b strings.Builder
	b.WriteString(t.CreateDefinition())
	for _, i := range t.explicit.Items() {
		// validated on creation.
		def, _ := i.AlterTableDefinition()
		b.WriteString(";")
		b.WriteString(def)
	}
	return fmt.Sprintf("%08x", murmur3.Sum32([]byte(b.String())))
}
