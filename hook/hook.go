// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hook provides the extension points around reconciliation and query execution.
//
// Actions are fired for an event and a table, guards can veto a drop and filters
// can modify the result rows of a query. Everything can be registered per table
// or globally with the table name Global. A nil *Hooks is valid and does nothing.
package hook

import (
	"fmt"
	"sync"

	"github.com/patrickascher/tablekit/schema"
)

// Global registers a hook for all tables.
const Global = "*"

// Event of an action.
type Event int

// All events.
const (
	BeforeUpdate Event = iota + 1
	AfterUpdate
	BeforeDrop
	AfterDrop
	Error
	Warning
	BeforeQuery
	AfterQuery
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case BeforeUpdate:
		return "BeforeUpdate"
	case AfterUpdate:
		return "AfterUpdate"
	case BeforeDrop:
		return "BeforeDrop"
	case AfterDrop:
		return "AfterDrop"
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case BeforeQuery:
		return "BeforeQuery"
	case AfterQuery:
		return "AfterQuery"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// GuardKind defines which step a guard can veto.
type GuardKind int

// All guards.
const (
	// GuardDeleteVersion vetoes the removal of the persisted version on drop.
	GuardDeleteVersion GuardKind = iota + 1
	// GuardDrop vetoes the drop of the table.
	GuardDrop
)

// Payload is handed to every action and guard.
// Only the fields of the event are set.
type Payload struct {
	Event  Event
	Table  string
	Schema *schema.Table

	// Error event.
	Err error
	// Warning event.
	Message string
	// Query events.
	// Query is the parameterized statement, Where the compiled predicate tree.
	Query     string
	Args      []interface{}
	Where     string
	WhereArgs []interface{}
	Input     interface{}
}

// Action is called when an event fires.
type Action func(Payload)

// GuardFn returns false to veto a step.
type GuardFn func(Payload) bool

// Filter receives the result rows of a query and returns the rows to use.
type Filter func(table string, rows []map[string]interface{}) []map[string]interface{}

type key struct {
	event Event
	table string
}

type guardKey struct {
	kind  GuardKind
	table string
}

// Hooks holds all registered actions, guards and filters.
type Hooks struct {
	mutex   sync.RWMutex
	actions map[key][]Action
	guards  map[guardKey][]GuardFn
	filters map[string][]Filter
}

// New creates an empty hook set.
func New() *Hooks {
	return &Hooks{
		actions: map[key][]Action{},
		guards:  map[guardKey][]GuardFn{},
		filters: map[string][]Filter{},
	}
}

// On registers an action for the event and table.
func (h *Hooks) On(e Event, table string, a Action) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	k := key{event: e, table: table}
	h.actions[k] = append(h.actions[k], a)
}

// Has reports if an action is registered for the event, either for the table or globally.
func (h *Hooks) Has(e Event, table string) bool {
	if h == nil {
		return false
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.actions[key{event: e, table: table}]) > 0 || len(h.actions[key{event: e, table: Global}]) > 0
}

// Fire calls all table actions first and then the global ones, in registration order.
// The event and table of the payload are set.
func (h *Hooks) Fire(e Event, table string, p Payload) {
	if h == nil {
		return
	}
	p.Event = e
	p.Table = table

	h.mutex.RLock()
	actions := append(append([]Action{}, h.actions[key{event: e, table: table}]...), h.actions[key{event: e, table: Global}]...)
	h.mutex.RUnlock()

	for _, a := range actions {
		a(p)
	}
}

// Guard registers a guard for the table.
func (h *Hooks) Guard(g GuardKind, table string, fn GuardFn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	k := guardKey{kind: g, table: table}
	h.guards[k] = append(h.guards[k], fn)
}

// Allowed returns false if any table or global guard vetoes.
func (h *Hooks) Allowed(g GuardKind, table string, p Payload) bool {
	if h == nil {
		return true
	}
	p.Table = table

	h.mutex.RLock()
	guards := append(append([]GuardFn{}, h.guards[guardKey{kind: g, table: table}]...), h.guards[guardKey{kind: g, table: Global}]...)
	h.mutex.RUnlock()

	for _, fn := range guards {
		if !fn(p) {
			return false
		}
	}
	return true
}

// Filter registers a row filter for the table.
func (h *Hooks) Filter(table string, fn Filter) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.filters[table] = append(h.filters[table], fn)
}

// ApplyFilters passes the rows through all table filters and then the global ones.
func (h *Hooks) ApplyFilters(table string, rows []map[string]interface{}) []map[string]interface{} {
	if h == nil {
		return rows
	}

	h.mutex.RLock()
	filters := append(append([]Filter{}, h.filters[table]...), h.filters[Global]...)
	h.mutex.RUnlock()

	for _, fn := range filters {
		rows = fn(table, rows)
	}
	return rows
}
