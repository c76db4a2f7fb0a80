// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package migration reconciles a schema.Table with the live store.
//
// A table is stale if no version is persisted or the persisted version differs from the
// version signature of the schema. Update hands the table to a Reconciler, archives the
// previous version, persists the new one and adds every missing index in a second pass.
// The index pass checks before it adds, so it can run any number of times.
//
// Persistence errors are returned, unless a hook.Error action is registered for the
// table or globally. In that case the error is handed to the action and nil returns.
package migration

import (
	"errors"
	"fmt"

	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/schema"
	"github.com/segmentio/ksuid"
)

// DefaultPrefix of the option keys.
const DefaultPrefix = "tablekit"

// Error messages.
var (
	ErrTable   = errors.New("migration: table is mandatory")
	ErrStore   = errors.New("migration: store is mandatory")
	ErrOptions = errors.New("migration: options are mandatory")
)

// Migrator of a single table.
type Migrator struct {
	table      *schema.Table
	store      Store
	options    Options
	reconciler Reconciler
	hooks      *hook.Hooks
	logger     logger.Manager
	prefix     string
}

// Option configures the Migrator.
type Option func(*Migrator)

// WithHooks sets the hooks.
func WithHooks(h *hook.Hooks) Option {
	return func(m *Migrator) {
		m.hooks = h
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Manager) Option {
	return func(m *Migrator) {
		m.logger = l
	}
}

// WithPrefix sets the option key prefix.
func WithPrefix(prefix string) Option {
	return func(m *Migrator) {
		m.prefix = prefix
	}
}

// WithReconciler replaces the DDLReconciler.
func WithReconciler(r Reconciler) Option {
	return func(m *Migrator) {
		m.reconciler = r
	}
}

// New creates a Migrator for the table.
func New(t *schema.Table, s Store, o Options, opts ...Option) (*Migrator, error) {
	switch {
	case t == nil:
		return nil, ErrTable
	case s == nil:
		return nil, ErrStore
	case o == nil:
		return nil, ErrOptions
	}

	m := &Migrator{table: t, store: s, options: o, reconciler: DDLReconciler{}, logger: logger.Discard(), prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Table returns the schema.
func (m *Migrator) Table() *schema.Table {
	return m.table
}

// VersionKey returns the option name of the persisted version.
func (m *Migrator) VersionKey() string {
	return fmt.Sprintf("%s_%s_version", m.prefix, m.table.Name())
}

// PreviousVersionKey returns the option name of the archived version.
func (m *Migrator) PreviousVersionKey() string {
	return m.VersionKey() + "_previous"
}

// Version returns the version signature of the schema.
func (m *Migrator) Version() string {
	return m.table.Version()
}

// StoredVersion returns the persisted version and false if none exists.
func (m *Migrator) StoredVersion() (string, bool, error) {
	return m.options.Get(m.VersionKey())
}

// PreviousVersion returns the archived version and false if none exists.
func (m *Migrator) PreviousVersion() (string, bool, error) {
	return m.options.Get(m.PreviousVersionKey())
}

// IsCurrent reports if the persisted version equals the version signature.
func (m *Migrator) IsCurrent() (bool, error) {
	v, ok, err := m.StoredVersion()
	if err != nil {
		return false, err
	}
	return ok && v == m.Version(), nil
}

// MaybeUpdate calls Update if the table is not current.
// It reports if an update was made.
func (m *Migrator) MaybeUpdate() (bool, error) {
	current, err := m.IsCurrent()
	if err != nil {
		return false, m.handle(err, m.logger)
	}
	if current {
		return false, nil
	}
	return true, m.Update()
}

// Update reconciles the table, persists the version and adds all missing indexes.
func (m *Migrator) Update() error {
	log := m.logger.WithFields(logger.Fields{"table": m.table.Name(), "version": m.Version(), "run": ksuid.New().String()})
	log.Info("update")

	m.hooks.Fire(hook.BeforeUpdate, m.table.Name(), hook.Payload{Schema: m.table})
	if err := m.update(log); err != nil {
		return m.handle(err, log)
	}
	m.hooks.Fire(hook.AfterUpdate, m.table.Name(), hook.Payload{Schema: m.table})

	log.WithTimer().Info("updated")
	return nil
}

func (m *Migrator) update(log logger.Manager) error {
	if err := m.reconciler.Reconcile(m.store, m.table); err != nil {
		return err
	}

	previous, ok, err := m.StoredVersion()
	if err != nil {
		return err
	}
	if ok {
		if err = m.options.Set(m.PreviousVersionKey(), previous); err != nil {
			return err
		}
	}
	if err = m.options.Set(m.VersionKey(), m.Version()); err != nil {
		return err
	}

	return m.ensureIndexes(log)
}

// ensureIndexes adds every index of the schema which does not exist yet.
func (m *Migrator) ensureIndexes(log logger.Manager) error {
	for _, i := range m.table.Indexes() {
		exists, err := m.store.IndexExists(m.table.Name(), i.Key())
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		stmt, err := i.AlterTableDefinition()
		if err != nil {
			return err
		}
		if err = m.store.Exec(stmt); err != nil {
			return err
		}
		log.WithFields(logger.Fields{"index": i.Key()}).Debug("index added")
	}
	return nil
}

// Drop removes the persisted version and the table.
// Both steps can be vetoed by a hook.GuardDeleteVersion or hook.GuardDrop guard.
func (m *Migrator) Drop() error {
	log := m.logger.WithFields(logger.Fields{"table": m.table.Name(), "run": ksuid.New().String()})
	log.Info("drop")

	p := hook.Payload{Schema: m.table}
	m.hooks.Fire(hook.BeforeDrop, m.table.Name(), p)

	if m.hooks.Allowed(hook.GuardDeleteVersion, m.table.Name(), p) {
		if err := m.options.Delete(m.VersionKey()); err != nil {
			return m.handle(err, log)
		}
	}

	if m.hooks.Allowed(hook.GuardDrop, m.table.Name(), p) {
		exists, err := m.store.TableExists(m.table.Name())
		if err != nil {
			return m.handle(err, log)
		}
		if exists {
			if err = m.store.Exec("DROP TABLE " + m.store.Quote(m.table.Name())); err != nil {
				return m.handle(err, log)
			}
		}
	}

	m.hooks.Fire(hook.AfterDrop, m.table.Name(), p)
	return nil
}

// Truncate deletes all rows of the table.
func (m *Migrator) Truncate() error {
	return m.store.Exec("DELETE FROM " + m.store.Quote(m.table.Name()))
}

// Exists reports if the table exists.
func (m *Migrator) Exists() (bool, error) {
	return m.store.TableExists(m.table.Name())
}

// ColumnExists reports if the column exists.
func (m *Migrator) ColumnExists(column string) (bool, error) {
	return m.store.ColumnExists(m.table.Name(), column)
}

// IndexExists reports if the index exists.
func (m *Migrator) IndexExists(index string) (bool, error) {
	return m.store.IndexExists(m.table.Name(), index)
}

// handle hands the error to the registered hook.Error actions.
// The error returns if none are registered.
func (m *Migrator) handle(err error, log logger.Manager) error {
	if !m.hooks.Has(hook.Error, m.table.Name()) {
		return err
	}
	log.Error(err.Error())
	m.hooks.Fire(hook.Error, m.table.Name(), hook.Payload{Schema: m.table, Err: err})
	return nil
}
