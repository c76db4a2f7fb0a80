// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package manager wires a configuration into a ready to use set of tables.
//
// It opens the database, creates the logger, the option store and the schema registry
// and hands out a table compiler and a migrator per registered definition.
//
//	m, err := manager.New(cfg)
//	err = m.Register(Post{}, Comment{})
//	updated, err := m.Upgrade()
//	posts, err := m.Table(Post{})
package manager

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/patrickascher/tablekit/cache"
	_ "github.com/patrickascher/tablekit/cache/memory"
	"github.com/patrickascher/tablekit/config"
	"github.com/patrickascher/tablekit/hook"
	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/logger/logrus"
	"github.com/patrickascher/tablekit/migration"
	"github.com/patrickascher/tablekit/query"
	_ "github.com/patrickascher/tablekit/query/mysql"
	_ "github.com/patrickascher/tablekit/query/sqlite3"
	"github.com/patrickascher/tablekit/schema"
	"github.com/patrickascher/tablekit/slicer"
	"github.com/patrickascher/tablekit/table"
)

// Error messages.
var (
	ErrDuplicate  = "manager: table %s is already registered"
	ErrNotDefined = "manager: table %s is not registered"
	ErrClosed     = errors.New("manager: is closed")
)

// Manager holds the shared resources of all tables.
type Manager struct {
	mutex sync.Mutex

	cfg      Configuration
	builder  query.Builder
	logger   logger.Manager
	cache    cache.Manager
	options  migration.Options
	hooks    *hook.Hooks
	registry *schema.Registry

	names    []string
	definers map[string]schema.Definer
	closed   bool
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger replaces the configured logrus logger.
func WithLogger(l logger.Manager) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithHooks sets the hooks which are passed to every table and migrator.
func WithHooks(h *hook.Hooks) Option {
	return func(m *Manager) {
		m.hooks = h
	}
}

// Load the configuration with the config provider and create the Manager.
// The provider values are set on top of the DefaultConfiguration.
func Load(provider string, options interface{}, opts ...Option) (*Manager, error) {
	cfg := DefaultConfiguration()
	if err := config.Load(provider, &cfg, options); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// New creates the Manager. Zero fields of the configuration are set to the DefaultConfiguration.
// Error will return if the configuration is invalid or the database can not be opened.
func New(cfg Configuration, opts ...Option) (*Manager, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, err
	}
	if err = config.Validate(&cfg); err != nil {
		return nil, err
	}

	m := &Manager{cfg: cfg, definers: make(map[string]schema.Definer)}
	for _, opt := range opts {
		opt(m)
	}
	if m.hooks == nil {
		m.hooks = hook.New()
	}
	if m.logger == nil {
		lvl, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		m.logger = logger.New(logrus.New(logrus.Options{Format: cfg.Log.Format, Output: os.Stderr}))
		m.logger.SetLogLevel(lvl)
	}

	m.builder, err = query.New(cfg.Database.Provider, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("manager: %w", err)
	}
	m.builder.SetLogger(m.logger)

	m.cache, err = cache.New(cache.MEMORY, nil)
	if err != nil {
		_ = m.builder.Close()
		return nil, fmt.Errorf("manager: %w", err)
	}
	m.registry = schema.NewRegistry(m.cache)

	switch cfg.Options.Provider {
	case OptionsDatabase:
		m.options, err = migration.NewDBOptions(m.builder, cfg.Options.Table)
		if err != nil {
			_ = m.builder.Close()
			return nil, fmt.Errorf("manager: %w", err)
		}
	default:
		m.options = migration.NewMemoryOptions(m.cache)
	}

	return m, nil
}

// Config returns the configuration with all defaults.
func (m *Manager) Config() Configuration {
	return m.cfg
}

// Builder returns the database connection.
func (m *Manager) Builder() query.Builder {
	return m.builder
}

// Logger returns the logger.
func (m *Manager) Logger() logger.Manager {
	return m.logger
}

// Hooks returns the shared hooks.
func (m *Manager) Hooks() *hook.Hooks {
	return m.hooks
}

// Register validates the definitions and adds them in the given order.
// Error will return if a definition is invalid or the table name is already registered.
func (m *Manager) Register(defs ...schema.Definer) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, d := range defs {
		t, err := m.schema(d)
		if err != nil {
			return err
		}
		if _, exists := slicer.StringExists(m.names, t.Name()); exists {
			return fmt.Errorf(ErrDuplicate, t.Name())
		}
		m.names = append(m.names, t.Name())
		m.definers[t.Name()] = d
	}
	return nil
}

// Tables returns the registered table names in order of registration.
func (m *Manager) Tables() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]string(nil), m.names...)
}

// Table returns the query compiler of the definition.
// The definition does not need to be registered.
func (m *Manager) Table(d schema.Definer) (*table.Table, error) {
	s, err := m.schema(d)
	if err != nil {
		return nil, err
	}
	return table.New(s, m.builder,
		table.WithHooks(m.hooks),
		table.WithLogger(m.logger),
		table.WithBatchSize(m.cfg.Query.BatchSize),
		table.WithPerPage(m.cfg.Query.PerPage))
}

// Migrator returns the migrator of the definition.
// The definition does not need to be registered.
func (m *Manager) Migrator(d schema.Definer) (*migration.Migrator, error) {
	s, err := m.schema(d)
	if err != nil {
		return nil, err
	}
	return migration.New(s, migration.NewStore(m.builder), m.options,
		migration.WithHooks(m.hooks),
		migration.WithLogger(m.logger),
		migration.WithPrefix(m.cfg.Options.Prefix))
}

// schema returns the memoized table of the definition.
func (m *Manager) schema(d schema.Definer) (*schema.Table, error) {
	s, err := m.registry.Table(d)
	if err != nil {
		return nil, err
	}
	hits, misses := m.registry.Stats(d)
	m.logger.WithFields(logger.Fields{"table": s.Name(), "hits": hits, "misses": misses}).Debug("schema lookup")
	return s, nil
}

// Upgrade reconciles every registered table whose stored version is outdated.
// The names of the updated tables return.
func (m *Manager) Upgrade() ([]string, error) {
	var updated []string
	for _, name := range m.Tables() {
		m.mutex.Lock()
		d := m.definers[name]
		m.mutex.Unlock()

		mig, err := m.Migrator(d)
		if err != nil {
			return updated, err
		}
		ok, err := mig.MaybeUpdate()
		if err != nil {
			return updated, fmt.Errorf("manager: %s: %w", name, err)
		}
		if ok {
			updated = append(updated, name)
		}
	}
	return updated, nil
}

// Drop drops the registered table and removes it from the manager.
func (m *Manager) Drop(name string) error {
	m.mutex.Lock()
	d, ok := m.definers[name]
	m.mutex.Unlock()
	if !ok {
		return fmt.Errorf(ErrNotDefined, name)
	}

	mig, err := m.Migrator(d)
	if err != nil {
		return err
	}
	if err = mig.Drop(); err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if i, exists := slicer.StringExists(m.names, name); exists {
		m.names = append(m.names[:i], m.names[i+1:]...)
	}
	delete(m.definers, name)
	m.registry.Forget(d)
	return nil
}

// Close the database connection and clear the memoized schemas.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.registry.Reset()
	return m.builder.Close()
}
