// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package manager

import (
	"fmt"

	"github.com/patrickascher/tablekit/migration"
	"github.com/patrickascher/tablekit/query"
	"github.com/patrickascher/tablekit/structer"
	"github.com/patrickascher/tablekit/table"
)

// Option store providers.
const (
	OptionsMemory   = "memory"
	OptionsDatabase = "database"
)

// Configuration of the manager.
// This configuration can be embedded in the application config.
type Configuration struct {
	Database query.Config
	Options  OptionsConfig
	Query    QueryConfig
	Log      LogConfig
}

// OptionsConfig defines where the table versions are stored.
type OptionsConfig struct {
	Provider string `validate:"oneof=memory database"`
	Table    string
	Prefix   string
}

// QueryConfig defines the table defaults.
type QueryConfig struct {
	PerPage   int `validate:"min=1,max=200"`
	BatchSize int `validate:"min=1"`
}

// LogConfig of the logrus logger.
type LogConfig struct {
	Level  string `validate:"oneof=TRACE DEBUG INFO WARNING ERROR PANIC"`
	Format string `validate:"oneof=text json"`
}

// DefaultConfiguration returns the values which are used for every zero field.
func DefaultConfiguration() Configuration {
	return Configuration{
		Database: query.Config{Provider: query.SQLITE3},
		Options:  OptionsConfig{Provider: OptionsMemory, Table: migration.DefaultOptionsTable, Prefix: migration.DefaultPrefix},
		Query:    QueryConfig{PerPage: table.DefaultPerPage, BatchSize: table.DefaultBatchSize},
		Log:      LogConfig{Level: "INFO", Format: "text"},
	}
}

// withDefaults fills all zero fields with the default configuration.
func withDefaults(cfg Configuration) (Configuration, error) {
	if err := structer.Merge(&cfg, DefaultConfiguration()); err != nil {
		return cfg, fmt.Errorf("manager: %w", err)
	}
	return cfg, nil
}
