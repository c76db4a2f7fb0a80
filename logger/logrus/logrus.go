// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logrus is the logrus provider for the logger package. It wraps https://github.com/sirupsen/logrus.
// The logrus instance can be configured by the exported Instance field.
package logrus

import (
	"io"
	"os"

	"github.com/patrickascher/tablekit/logger"
	"github.com/sirupsen/logrus"
)

// Allowed formats.
const (
	TEXT = "text"
	JSON = "json"
)

// Options of the provider.
type Options struct {
	// Format of the output, text (default) or json.
	Format string
	// Output writer (default: os.Stderr).
	Output io.Writer
}

// Provider wraps a logrus instance.
type Provider struct {
	Instance *logrus.Logger
}

// New creates a new logrus provider.
// The logrus level is set to trace, filtering is done by the logger.Manager.
func New(opts ...Options) *Provider {
	log := logrus.New()
	log.SetLevel(logrus.TraceLevel)
	log.SetOutput(os.Stderr)

	if len(opts) > 0 {
		if opts[0].Format == JSON {
			log.SetFormatter(&logrus.JSONFormatter{})
		}
		if opts[0].Output != nil {
			log.SetOutput(opts[0].Output)
		}
	}

	return &Provider{Instance: log}
}

// Log passes the entry to logrus.
func (p *Provider) Log(entry logger.Entry) {
	e := p.Instance.WithFields(entry.Fields.Map()).WithTime(entry.Timestamp)
	switch entry.Level {
	case logger.TRACE:
		e.Trace(entry.Message)
	case logger.DEBUG:
		e.Debug(entry.Message)
	case logger.INFO:
		e.Info(entry.Message)
	case logger.WARNING:
		e.Warning(entry.Message)
	case logger.ERROR:
		e.Error(entry.Message)
	case logger.PANIC:
		e.Panic(entry.Message)
	}
}
