// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger provides an interface for logging. It wraps existing go loggers with that interface.
// The query builder logs every statement on DEBUG, the migrator logs every reconciliation step on INFO
// and the table compiler logs dropped conditions on WARNING.
package logger

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/patrickascher/tablekit/registry"
)

// Error messages.
var (
	ErrProvider = errors.New("logger: provider does not implement logger.Manager")
	ErrLevel    = "logger: unknown level %q"
)

// registryPrefix for the registry package.
const registryPrefix = "tablekit:logger:"

// Level - the higher the more critical
const (
	TRACE Level = iota - 1
	DEBUG
	INFO
	WARNING
	ERROR
	PANIC
)

// Level type.
type Level int32

// String converts the level code.
func (lvl Level) String() string {
	switch lvl {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	default:
		return "unknown level"
	}
}

// ParseLevel converts a level name. It is case insensitive.
func ParseLevel(s string) (Level, error) {
	for lvl := TRACE; lvl <= PANIC; lvl++ {
		if strings.EqualFold(strings.TrimSpace(s), lvl.String()) {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf(ErrLevel, s)
}

// Provider interface.
type Provider interface {
	Log(Entry)
}

// Manager interface.
type Manager interface {
	Trace(string)
	Debug(string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Panic(msg string)

	New() Manager
	WithFields(Fields) Manager
	WithTimer() Manager

	SetCallerFields(bool)
	SetLogLevel(Level)
	Level() Level
}

// Fields can be used to add more details to a log message.
type Fields map[string]interface{}

// Map converts the Fields to a map[string]interface{}.
func (f Fields) Map() map[string]interface{} {
	return f
}

// Entry struct holds all information for the log message.
type Entry struct {
	Level     Level
	Timestamp time.Time
	Message   string
	Fields    Fields
}

// manager struct holds the provider and fields information.
// callerInfo will add the runtime.Caller information for line number and file name.
// timer will be used for duration calculation.
type manager struct {
	provider Provider
	fields   Fields

	callerInfo bool
	timer      time.Time
	lvl        Level
}

// New creates a Manager for the provider without registering it.
// Default log level is DEBUG.
func New(provider Provider) Manager {
	return &manager{provider: provider}
}

// Register a new logger provider by name.
func Register(name string, provider Provider) error {
	return registry.Set(registryPrefix+name, New(provider))
}

// Get a logger by the registered name.
func Get(name string) (Manager, error) {
	m, err := registry.Get(registryPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	// check if interface is implemented, because it could have been registered directly.
	if m, ok := m.(Manager); ok {
		return m, nil
	}

	return nil, ErrProvider
}

// discard provider.
type discard struct{}

func (discard) Log(Entry) {}

// Discard returns a Manager which drops every entry.
// It is used if no logger was configured.
func Discard() Manager {
	return &manager{provider: discard{}, lvl: PANIC + 1}
}

// SetCallerFields will add the fields "line" and "file" to the Entry.
func (m *manager) SetCallerFields(b bool) {
	m.callerInfo = b
}

// SetLogLevel will define the log level.
// Only messages equal or greater levels will be logged.
func (m *manager) SetLogLevel(b Level) {
	m.lvl = b
}

// Level returns the log level.
func (m *manager) Level() Level {
	return m.lvl
}

// New creates a new instance with the same level, fields and caller settings.
func (m manager) New() Manager {
	return &manager{lvl: m.lvl, provider: m.provider, fields: m.fields, callerInfo: m.callerInfo}
}

// WithTimer will add the field "duration" to the Entry.
// It will create a new instance.
func (m manager) WithTimer() Manager {
	instance := m.New().(*manager)
	instance.timer = time.Now()
	return instance
}

// WithFields will create a new Manager with the merged fields.
func (m manager) WithFields(fields Fields) Manager {
	instance := m.New().(*manager)
	instance.fields = make(Fields, len(m.fields)+len(fields))
	for k, v := range m.fields {
		instance.fields[k] = v
	}
	for k, v := range fields {
		instance.fields[k] = v
	}
	instance.timer = m.timer
	return instance
}

// Trace log.
func (m manager) Trace(msg string) {
	m.log(TRACE, msg)
}

// Debug log.
func (m manager) Debug(msg string) {
	m.log(DEBUG, msg)
}

// Info log.
func (m manager) Info(msg string) {
	m.log(INFO, msg)
}

// Warning log.
func (m manager) Warning(msg string) {
	m.log(WARNING, msg)
}

// Error log.
func (m manager) Error(msg string) {
	m.log(ERROR, msg)
}

// Panic log.
func (m manager) Panic(msg string) {
	m.log(PANIC, msg)
}

// log passes the entry to the provider if the level is enabled.
func (m manager) log(lvl Level, msg string) {
	if lvl < m.lvl {
		return
	}

	e := Entry{Message: msg, Level: lvl, Timestamp: time.Now()}
	e.Fields = make(Fields, len(m.fields)+3)
	for k, v := range m.fields {
		e.Fields[k] = v
	}

	if !m.timer.IsZero() {
		e.Fields["duration"] = time.Since(m.timer)
	}

	if m.callerInfo {
		// skip log and the level method.
		// If it was not possible to recover the information, the file string will be empty and line number will be 0.
		_, file, line, _ := runtime.Caller(2)
		e.Fields["line"] = line
		e.Fields["file"] = file
	}

	m.provider.Log(e)
}
