// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logrus_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/patrickascher/tablekit/logger"
	"github.com/patrickascher/tablekit/logger/logrus"
	"github.com/stretchr/testify/assert"
)

// TestProvider_Log tests every level and the json output.
func TestProvider_Log(t *testing.T) {
	asserts := assert.New(t)

	var buf bytes.Buffer
	err := logger.Register("logrus", logrus.New(logrus.Options{Format: logrus.JSON, Output: &buf}))
	asserts.NoError(err)

	log, err := logger.Get("logrus")
	asserts.NoError(err)
	log.SetLogLevel(logger.TRACE)

	log = log.WithFields(logger.Fields{"table": "posts"})
	log.Trace("Msg")
	log.Debug("Msg")
	log.Info("Msg")
	log.Warning("Msg")
	log.Error("Msg")
	asserts.Panics(func() { log.Panic("Msg") })

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	asserts.Equal(6, len(lines))

	var entry map[string]interface{}
	asserts.NoError(json.Unmarshal([]byte(lines[2]), &entry))
	asserts.Equal("posts", entry["table"])
	asserts.Equal("info", entry["level"])
	asserts.Equal("Msg", entry["msg"])
}
