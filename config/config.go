// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads a configuration struct through a registered provider and validates it.
//
// The validation uses the `validate` struct tags of github.com/go-playground/validator.
// Every provider has its own options, please see the specific provider for more details.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	valid "github.com/go-playground/validator/v10"
	"github.com/patrickascher/tablekit/registry"
)

// all pre-defined providers.
const (
	VIPER = "tablekit:config:viper"
)

// Error messages
var (
	ErrInterface = errors.New("config: the type does not implement config.Interface")
	ErrPointer   = errors.New("config: the config argument must be a ptr")
)

// Interface for the config provider.
type Interface interface {
	Parse(config interface{}, options interface{}) error
}

var (
	once     sync.Once
	validate *valid.Validate
)

// Validator returns the shared validator instance.
func Validator() *valid.Validate {
	once.Do(func() {
		validate = valid.New()
	})
	return validate
}

// Load a configuration by provider and options and validate it.
// The cfg must be a ptr to the configuration struct.
// Error will return if the cfg is no ptr, the provider is unknown, any parsing error or a failed validation.
func Load(provider string, cfg interface{}, options interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return ErrPointer
	}

	instance, err := registry.Get(provider)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	p, ok := instance.(Interface)
	if !ok {
		return ErrInterface
	}

	if err = p.Parse(cfg, options); err != nil {
		return err
	}
	return Validate(cfg)
}

// Validate the struct by its validate tags.
func Validate(cfg interface{}) error {
	if err := Validator().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
