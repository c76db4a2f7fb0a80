// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package viper provides a config provider for the https://github.com/spf13/viper package.
//
// Duration fields accept human strings like "90s", "1h30m" or ISO8601 "PT1H".
// By default, the watcher will automatically unmarshal the data into the configuration struct again.
package viper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/patrickascher/tablekit/config"
	"github.com/patrickascher/tablekit/registry"
	"github.com/peterhellberg/duration"
	"github.com/spf13/viper"
)

// init registers the viper provider.
func init() {
	err := registry.Set(config.VIPER, new(viperProvider))
	if err != nil {
		log.Fatal(err)
	}
}

// Error messages
var (
	ErrOptions   = errors.New("viper: options must be of type viper.Options")
	ErrMandatory = errors.New("viper: file name, path and type are mandatory")
)

// Options for the viper provider.
type Options struct {
	// FileName of the configuration.
	FileName string
	// FileType like json, yaml or toml.
	FileType string
	// FilePath to look into.
	FilePath string
	// Defaults by viper key, used if neither the file nor the env has the key.
	Defaults map[string]interface{}
	// Watch for file changes.
	Watch bool
	// WatchCallback is called after the config was reloaded.
	WatchCallback func(cfg interface{}, viper *viper.Viper, e fsnotify.Event)
	// EnvPrefix of the environment variables.
	EnvPrefix string
	// EnvAutomatic checks if environment variables match any of the existing keys.
	EnvAutomatic bool
	// EnvBind binds a key to an environment variable.
	EnvBind []string
}

// instance of a config file.
// The watch callback only receives the file name, the cfg and options are looked up by it.
type instance struct {
	viper   *viper.Viper
	cfg     interface{}
	options Options
}

var (
	mutex     sync.Mutex
	instances map[string]*instance
)

type viperProvider struct{}

// Parse configures viper and unmarshal the config into the cfg.
// If Options.Watch is set, the cfg is updated on file changes.
func (vp *viperProvider) Parse(cfg interface{}, opt interface{}) error {
	options, ok := opt.(Options)
	if !ok {
		return ErrOptions
	}
	if options.FileName == "" || options.FilePath == "" || options.FileType == "" {
		return ErrMandatory
	}

	i, err := lookup(cfg, options)
	if err != nil {
		return fmt.Errorf("viper: %w", err)
	}

	i.viper.SetConfigName(options.FileName)
	i.viper.AddConfigPath(options.FilePath)
	i.viper.SetConfigType(options.FileType)
	for k, v := range options.Defaults {
		i.viper.SetDefault(k, v)
	}

	i.viper.OnConfigChange(func(e fsnotify.Event) {
		mutex.Lock()
		changed, ok := instances[e.Name]
		mutex.Unlock()
		if !ok {
			return
		}
		_ = unmarshal(changed.viper, changed.cfg)
		if changed.options.WatchCallback != nil {
			changed.options.WatchCallback(changed.cfg, changed.viper, e)
		}
	})

	if options.EnvPrefix != "" {
		i.viper.SetEnvPrefix(options.EnvPrefix)
	}
	if len(options.EnvBind) != 0 {
		_ = i.viper.BindEnv(options.EnvBind...)
	}
	if options.EnvAutomatic {
		i.viper.AutomaticEnv()
	}

	if err = i.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("viper: %w", err)
	}

	if options.Watch {
		i.viper.WatchConfig()
	}

	return unmarshal(i.viper, cfg)
}

// unmarshal the viper values into the cfg.
func unmarshal(v *viper.Viper, cfg interface{}) error {
	hook := mapstructure.ComposeDecodeHookFunc(durationHook, mapstructure.StringToSliceHookFunc(","))
	if err := v.Unmarshal(cfg, viper.DecodeHook(hook)); err != nil {
		return fmt.Errorf("viper: %w", err)
	}
	return nil
}

// durationHook parses go duration strings and ISO8601 durations into time.Duration.
func durationHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	if d, err := time.ParseDuration(data.(string)); err == nil {
		return d, nil
	}
	return duration.Parse(data.(string))
}

// lookup returns the instance of the config file.
// On an existing instance, the cfg and options are replaced.
func lookup(cfg interface{}, opt Options) (*instance, error) {
	name, err := filepath.Abs(filepath.Join(opt.FilePath, opt.FileName))
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(name); err != nil {
		return nil, err
	}

	mutex.Lock()
	defer mutex.Unlock()
	if instances == nil {
		instances = make(map[string]*instance)
	}

	i, ok := instances[name]
	if !ok {
		i = &instance{viper: viper.New()}
		instances[name] = i
	}
	i.cfg = cfg
	i.options = opt
	return i, nil
}
