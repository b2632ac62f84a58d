// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// settingsFile is the fixed name of the optional user settings file inside
// the configuration directory.
const settingsFile = "tagtint.yaml"

// Settings is the in-memory representation of the loaded user settings.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, "" when none was found.
//   - Data: raw key/value tree unmarshaled from YAML.
//
// Data is intentionally kept as map[string]any to allow flexible shapes.
// Callers should use the typed getters for convenience.
type Settings struct {
	Source string
	Data   map[string]interface{}
}

// LoadSettings reads the YAML settings file from the configuration
// directory. The TAGTINT_CFG_FILE environment variable overrides the path
// selection entirely. A missing file is not an error worth surfacing to the
// user; callers treat the zero Settings as "all defaults".
func LoadSettings() (Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return Settings{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Settings{}, err
	}

	return Settings{
		Source: path,
		Data:   data}, nil
}

// GetString returns the string value for the given dotted key path. If the
// key is not found and a single defaultValue is provided, the default is
// returned. Returns an error if the value exists but is not a string.
func (s Settings) GetString(key string, defaultValue ...string) (string, error) {
	val, err := s.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	str, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return str, nil
}

// GetBool returns the boolean value for the given dotted key path, with the
// same default semantics as GetString.
func (s Settings) GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := s.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

// get traverses the settings tree using a dotted key path (e.g.
// "render.color"). Returns the raw value (any) if found.
func (s Settings) get(kspec string) (any, error) {
	keys := strings.Split(kspec, ".")
	var current interface{} = s.Data

	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
	}

	return current, nil
}

// settingsPath returns the absolute path to the YAML settings file. If the
// TAGTINT_CFG_FILE environment variable is set, it is treated as the full
// path to the file. Otherwise the resolved configuration directory is used
// with the fixed filename. The file must exist and not be a directory.
func settingsPath() (string, error) {
	if cfgPath := os.Getenv("TAGTINT_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using settings file from TAGTINT_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("TAGTINT_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("settings file not found at TAGTINT_CFG_FILE path: %s", cfgPath)
	}

	dir := ResolveConfigDir()
	if dir == "" {
		return "", fmt.Errorf("no configuration directory resolved")
	}

	file := filepath.Join(dir, settingsFile)
	if fileInfo, err := os.Stat(file); err == nil {
		if !fileInfo.IsDir() {
			log.Debugf("using settings file: %s", file)
			return file, nil
		}
	}

	return "", fmt.Errorf("no settings file found in standard locations")
}
