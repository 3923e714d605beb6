// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles typegen project configuration.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/typegen/internal/errors"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "typegen.yaml"

// Config represents the typegen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Schemas is the directory holding one schema document per module.
	Schemas string `yaml:"schemas"`

	// Output is the directory generated modules are written to.
	Output string `yaml:"output"`

	// Format names the emitter, "python" unless set.
	Format string `yaml:"format,omitempty"`

	// Circular lists the types generated into their own module to break import cycles.
	Circular []string `yaml:"circular"`

	// Skip lists entries that are emitted as opaque maps instead of their declared shape.
	Skip []string `yaml:"skip"`

	// Overrides replaces field descriptors, keyed by "entry.field".
	Overrides map[string]string `yaml:"overrides,omitempty"`

	// BaseModule is the module providing Snowflake, UNKNOWN and Unknownish.
	BaseModule string `yaml:"base_module,omitempty"`

	// EmitBase writes the base module along with the generated modules.
	EmitBase bool `yaml:"emit_base"`
}

// Default returns the configuration written by typegen init.
func Default() Config {
	return Config{
		Version:  CurrentConfigVersion,
		Schemas:  "schemas",
		Output:   "out",
		Format:   "python",
		Circular: []string{"message_structure"},
		Skip:     []string{"identify_connection_properties_structure"},
		Overrides: map[string]string{
			"audit_log_change_structure.key": "audit_log_change_key",
		},
		BaseModule: "base",
		EmitBase:   true,
	}
}

// Load reads a Config from a file path. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Schemas == "" {
		return errors.New("schemas directory is required")
	}
	if c.Output == "" {
		return errors.New("output directory is required")
	}
	if c.BaseModule != "" && !isModuleName(c.BaseModule) {
		return errors.Newf("base_module %q is not a valid module name", c.BaseModule)
	}

	skip := make(map[string]bool, len(c.Skip))
	for _, k := range c.Skip {
		skip[k] = true
	}
	for _, k := range c.Circular {
		if !strings.HasSuffix(k, "_structure") {
			return errors.Newf("circular entry %q is not a structure", k)
		}
		if skip[k] {
			return errors.Newf("%q is listed in both circular and skip", k)
		}
	}

	for k, v := range c.Overrides {
		entry, field, ok := strings.Cut(k, ".")
		if !ok || entry == "" || field == "" {
			return errors.Newf("override key %q must have the form entry.field", k)
		}
		if v == "" {
			return errors.Newf("override %q has no type", k)
		}
	}
	return nil
}

func isModuleName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}
