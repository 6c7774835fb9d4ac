// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. name shows up in errors so a bad value
// can be traced to the env, the flags or a particular JSON file.
type layer struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder collects layers in priority order and merges them with
// mergo, later non-zero fields winning. Source errors are joined and
// reported by build.
type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 3),
	}
}

func (b *configBuilder) add(name string, cfg *StructuredConfig) {
	b.layers = append(b.layers, layer{name: name, cfg: cfg})
}

func (b *configBuilder) fail(name string, err error) {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", name, err))
}

// build merges the collected layers. Defaults and validation are applied by
// the callers.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s config: %w", l.name, err)
		}
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		b.fail("env", err)
		return b
	}

	b.add("env", cfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.add("flags", ParseFlags())
	return b
}

// withJSON loads the file named by the last layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			path = l.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	name := "json " + path
	cfg, err := parseJSON(path)
	if err != nil {
		b.fail(name, err)
		return b
	}

	b.add(name, cfg)
	return b
}
