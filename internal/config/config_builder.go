package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from the individual
// sources and merges them in build. Earlier sources win: a field already set
// by the environment is not overwritten by flags, nor by the JSON file.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(layer)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON loads the optional JSON file when any earlier layer named one.
// The file is the lowest-priority source.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(layer)
}

func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
