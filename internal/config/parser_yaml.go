package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func decodeYAML(content string) (fileConfig, error) {
	decoder := yaml.NewDecoder(strings.NewReader(content))
	decoder.KnownFields(true)

	var payload fileConfig
	if err := decoder.Decode(&payload); err != nil {
		return fileConfig{}, fmt.Errorf("decode yaml: %w", err)
	}

	var extra yaml.Node
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return payload, nil
	}
	if err == nil {
		return fileConfig{}, fmt.Errorf("multiple YAML documents are not allowed")
	}
	return fileConfig{}, fmt.Errorf("decode yaml: %w", err)
}
