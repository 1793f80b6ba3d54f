package plugins

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDescriptionYAML decodes and validates a single description payload.
func ParseDescriptionYAML(data []byte) (DescriptionDefinition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DescriptionDefinition{}, fmt.Errorf("plugin: description payload is empty")
	}
	var def DescriptionDefinition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return DescriptionDefinition{}, fmt.Errorf("plugin: decode description: %w", err)
	}
	if err := def.Validate(); err != nil {
		return DescriptionDefinition{}, err
	}
	return def.Normalized(), nil
}

// LoadDescriptionFile reads a YAML description from disk.
func LoadDescriptionFile(path string) (DescriptionDefinition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return DescriptionDefinition{}, fmt.Errorf("plugin: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return DescriptionDefinition{}, fmt.Errorf("plugin: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DescriptionDefinition{}, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	def, err := ParseDescriptionYAML(data)
	if err != nil {
		return DescriptionDefinition{}, fmt.Errorf("plugin: %s: %w", path, err)
	}
	return def, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
