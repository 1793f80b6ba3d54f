package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kingrea/pddlkit/pddl"
	"gopkg.in/yaml.v3"
)

// keyValueFlag collects repeatable key=value flags.
type keyValueFlag map[string]string

func (kv *keyValueFlag) String() string {
	if kv == nil || len(*kv) == 0 {
		return ""
	}
	var pairs []string
	for key, value := range *kv {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}

func (kv *keyValueFlag) Set(value string) error {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	key := strings.TrimSpace(parts[0])
	if key == "" {
		return fmt.Errorf("option key is empty in %q", value)
	}
	if *kv == nil {
		*kv = keyValueFlag{}
	}
	(*kv)[key] = parts[1]
	return nil
}

func (kv *keyValueFlag) Type() string {
	return "key=value"
}

// optionsFile is the on-disk shape of --options-file.
type optionsFile struct {
	Init map[string]any `yaml:"init"`
	Goal map[string]any `yaml:"goal"`
}

// buildOptions merges the options file with --init/--goal overrides; flags win.
func buildOptions(path string, initFlags, goalFlags keyValueFlag) (pddl.Options, pddl.Options, error) {
	var file optionsFile
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		parsed, err := readOptionsFile(trimmed)
		if err != nil {
			return nil, nil, err
		}
		file = parsed
	}
	initOpts := pddl.Options(file.Init).Merge(toOptions(initFlags))
	goalOpts := pddl.Options(file.Goal).Merge(toOptions(goalFlags))
	return initOpts, goalOpts, nil
}

func toOptions(kv keyValueFlag) pddl.Options {
	out := make(pddl.Options, len(kv))
	for key, value := range kv {
		out[key] = value
	}
	return out
}

func readOptionsFile(path string) (optionsFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return optionsFile{}, fmt.Errorf("open options file %s: %w", path, err)
	}
	if info.IsDir() {
		return optionsFile{}, fmt.Errorf("%s is a directory, expected a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return optionsFile{}, fmt.Errorf("read options file %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return optionsFile{}, fmt.Errorf("options file %s is empty", path)
	}
	var parsed optionsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return optionsFile{}, fmt.Errorf("parse options file %s: %w", path, err)
	}
	return parsed, nil
}
