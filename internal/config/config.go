// internal/config/config.go
//
// This package handles pddlgen project configuration. A project may carry a
// pddlgen.yaml in its root and a .env file with PDDLGEN_* overrides.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the project configuration file looked up in the project dir.
	FileName = "pddlgen.yaml"

	// StateDir holds generated logs and other run state.
	StateDir = ".pddlgen"

	EnvOutputDir = "PDDLGEN_OUTPUT_DIR"
	EnvLogLevel  = "PDDLGEN_LOG_LEVEL"
	EnvLogFile   = "PDDLGEN_LOG_FILE"
)

const defaultProjectConfigYAML = `# pddlgen project configuration
version: 1

# Where generated documents are written. Names get a .pddl extension.
output:
  dir: .
  domain: domain
  problem: problem

# Console level is one of debug, info, warn, error. The file receives JSON lines
# and is rotated once it reaches max_size_mb.
log:
  level: info
  file: .pddlgen/logs/pddlgen.log
  max_size_mb: 5
  max_backups: 3
`

// OutputConfig controls where documents are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Domain  string `yaml:"domain"`
	Problem string `yaml:"problem"`
}

// LogConfig controls console verbosity and the rotating log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// ProjectConfig models pddlgen.yaml.
type ProjectConfig struct {
	Version int          `yaml:"version"`
	Output  OutputConfig `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
}

// Config holds the runtime configuration for one pddlgen invocation.
type Config struct {
	// ProjectDir is the directory relative paths are resolved against.
	ProjectDir string

	Project ProjectConfig
}

// Load reads .env and pddlgen.yaml from projectDir. Both files are optional.
// Environment variables win over the file.
func Load(projectDir string) (*Config, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", projectDir, err)
	}
	if err := loadDotEnv(filepath.Join(abs, ".env")); err != nil {
		return nil, err
	}
	cfg := &Config{ProjectDir: abs, Project: defaultProjectConfig()}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.Project.applyEnv(abs)
	if err := cfg.Project.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// InitProjectConfig writes a default pddlgen.yaml into dir unless one exists.
func InitProjectConfig(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: ensure %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	if err := ensureProjectConfig(path); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.ProjectDir, FileName)
}

// OutputDir returns the absolute directory for generated documents.
func (c *Config) OutputDir() string {
	return c.Project.Output.Dir
}

// DomainBase returns the domain document path without extension.
func (c *Config) DomainBase() string {
	return filepath.Join(c.OutputDir(), c.Project.Output.Domain)
}

// ProblemBase returns the problem document path without extension.
func (c *Config) ProblemBase() string {
	return filepath.Join(c.OutputDir(), c.Project.Output.Problem)
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Project.normalize(c.ProjectDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Output: OutputConfig{
			Dir:     ".",
			Domain:  "domain",
			Problem: "problem",
		},
		Log: LogConfig{
			Level:      "info",
			File:       filepath.Join(StateDir, "logs", "pddlgen.log"),
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	defaults := defaultProjectConfig()
	if pc.Version == 0 {
		pc.Version = defaults.Version
	}
	if strings.TrimSpace(pc.Output.Dir) == "" {
		pc.Output.Dir = defaults.Output.Dir
	}
	if strings.TrimSpace(pc.Output.Domain) == "" {
		pc.Output.Domain = defaults.Output.Domain
	}
	if strings.TrimSpace(pc.Output.Problem) == "" {
		pc.Output.Problem = defaults.Output.Problem
	}
	if strings.TrimSpace(pc.Log.Level) == "" {
		pc.Log.Level = defaults.Log.Level
	}
	if pc.Log.MaxSizeMB == 0 {
		pc.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Output.Dir = resolvePath(base, pc.Output.Dir)
	pc.Output.Domain = strings.TrimSuffix(strings.TrimSpace(pc.Output.Domain), ".pddl")
	pc.Output.Problem = strings.TrimSuffix(strings.TrimSpace(pc.Output.Problem), ".pddl")
	pc.Log.Level = strings.ToLower(strings.TrimSpace(pc.Log.Level))
	pc.Log.File = resolvePath(base, pc.Log.File)
}

func (pc *ProjectConfig) applyEnv(base string) {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		pc.Output.Dir = resolvePath(base, v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		pc.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		pc.Log.File = resolvePath(base, v)
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Output.Domain == "" || pc.Output.Problem == "" {
		return fmt.Errorf("output.domain and output.problem are required")
	}
	if pc.Output.Domain == pc.Output.Problem {
		return fmt.Errorf("output.domain and output.problem must differ")
	}
	switch pc.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if pc.Log.MaxSizeMB < 0 || pc.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_size_mb and log.max_backups must not be negative")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
