// Package scaffold renders starter description files for `pddlgen init`.
package scaffold

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrExists is returned when the target file is already present.
var ErrExists = errors.New("scaffold: file already exists, use a different filename")

// Format selects the description flavour.
type Format string

const (
	FormatGo   Format = "go"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return FormatGo, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("scaffold: %s must end in .go, .yaml or .yml", path)
	}
}

// Spec is the sanitised answer to the four init prompts.
type Spec struct {
	Name       string
	Types      []string
	Predicates []string
	Actions    []string
	Format     Format
}

// ParseSpec sanitises raw prompt answers. Lists are space separated; dashes
// become underscores. Types are title-cased, predicates and actions
// lower-cased, and the name gets an upper-case first letter.
func ParseSpec(name, types, predicates, actions string, format Format) (Spec, error) {
	cleanName := sanitise(name)
	if cleanName == "" {
		return Spec{}, fmt.Errorf("scaffold: name is required")
	}
	cleanName = strings.ToUpper(cleanName[:1]) + cleanName[1:]
	if strings.ContainsAny(cleanName, " \t") || !token.IsIdentifier(cleanName) {
		return Spec{}, fmt.Errorf("scaffold: name %q is not a valid identifier", cleanName)
	}
	if format != FormatGo && format != FormatYAML {
		return Spec{}, fmt.Errorf("scaffold: unknown format %q", format)
	}
	title := cases.Title(language.Und)
	spec := Spec{Name: cleanName, Format: format}
	for _, t := range strings.Fields(sanitise(types)) {
		spec.Types = append(spec.Types, title.String(t))
	}
	for _, p := range strings.Fields(sanitise(predicates)) {
		spec.Predicates = append(spec.Predicates, strings.ToLower(p))
	}
	for _, a := range strings.Fields(sanitise(actions)) {
		spec.Actions = append(spec.Actions, strings.ToLower(a))
	}
	for _, list := range [][]string{spec.Types, spec.Predicates, spec.Actions} {
		for _, item := range list {
			if !token.IsIdentifier(item) {
				return Spec{}, fmt.Errorf("scaffold: %q is not a valid identifier", item)
			}
		}
	}
	reserved := make(map[string]bool, len(spec.Actions))
	for _, a := range spec.Actions {
		reserved[a+"_done"] = true
	}
	for _, p := range spec.Predicates {
		if reserved[p] {
			return Spec{}, fmt.Errorf("scaffold: predicate %q is reserved for the stub of action %s", p, strings.TrimSuffix(p, "_done"))
		}
	}
	return spec, nil
}

func sanitise(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "-", "_")
}

var templates = template.Must(template.New("go").Parse(goTemplate))

func init() {
	template.Must(templates.New("yaml").Parse(yamlTemplate))
}

// Render produces the file contents for spec.
func Render(spec Spec) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, string(spec.Format), spec); err != nil {
		return "", fmt.Errorf("scaffold: render %s: %w", spec.Format, err)
	}
	return b.String(), nil
}

// Write renders spec into a new file at path. Existing files are never
// overwritten.
func Write(path string, spec Spec) error {
	text, err := Render(spec)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scaffold: ensure %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("scaffold: create %s: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("scaffold: write %s: %w", path, err)
	}
	return f.Close()
}
