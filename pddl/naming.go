package pddl

import (
	"fmt"
	"strings"
	"unicode"
)

// IdentifierStyle controls how author-facing identifiers are emitted.
type IdentifierStyle int

const (
	// Hyphenated rewrites underscores to hyphens and drops trailing underscores,
	// so `cargo_at` becomes `cargo-at` and `in_` becomes `in`.
	Hyphenated IdentifierStyle = iota
	// Verbatim emits identifiers exactly as declared.
	Verbatim
)

func (s IdentifierStyle) String() string {
	switch s {
	case Verbatim:
		return "verbatim"
	default:
		return "hyphenated"
	}
}

// ParseIdentifierStyle maps "hyphenated" or "verbatim" to a style. Empty input
// selects Hyphenated.
func ParseIdentifierStyle(value string) (IdentifierStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "hyphenated":
		return Hyphenated, true
	case "verbatim":
		return Verbatim, true
	default:
		return Hyphenated, false
	}
}

func (s IdentifierStyle) emit(name string) string {
	if s == Verbatim {
		return name
	}
	return strings.ReplaceAll(strings.TrimRight(name, "_"), "_", "-")
}

// deriveName strips suffix from a description name and lower-cases the rest.
// The bare suffix names the abstract base, which has nothing to derive from.
func deriveName(name, suffix string, style IdentifierStyle) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == suffix {
		return "", false
	}
	trimmed = strings.TrimSuffix(trimmed, suffix)
	return style.emit(strings.ToLower(trimmed)), true
}

// checkIdentifier rejects names that would break the s-expression structure
// of a document: whitespace, parentheses, the variable marker and comments.
func checkIdentifier(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s name is required", ErrConfiguration, kind)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || strings.ContainsRune("()?;", r) {
			return fmt.Errorf("%w: %s name %q contains %q", ErrConfiguration, kind, name, r)
		}
	}
	return nil
}
