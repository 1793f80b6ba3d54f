package pddl

import (
	"errors"
	"fmt"
	"strings"
)

// Atom is one predicate application rendered three ways:
//
//   - Schema, `(at ?p - plane ?a - airport)`, for the domain's predicate block;
//   - Reference, `(at ?p ?a)`, inside action preconditions and effects;
//   - Literal, `(at p1 sfo)`, inside problem init and goal lists.
//
// All three are computed when the atom is built. An atom produced by
// Predicate.Of may instead carry an error, reported by Err.
type Atom struct {
	schema    string
	reference string
	literal   string
	ground    bool
	err       error

	// domain owns the predicate; args are the values it was applied to.
	domain *Domain
	args   []Value
}

// Schema returns the declaration projection.
func (a Atom) Schema() string { return a.schema }

// Reference returns the action-variable projection.
func (a Atom) Reference() string { return a.reference }

// Literal returns the concrete-object projection.
func (a Atom) Literal() string { return a.literal }

// Ground reports whether every argument was a concrete object.
func (a Atom) Ground() bool { return a.ground }

// Err returns the deferred construction error, if any.
func (a Atom) Err() error { return a.err }

func (a Atom) String() string { return a.literal }

// Negate wraps every projection in (not …). Negating twice nests; it never
// cancels out.
func Negate(a Atom) Atom {
	if a.err != nil {
		return a
	}
	if a.schema == "" {
		return Atom{err: fmt.Errorf("%w: cannot negate an %v", ErrReturnType, errEmptyAtom)}
	}
	return Atom{
		schema:    "(not " + a.schema + ")",
		reference: "(not " + a.reference + ")",
		literal:   "(not " + a.literal + ")",
		ground:    a.ground,
		domain:    a.domain,
		args:      a.args,
	}
}

var errEmptyAtom = errors.New("empty atom")

// check rejects atoms that carry an error or were never built by a predicate.
func (a Atom) check() error {
	if a.err != nil {
		return a.err
	}
	if a.schema == "" {
		return fmt.Errorf("%w: %v", ErrReturnType, errEmptyAtom)
	}
	return nil
}

// checkIn is check plus the requirement that the predicate belongs to d.
func (a Atom) checkIn(d *Domain) error {
	if err := a.check(); err != nil {
		return err
	}
	if a.domain != d {
		return fmt.Errorf("%w: %s uses a predicate from another domain", ErrUndeclaredType, a.schema)
	}
	return nil
}

func checkAtoms(atoms []Atom, d *Domain) error {
	for i, a := range atoms {
		if err := a.checkIn(d); err != nil {
			return fmt.Errorf("atom %d: %w", i, err)
		}
	}
	return nil
}

// conjunction joins rendered atoms: one atom stands alone, several are wrapped
// in (and …), none is the empty conjunction.
func conjunction(parts []string) string {
	switch len(parts) {
	case 0:
		return "(and)"
	case 1:
		return parts[0]
	default:
		return "(and " + strings.Join(parts, " ") + ")"
	}
}

func references(atoms []Atom) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = a.reference
	}
	return out
}

func literals(atoms []Atom) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = a.literal
	}
	return out
}
