package pddl

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates an argument is incompatible with its declared position.
	ErrTypeMismatch = errors.New("pddl: type mismatch")
	// ErrDuplicateDeclaration indicates a type, predicate, action, parameter,
	// alias or object label was registered twice.
	ErrDuplicateDeclaration = errors.New("pddl: duplicate declaration")
	// ErrKeyLookup indicates an object alias or label could not be found.
	ErrKeyLookup = errors.New("pddl: key lookup")
	// ErrReturnType indicates a user function returned something other than an atom list.
	ErrReturnType = errors.New("pddl: unexpected return value")
	// ErrConfiguration indicates a domain or problem is not fit for document generation.
	ErrConfiguration = errors.New("pddl: configuration")
	// ErrUndeclaredType indicates a type that was never registered in the domain.
	ErrUndeclaredType = errors.New("pddl: undeclared type")
	// ErrUnboundArgument indicates a placeholder reached an init or goal fact.
	ErrUnboundArgument = errors.New("pddl: unbound argument")
)

// TypeMismatchError describes a rejected predicate or action argument.
// Position is zero-based; -1 marks an arity mismatch.
type TypeMismatchError struct {
	Kind     string
	Name     string
	Position int
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("pddl: %s %s expects %s, got %s", e.Kind, e.Name, e.Expected, e.Actual)
	}
	return fmt.Sprintf("pddl: %s %s argument %d: expected type %s but found %s",
		e.Kind, e.Name, e.Position, e.Expected, e.Actual)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// KeyLookupError names the alias that was missing and the collection it was looked up in.
type KeyLookupError struct {
	Alias   string
	TypeTag string
}

func (e *KeyLookupError) Error() string {
	return fmt.Sprintf("pddl: key %s does not exist for %s; did you define the objects correctly?", e.Alias, e.TypeTag)
}

// Is reports whether target is ErrKeyLookup.
func (e *KeyLookupError) Is(target error) bool {
	return target == ErrKeyLookup
}
