package pddl

import "fmt"

type valueKind int

const (
	kindUnbound valueKind = iota
	kindObject
	kindPlaceholder
)

// Value is a typed label: either a concrete problem object or a placeholder
// standing in for an action parameter. The zero Value is Unbound.
//
// A Value produced by a lenient lookup (ObjectSet.At) may carry an error; any
// atom built from it carries the same error.
type Value struct {
	typ   *Type
	label string
	kind  valueKind
	err   error
}

// Unbound is the exempt argument: it passes type checks and renders as the
// formal parameter name, but can never appear in init or goal facts.
var Unbound = Value{}

// NewObject creates a concrete object of type t.
func NewObject(t *Type, label string) Value {
	return Value{typ: t, label: label, kind: kindObject}
}

func placeholder(t *Type, name string) Value {
	return Value{typ: t, label: name, kind: kindPlaceholder}
}

func failedValue(err error) Value {
	return Value{err: err}
}

// Type returns the value's type, nil for Unbound.
func (v Value) Type() *Type { return v.typ }

// Label returns the identifier as authored.
func (v Value) Label() string { return v.label }

// Err returns the deferred lookup error, if any.
func (v Value) Err() error { return v.err }

// IsUnbound reports whether v is the exempt unbound argument.
func (v Value) IsUnbound() bool { return v.kind == kindUnbound && v.err == nil }

// IsPlaceholder reports whether v stands in for an action parameter.
func (v Value) IsPlaceholder() bool { return v.kind == kindPlaceholder }

// IsObject reports whether v is a concrete problem object.
func (v Value) IsObject() bool { return v.kind == kindObject }

// CompatibleWith reports whether the value's type is t or one of its subtypes.
func (v Value) CompatibleWith(t *Type) bool {
	return v.typ.IsSubtypeOf(t)
}

func (v Value) typeName() string {
	switch {
	case v.err != nil:
		return "error"
	case v.typ == nil:
		return "unbound"
	default:
		return v.typ.Name()
	}
}

func (v Value) String() string {
	if v.IsUnbound() {
		return "<unbound>"
	}
	return fmt.Sprintf("%s(%s)", v.typeName(), v.label)
}
