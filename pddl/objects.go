package pddl

import (
	"fmt"
	"strconv"
	"strings"
)

// ObjectSet is an ordered group of objects sharing one type, addressed by alias.
type ObjectSet struct {
	typ     *Type
	aliases []string
	entries map[string]Value
}

// ObjectOption customises BuildObjects.
type ObjectOption func(*objectSettings)

type objectSettings struct {
	prefix    *string
	aliasFunc func(id string) string
}

// WithPrefix sets the label prefix. Labels default to the lower-cased type name
// followed by the id.
func WithPrefix(prefix string) ObjectOption {
	return func(s *objectSettings) {
		p := prefix
		s.prefix = &p
	}
}

// WithAlias derives each alias from the raw id.
func WithAlias(fn func(id string) string) ObjectOption {
	return func(s *objectSettings) {
		s.aliasFunc = fn
	}
}

// WithAliasPrefix prepends prefix to each raw id to form the alias.
func WithAliasPrefix(prefix string) ObjectOption {
	return WithAlias(func(id string) string { return prefix + id })
}

// Seq returns the decimal ids from..to inclusive.
func Seq(from, to int) []string {
	if to < from {
		return nil
	}
	ids := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	return ids
}

// BuildObjects creates one object of type t per id. Aliases must be unique.
func BuildObjects(t *Type, ids []string, opts ...ObjectOption) (*ObjectSet, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: object type is required", ErrUndeclaredType)
	}
	var settings objectSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}
	prefix := strings.ToLower(t.Name())
	if settings.prefix != nil {
		prefix = *settings.prefix
	}
	set := &ObjectSet{typ: t, entries: make(map[string]Value, len(ids))}
	for _, id := range ids {
		alias := id
		if settings.aliasFunc != nil {
			alias = settings.aliasFunc(id)
		}
		if _, exists := set.entries[alias]; exists {
			return nil, fmt.Errorf("%w: alias %s appears twice in %s objects", ErrDuplicateDeclaration, alias, t.Tag())
		}
		label := prefix + id
		if err := checkIdentifier("object", label); err != nil {
			return nil, err
		}
		set.aliases = append(set.aliases, alias)
		set.entries[alias] = NewObject(t, label)
	}
	return set, nil
}

// Type returns the shared type of every entry.
func (s *ObjectSet) Type() *Type { return s.typ }

// TypeTag returns the emitted type identifier.
func (s *ObjectSet) TypeTag() string { return s.typ.Tag() }

// Len returns the number of objects.
func (s *ObjectSet) Len() int { return len(s.aliases) }

// Aliases returns the aliases in insertion order.
func (s *ObjectSet) Aliases() []string {
	out := make([]string, len(s.aliases))
	copy(out, s.aliases)
	return out
}

// Values returns the objects in insertion order.
func (s *ObjectSet) Values() []Value {
	out := make([]Value, 0, len(s.aliases))
	for _, alias := range s.aliases {
		out = append(out, s.entries[alias])
	}
	return out
}

// Get returns the object registered under alias.
func (s *ObjectSet) Get(alias string) (Value, error) {
	v, ok := s.entries[alias]
	if !ok {
		return Value{}, &KeyLookupError{Alias: alias, TypeTag: s.TypeTag()}
	}
	return v, nil
}

// At is Get for use inside fact builders: a missing alias yields a Value that
// carries the lookup error, surfaced by whichever atom consumes it.
func (s *ObjectSet) At(alias string) Value {
	v, err := s.Get(alias)
	if err != nil {
		return failedValue(err)
	}
	return v
}

func (s *ObjectSet) line(style IdentifierStyle) string {
	labels := make([]string, 0, len(s.aliases))
	for _, alias := range s.aliases {
		labels = append(labels, style.emit(s.entries[alias].label))
	}
	return strings.Join(labels, " ") + " - " + s.TypeTag()
}
