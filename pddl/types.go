package pddl

import (
	"fmt"
	"strings"
)

// Type is a declared PDDL type. Types are created through Domain.DeclareType
// and are immutable afterwards.
type Type struct {
	name   string
	parent *Type
	owner  *Domain
	index  int
}

// Name returns the type name as declared.
func (t *Type) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Parent returns the immediate parent type or nil for root types.
func (t *Type) Parent() *Type {
	if t == nil {
		return nil
	}
	return t.parent
}

// Tag returns the identifier used for the type in emitted documents.
func (t *Type) Tag() string {
	if t == nil {
		return ""
	}
	style := Hyphenated
	if t.owner != nil {
		style = t.owner.style
	}
	return style.emit(strings.ToLower(t.name))
}

// IsSubtypeOf reports whether t equals other or descends from it.
func (t *Type) IsSubtypeOf(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	return t.Name()
}

// DeclareType registers a type with an optional parent. The parent must have
// been declared on the same domain beforehand, which keeps the hierarchy a forest.
func (d *Domain) DeclareType(name string, parent *Type) (*Type, error) {
	trimmed := strings.TrimSpace(name)
	if err := checkIdentifier("type", trimmed); err != nil {
		return nil, err
	}
	if parent != nil && parent.owner != d {
		return nil, fmt.Errorf("%w: parent %s of type %s is not declared in this domain", ErrUndeclaredType, parent.Name(), trimmed)
	}
	t := &Type{name: trimmed, parent: parent, owner: d, index: len(d.types)}
	tag := t.Tag()
	if existing, ok := d.typeIndex[tag]; ok {
		return nil, fmt.Errorf("%w: type %s (already declared as %s)", ErrDuplicateDeclaration, trimmed, existing.name)
	}
	d.types = append(d.types, t)
	d.typeIndex[tag] = t
	d.logger.Debug("type declared", typeFields(t)...)
	return t, nil
}

// Type looks up a declared type by name.
func (d *Domain) Type(name string) (*Type, bool) {
	t, ok := d.typeIndex[d.style.emit(strings.ToLower(strings.TrimSpace(name)))]
	return t, ok
}

// Types returns every declared type in declaration order.
func (d *Domain) Types() []*Type {
	out := make([]*Type, len(d.types))
	copy(out, d.types)
	return out
}

func (d *Domain) owns(t *Type) bool {
	return t != nil && t.owner == d
}

// typeLines groups types by immediate parent. Every root type gets its own
// line; children share one line per parent ending in "- parent". Lines are
// ordered by the first declared type they contain.
func typeLines(types []*Type) []string {
	var lines []string
	groups := make(map[*Type]int)
	var members [][]string
	var parents []*Type
	for _, t := range types {
		if t.parent == nil {
			lines = append(lines, "")
			members = append(members, []string{t.Tag()})
			parents = append(parents, nil)
			continue
		}
		if idx, ok := groups[t.parent]; ok {
			members[idx] = append(members[idx], t.Tag())
			continue
		}
		groups[t.parent] = len(lines)
		lines = append(lines, "")
		members = append(members, []string{t.Tag()})
		parents = append(parents, t.parent)
	}
	for i := range lines {
		line := strings.Join(members[i], " ")
		if parents[i] != nil {
			line += " - " + parents[i].Tag()
		}
		lines[i] = line
	}
	return lines
}
