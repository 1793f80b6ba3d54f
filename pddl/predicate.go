package pddl

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Param is a named, typed formal parameter of a predicate or action.
type Param struct {
	Name string
	Type *Type
}

// Predicate is a declared fact shape. Apply and Of build atoms from it.
type Predicate struct {
	name   string
	params []Param
	domain *Domain
}

// DeclarePredicate registers a predicate with ordered formal parameters.
func (d *Domain) DeclarePredicate(name string, params ...Param) (*Predicate, error) {
	trimmed := strings.TrimSpace(name)
	if err := checkIdentifier("predicate", trimmed); err != nil {
		return nil, err
	}
	checked, err := d.checkParams("predicate", trimmed, params)
	if err != nil {
		return nil, err
	}
	p := &Predicate{name: trimmed, params: checked, domain: d}
	key := d.style.emit(trimmed)
	if _, exists := d.predicateIndex[key]; exists {
		return nil, fmt.Errorf("%w: predicate %s", ErrDuplicateDeclaration, trimmed)
	}
	d.predicates = append(d.predicates, p)
	d.predicateIndex[key] = p
	d.logger.Debug("predicate declared", zap.String("predicate", trimmed), zap.Int("arity", len(checked)))
	return p, nil
}

// checkParams validates a parameter list shared by predicates and actions.
func (d *Domain) checkParams(kind, owner string, params []Param) ([]Param, error) {
	out := make([]Param, len(params))
	seen := make(map[string]struct{}, len(params))
	for i, param := range params {
		name := strings.TrimSpace(param.Name)
		if name == "" {
			name = "x" + strconv.Itoa(i+1)
		}
		if err := checkIdentifier(kind+" "+owner+" parameter", name); err != nil {
			return nil, err
		}
		if !d.owns(param.Type) {
			return nil, fmt.Errorf("%w: %s %s parameter %s", ErrUndeclaredType, kind, owner, name)
		}
		key := d.style.emit(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s %s parameter %s", ErrDuplicateDeclaration, kind, owner, name)
		}
		seen[key] = struct{}{}
		out[i] = Param{Name: name, Type: param.Type}
	}
	return out, nil
}

// Name returns the predicate name as declared.
func (p *Predicate) Name() string { return p.name }

// Arity returns the number of formal parameters.
func (p *Predicate) Arity() int { return len(p.params) }

// Params returns a copy of the formal parameters.
func (p *Predicate) Params() []Param {
	out := make([]Param, len(p.params))
	copy(out, p.params)
	return out
}

// Schema renders the predicate declaration, e.g. `(at ?p - plane ?a - airport)`.
func (p *Predicate) Schema() string {
	style := p.domain.style
	parts := []string{style.emit(p.name)}
	for _, param := range p.params {
		parts = append(parts, "?"+style.emit(param.Name)+" - "+param.Type.Tag())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Apply validates args against the declared parameters and builds an atom.
func (p *Predicate) Apply(args ...Value) (Atom, error) {
	for _, arg := range args {
		if arg.err != nil {
			return Atom{}, fmt.Errorf("predicate %s: %w", p.name, arg.err)
		}
	}
	if len(args) != len(p.params) {
		return Atom{}, &TypeMismatchError{
			Kind:     "predicate",
			Name:     p.name,
			Position: -1,
			Expected: fmt.Sprintf("%d arguments", len(p.params)),
			Actual:   strconv.Itoa(len(args)),
		}
	}
	for i, arg := range args {
		if arg.IsUnbound() {
			continue
		}
		if !arg.CompatibleWith(p.params[i].Type) {
			return Atom{}, &TypeMismatchError{
				Kind:     "predicate",
				Name:     p.name,
				Position: i,
				Expected: p.params[i].Type.Name(),
				Actual:   arg.typeName(),
			}
		}
	}
	return p.build(args), nil
}

// Of is Apply for composing atoms in action bodies and fact builders: the
// error, if any, travels inside the returned atom.
func (p *Predicate) Of(args ...Value) Atom {
	a, err := p.Apply(args...)
	if err != nil {
		return Atom{err: err}
	}
	return a
}

func (p *Predicate) build(args []Value) Atom {
	style := p.domain.style
	name := style.emit(p.name)
	refs := []string{name}
	lits := []string{name}
	ground := true
	for i, arg := range args {
		label := arg.label
		if arg.IsUnbound() {
			label = p.params[i].Name
		}
		label = style.emit(label)
		refs = append(refs, "?"+label)
		lits = append(lits, label)
		if !arg.IsObject() {
			ground = false
		}
	}
	return Atom{
		schema:    p.Schema(),
		reference: "(" + strings.Join(refs, " ") + ")",
		literal:   "(" + strings.Join(lits, " ") + ")",
		ground:    ground,
		domain:    p.domain,
		args:      append([]Value(nil), args...),
	}
}
