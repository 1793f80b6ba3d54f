package pddl

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const problemSuffix = "Problem"

// FactsFunc produces the init or goal atoms of a problem. opts carries
// caller-chosen parameters and may be nil.
type FactsFunc func(opts Options) ([]Atom, error)

// Problem is one instance of a domain: objects plus init and goal builders.
type Problem struct {
	name   string
	domain *Domain
	logger *zap.Logger

	objects []*ObjectSet
	labels  map[string]Value
	init    FactsFunc
	goal    FactsFunc
}

// NewProblem creates an empty problem for domain. The document name is derived
// from name by stripping a trailing "Problem" and lower-casing.
func NewProblem(name string, domain *Domain, opts ...Option) *Problem {
	s := applyOptions(opts)
	trimmed := strings.TrimSpace(name)
	return &Problem{
		name:   trimmed,
		domain: domain,
		logger: s.logger.With(zap.String("problem", trimmed)),
		labels: map[string]Value{},
	}
}

// SetLogger replaces the logger of the problem and its domain; nil is ignored.
func (p *Problem) SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	p.logger = logger.With(zap.String("problem", p.name))
	if p.domain != nil {
		p.domain.SetLogger(logger)
	}
}

// Name returns the description name as given to NewProblem.
func (p *Problem) Name() string { return p.name }

// Domain returns the owning domain.
func (p *Problem) Domain() *Domain { return p.domain }

// DocumentName returns the name used in `(problem …)`.
func (p *Problem) DocumentName() (string, error) {
	if p.domain == nil {
		return "", fmt.Errorf("%w: problem %q has no domain", ErrConfiguration, p.name)
	}
	name, ok := deriveName(p.name, problemSuffix, p.domain.style)
	if !ok {
		return "", fmt.Errorf("%w: no problem name derivable from %q", ErrConfiguration, p.name)
	}
	if err := checkIdentifier("problem", name); err != nil {
		return "", err
	}
	return name, nil
}

// Objects builds an object set of type t and registers it with the problem.
func (p *Problem) Objects(t *Type, ids []string, opts ...ObjectOption) (*ObjectSet, error) {
	set, err := BuildObjects(t, ids, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.AddObjects(set); err != nil {
		return nil, err
	}
	return set, nil
}

// AddObjects registers a prebuilt object set. Object labels must be unique
// across the problem and the set's type must belong to the problem's domain.
func (p *Problem) AddObjects(set *ObjectSet) error {
	if set == nil {
		return fmt.Errorf("%w: object set is nil", ErrConfiguration)
	}
	if p.domain == nil || !p.domain.owns(set.typ) {
		return fmt.Errorf("%w: objects of type %s", ErrUndeclaredType, set.typ.Name())
	}
	for _, v := range set.Values() {
		if _, exists := p.labels[v.label]; exists {
			return fmt.Errorf("%w: object %s", ErrDuplicateDeclaration, v.label)
		}
	}
	for _, v := range set.Values() {
		p.labels[v.label] = v
	}
	p.objects = append(p.objects, set)
	p.logger.Debug("objects registered", zap.String("type", set.typ.Name()), zap.Int("count", set.Len()))
	return nil
}

// ObjectSets returns the registered sets in registration order.
func (p *Problem) ObjectSets() []*ObjectSet {
	out := make([]*ObjectSet, len(p.objects))
	copy(out, p.objects)
	return out
}

// Object looks up an object by label across every registered set.
func (p *Problem) Object(label string) (Value, error) {
	v, ok := p.labels[label]
	if !ok {
		return Value{}, &KeyLookupError{Alias: label, TypeTag: "object"}
	}
	return v, nil
}

// SetInit installs the builder for the initial state.
func (p *Problem) SetInit(fn FactsFunc) { p.init = fn }

// SetGoal installs the builder for the goal.
func (p *Problem) SetGoal(fn FactsFunc) { p.goal = fn }

// Init runs the init builder and validates its atoms.
func (p *Problem) Init(opts Options) ([]Atom, error) {
	return p.collectFacts("init", p.init, opts)
}

// Goal runs the goal builder and validates its atoms.
func (p *Problem) Goal(opts Options) ([]Atom, error) {
	return p.collectFacts("goal", p.goal, opts)
}

// collectFacts runs fn and accepts only ground atoms over this problem's
// domain whose objects are all registered with the problem.
func (p *Problem) collectFacts(section string, fn FactsFunc, opts Options) ([]Atom, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %s is not defined", ErrConfiguration, section)
	}
	atoms, err := fn(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}
	if atoms == nil {
		return nil, fmt.Errorf("%w: %s must return a list of atoms", ErrReturnType, section)
	}
	for i, a := range atoms {
		if err := a.checkIn(p.domain); err != nil {
			return nil, fmt.Errorf("%s atom %d: %w", section, i, err)
		}
		if !a.ground {
			return nil, fmt.Errorf("%w: %s atom %d %s", ErrUnboundArgument, section, i, a.literal)
		}
		for _, arg := range a.args {
			if registered, ok := p.labels[arg.label]; !ok || registered.typ != arg.typ {
				return nil, fmt.Errorf("%s atom %d %s: %w", section, i, a.literal, &KeyLookupError{Alias: arg.label, TypeTag: "objects"})
			}
		}
	}
	return atoms, nil
}

// Document renders the problem document, passing initOpts and goalOpts to the
// init and goal builders.
func (p *Problem) Document(initOpts, goalOpts Options) (string, error) {
	name, err := p.DocumentName()
	if err != nil {
		return "", err
	}
	domainName, err := p.domain.DocumentName()
	if err != nil {
		return "", err
	}
	initAtoms, err := p.Init(initOpts)
	if err != nil {
		return "", err
	}
	goalAtoms, err := p.Goal(goalOpts)
	if err != nil {
		return "", err
	}
	style := p.domain.style
	objects := make([]string, 0, len(p.objects))
	for _, set := range p.objects {
		if set.Len() == 0 {
			continue
		}
		objects = append(objects, set.line(style))
	}
	var doc document
	doc.open("(define (problem " + name + ")")
	doc.line(1, "(:domain "+domainName+")")
	doc.section(1, "(:objects", objects)
	initLine := "(:init"
	if len(initAtoms) > 0 {
		initLine += " " + strings.Join(literals(initAtoms), " ")
	}
	doc.line(1, initLine+")")
	doc.line(1, "(:goal "+conjunction(literals(goalAtoms))+")")
	return doc.close(), nil
}

// GenerateDomainDocument writes the owning domain's document.
func (p *Problem) GenerateDomainDocument(base string) (string, error) {
	if p.domain == nil {
		return "", fmt.Errorf("%w: problem %q has no domain", ErrConfiguration, p.name)
	}
	return p.domain.GenerateDomainDocument(base)
}

// GenerateProblemDocument renders the problem and writes it to base + ".pddl".
// Nothing is written when rendering fails.
func (p *Problem) GenerateProblemDocument(initOpts, goalOpts Options, base string) (string, error) {
	text, err := p.Document(initOpts, goalOpts)
	if err != nil {
		return "", err
	}
	path := documentPath(base, "problem")
	if err := p.write(path, text); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateDocuments renders the domain and problem documents, then writes them
// to domainBase + ".pddl" and problemBase + ".pddl". If either fails to render,
// neither file is touched.
func (p *Problem) GenerateDocuments(initOpts, goalOpts Options, domainBase, problemBase string) (domainPath, problemPath string, err error) {
	if p.domain == nil {
		return "", "", fmt.Errorf("%w: problem %q has no domain", ErrConfiguration, p.name)
	}
	domainText, err := p.domain.Document()
	if err != nil {
		return "", "", err
	}
	problemText, err := p.Document(initOpts, goalOpts)
	if err != nil {
		return "", "", err
	}
	domainPath = documentPath(domainBase, "domain")
	problemPath = documentPath(problemBase, "problem")
	if domainPath == problemPath {
		return "", "", fmt.Errorf("%w: domain and problem documents would both be written to %s", ErrConfiguration, domainPath)
	}
	if err := p.domain.write(domainPath, domainText); err != nil {
		return "", "", err
	}
	if err := p.write(problemPath, problemText); err != nil {
		return "", "", err
	}
	return domainPath, problemPath, nil
}

func (p *Problem) write(path, text string) error {
	if err := writeDocument(path, text); err != nil {
		return err
	}
	p.logger.Info("problem document written",
		zap.String("path", path),
		zap.Int("object_sets", len(p.objects)),
	)
	return nil
}
