package pddl

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const domainSuffix = "Domain"

// Domain is a planning domain under construction: an insertion-ordered
// registry of types, predicates and actions.
type Domain struct {
	name   string
	style  IdentifierStyle
	logger *zap.Logger

	types          []*Type
	typeIndex      map[string]*Type
	predicates     []*Predicate
	predicateIndex map[string]*Predicate
	actions        []*Action
	actionIndex    map[string]*Action
}

// Option configures a Domain or Problem.
type Option func(*settings)

type settings struct {
	style  IdentifierStyle
	logger *zap.Logger
}

// WithLogger routes declaration and generation logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIdentifierStyle selects how identifiers are emitted. Problems always
// follow their domain's style.
func WithIdentifierStyle(style IdentifierStyle) Option {
	return func(s *settings) {
		s.style = style
	}
}

// WithVerbatimIdentifiers keeps underscores in emitted identifiers.
func WithVerbatimIdentifiers() Option {
	return WithIdentifierStyle(Verbatim)
}

func applyOptions(opts []Option) settings {
	s := settings{style: Hyphenated, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// NewDomain creates an empty domain. The document name is derived from name by
// stripping a trailing "Domain" and lower-casing, so "AirCargoDomain" becomes
// "aircargo".
func NewDomain(name string, opts ...Option) *Domain {
	s := applyOptions(opts)
	return &Domain{
		name:           strings.TrimSpace(name),
		style:          s.style,
		logger:         s.logger.With(zap.String("domain", strings.TrimSpace(name))),
		typeIndex:      map[string]*Type{},
		predicateIndex: map[string]*Predicate{},
		actionIndex:    map[string]*Action{},
	}
}

// SetLogger replaces the domain's logger; nil is ignored.
func (d *Domain) SetLogger(logger *zap.Logger) {
	if logger != nil {
		d.logger = logger.With(zap.String("domain", d.name))
	}
}

// Name returns the description name as given to NewDomain.
func (d *Domain) Name() string { return d.name }

// Style returns the identifier style.
func (d *Domain) Style() IdentifierStyle { return d.style }

// DocumentName returns the name used in `(domain …)`.
func (d *Domain) DocumentName() (string, error) {
	name, ok := deriveName(d.name, domainSuffix, d.style)
	if !ok {
		return "", fmt.Errorf("%w: no domain name derivable from %q", ErrConfiguration, d.name)
	}
	if err := checkIdentifier("domain", name); err != nil {
		return "", err
	}
	return name, nil
}

// Predicate looks up a declared predicate by name.
func (d *Domain) Predicate(name string) (*Predicate, bool) {
	p, ok := d.predicateIndex[d.style.emit(strings.TrimSpace(name))]
	return p, ok
}

// Predicates returns every predicate in declaration order.
func (d *Domain) Predicates() []*Predicate {
	out := make([]*Predicate, len(d.predicates))
	copy(out, d.predicates)
	return out
}

// Action looks up a declared action by name.
func (d *Domain) Action(name string) (*Action, bool) {
	a, ok := d.actionIndex[d.style.emit(strings.TrimSpace(name))]
	return a, ok
}

// Actions returns every action in declaration order.
func (d *Domain) Actions() []*Action {
	out := make([]*Action, len(d.actions))
	copy(out, d.actions)
	return out
}

// Document renders the domain document.
func (d *Domain) Document() (string, error) {
	name, err := d.DocumentName()
	if err != nil {
		return "", err
	}
	var doc document
	doc.open("(define (domain " + name + ")")
	doc.line(1, "(:requirements :strips :typing)")
	doc.section(1, "(:types", typeLines(d.types))
	schemas := make([]string, len(d.predicates))
	for i, p := range d.predicates {
		schemas[i] = p.Schema()
	}
	doc.section(1, "(:predicates", schemas)
	for _, a := range d.actions {
		doc.block(1, a.Block())
	}
	return doc.close(), nil
}

// GenerateDomainDocument renders the domain and writes it to base + ".pddl".
// Nothing is written when rendering fails.
func (d *Domain) GenerateDomainDocument(base string) (string, error) {
	text, err := d.Document()
	if err != nil {
		return "", err
	}
	path := documentPath(base, "domain")
	if err := d.write(path, text); err != nil {
		return "", err
	}
	return path, nil
}

func (d *Domain) write(path, text string) error {
	if err := writeDocument(path, text); err != nil {
		return err
	}
	d.logger.Info("domain document written",
		zap.String("path", path),
		zap.Int("types", len(d.types)),
		zap.Int("predicates", len(d.predicates)),
		zap.Int("actions", len(d.actions)),
	)
	return nil
}

func typeFields(t *Type) []zap.Field {
	fields := []zap.Field{zap.String("type", t.name)}
	if t.parent != nil {
		fields = append(fields, zap.String("parent", t.parent.name))
	}
	return fields
}
