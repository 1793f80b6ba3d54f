package plugins

import (
	"reflect"

	"github.com/kingrea/pddlkit/pddl"
)

// Symbols exposes the pddl package to interpreted description files, keyed the
// way yaegi expects: "import/path/name".
var Symbols = map[string]map[string]reflect.Value{}

func init() {
	Symbols["github.com/kingrea/pddlkit/pddl/pddl"] = map[string]reflect.Value{
		// function, constant and variable definitions
		"BuildObjects":            reflect.ValueOf(pddl.BuildObjects),
		"ErrConfiguration":        reflect.ValueOf(&pddl.ErrConfiguration).Elem(),
		"ErrDuplicateDeclaration": reflect.ValueOf(&pddl.ErrDuplicateDeclaration).Elem(),
		"ErrKeyLookup":            reflect.ValueOf(&pddl.ErrKeyLookup).Elem(),
		"ErrReturnType":           reflect.ValueOf(&pddl.ErrReturnType).Elem(),
		"ErrTypeMismatch":         reflect.ValueOf(&pddl.ErrTypeMismatch).Elem(),
		"ErrUnboundArgument":      reflect.ValueOf(&pddl.ErrUnboundArgument).Elem(),
		"ErrUndeclaredType":       reflect.ValueOf(&pddl.ErrUndeclaredType).Elem(),
		"Hyphenated":              reflect.ValueOf(pddl.Hyphenated),
		"Negate":                  reflect.ValueOf(pddl.Negate),
		"NewDomain":               reflect.ValueOf(pddl.NewDomain),
		"NewObject":               reflect.ValueOf(pddl.NewObject),
		"NewProblem":              reflect.ValueOf(pddl.NewProblem),
		"ParseIdentifierStyle":    reflect.ValueOf(pddl.ParseIdentifierStyle),
		"Seq":                     reflect.ValueOf(pddl.Seq),
		"Unbound":                 reflect.ValueOf(&pddl.Unbound).Elem(),
		"Verbatim":                reflect.ValueOf(pddl.Verbatim),
		"WithAlias":               reflect.ValueOf(pddl.WithAlias),
		"WithAliasPrefix":         reflect.ValueOf(pddl.WithAliasPrefix),
		"WithIdentifierStyle":     reflect.ValueOf(pddl.WithIdentifierStyle),
		"WithLogger":              reflect.ValueOf(pddl.WithLogger),
		"WithPrefix":              reflect.ValueOf(pddl.WithPrefix),
		"WithVerbatimIdentifiers": reflect.ValueOf(pddl.WithVerbatimIdentifiers),

		// type definitions
		"Action":            reflect.ValueOf((*pddl.Action)(nil)),
		"ActionBody":        reflect.ValueOf((*pddl.ActionBody)(nil)),
		"Args":              reflect.ValueOf((*pddl.Args)(nil)),
		"Atom":              reflect.ValueOf((*pddl.Atom)(nil)),
		"Domain":            reflect.ValueOf((*pddl.Domain)(nil)),
		"FactsFunc":         reflect.ValueOf((*pddl.FactsFunc)(nil)),
		"GroundAction":      reflect.ValueOf((*pddl.GroundAction)(nil)),
		"IdentifierStyle":   reflect.ValueOf((*pddl.IdentifierStyle)(nil)),
		"KeyLookupError":    reflect.ValueOf((*pddl.KeyLookupError)(nil)),
		"ObjectOption":      reflect.ValueOf((*pddl.ObjectOption)(nil)),
		"ObjectSet":         reflect.ValueOf((*pddl.ObjectSet)(nil)),
		"Option":            reflect.ValueOf((*pddl.Option)(nil)),
		"Options":           reflect.ValueOf((*pddl.Options)(nil)),
		"Param":             reflect.ValueOf((*pddl.Param)(nil)),
		"Predicate":         reflect.ValueOf((*pddl.Predicate)(nil)),
		"Problem":           reflect.ValueOf((*pddl.Problem)(nil)),
		"Type":              reflect.ValueOf((*pddl.Type)(nil)),
		"TypeMismatchError": reflect.ValueOf((*pddl.TypeMismatchError)(nil)),
		"Value":             reflect.ValueOf((*pddl.Value)(nil)),
	}
}
