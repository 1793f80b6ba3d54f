// Package pddl compiles a planning model into STRIPS-with-typing PDDL.
//
// A Domain is built by declaring types, predicates and actions in order:
//
//	d := pddl.NewDomain("AirCargoDomain")
//	plane, _ := d.DeclareType("Plane", nil)
//	airport, _ := d.DeclareType("Airport", nil)
//	at, _ := d.DeclarePredicate("plane_at", pddl.Param{Name: "p", Type: plane}, pddl.Param{Name: "a", Type: airport})
//	_, err := d.DeclareAction("fly",
//		[]pddl.Param{{Name: "p", Type: plane}, {Name: "orig", Type: airport}, {Name: "dest", Type: airport}},
//		func(a pddl.Args) ([]pddl.Atom, []pddl.Atom) {
//			return []pddl.Atom{at.Of(a[0], a[1])},
//				[]pddl.Atom{pddl.Negate(at.Of(a[0], a[1])), at.Of(a[0], a[2])}
//		})
//
// A Problem adds objects and init/goal builders, then writes both documents
// through GenerateDomainDocument and GenerateProblemDocument.
//
// Each predicate application yields an Atom holding three renderings, because
// the same fact is written differently in the predicate block, inside actions,
// and in init/goal lists. Declaration order is preserved everywhere, so output
// is deterministic.
package pddl
