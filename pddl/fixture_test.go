package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type airCargo struct {
	domain  *Domain
	cargo   *Type
	plane   *Type
	airport *Type
	cargoAt *Predicate
	planeAt *Predicate
	in      *Predicate
}

func newAirCargo(t *testing.T, opts ...Option) *airCargo {
	t.Helper()
	d := NewDomain("AirCargoDomain", opts...)
	ac := &airCargo{domain: d}
	var err error
	ac.cargo, err = d.DeclareType("Cargo", nil)
	require.NoError(t, err)
	ac.plane, err = d.DeclareType("Plane", nil)
	require.NoError(t, err)
	ac.airport, err = d.DeclareType("Airport", nil)
	require.NoError(t, err)

	ac.cargoAt, err = d.DeclarePredicate("cargo_at", Param{Name: "c", Type: ac.cargo}, Param{Name: "a", Type: ac.airport})
	require.NoError(t, err)
	ac.planeAt, err = d.DeclarePredicate("plane_at", Param{Name: "p", Type: ac.plane}, Param{Name: "a", Type: ac.airport})
	require.NoError(t, err)
	ac.in, err = d.DeclarePredicate("in_", Param{Name: "c", Type: ac.cargo}, Param{Name: "p", Type: ac.plane})
	require.NoError(t, err)

	_, err = d.DeclareAction("load",
		[]Param{{Name: "c", Type: ac.cargo}, {Name: "p", Type: ac.plane}, {Name: "a", Type: ac.airport}},
		func(a Args) ([]Atom, []Atom) {
			return []Atom{ac.cargoAt.Of(a[0], a[2]), ac.planeAt.Of(a[1], a[2])},
				[]Atom{Negate(ac.cargoAt.Of(a[0], a[2])), ac.in.Of(a[0], a[1])}
		})
	require.NoError(t, err)
	_, err = d.DeclareAction("fly",
		[]Param{{Name: "p", Type: ac.plane}, {Name: "orig", Type: ac.airport}, {Name: "dest", Type: ac.airport}},
		func(a Args) ([]Atom, []Atom) {
			return []Atom{ac.planeAt.Of(a[0], a[1])},
				[]Atom{Negate(ac.planeAt.Of(a[0], a[1])), ac.planeAt.Of(a[0], a[2])}
		})
	require.NoError(t, err)
	return ac
}

type airCargoProblem struct {
	*airCargo
	problem  *Problem
	cargos   *ObjectSet
	planes   *ObjectSet
	airports *ObjectSet
}

func newAirCargoProblem(t *testing.T, opts ...Option) *airCargoProblem {
	t.Helper()
	ac := newAirCargo(t, opts...)
	p := NewProblem("AirCargoProblem", ac.domain, opts...)
	acp := &airCargoProblem{airCargo: ac, problem: p}
	var err error
	acp.cargos, err = p.Objects(ac.cargo, Seq(1, 2), WithPrefix("c"))
	require.NoError(t, err)
	acp.planes, err = p.Objects(ac.plane, Seq(1, 2), WithPrefix("p"))
	require.NoError(t, err)
	acp.airports, err = p.Objects(ac.airport, []string{"sfo", "jfk"}, WithPrefix(""))
	require.NoError(t, err)

	p.SetInit(func(Options) ([]Atom, error) {
		return []Atom{
			ac.cargoAt.Of(acp.cargos.At("1"), acp.airports.At("sfo")),
			ac.cargoAt.Of(acp.cargos.At("2"), acp.airports.At("jfk")),
			ac.planeAt.Of(acp.planes.At("1"), acp.airports.At("sfo")),
			ac.planeAt.Of(acp.planes.At("2"), acp.airports.At("jfk")),
		}, nil
	})
	p.SetGoal(func(Options) ([]Atom, error) {
		return []Atom{
			ac.cargoAt.Of(acp.cargos.At("1"), acp.airports.At("jfk")),
			ac.cargoAt.Of(acp.cargos.At("2"), acp.airports.At("sfo")),
		}, nil
	})
	return acp
}
