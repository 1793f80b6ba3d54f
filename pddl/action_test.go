package pddl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionBlockVerbatim(t *testing.T) {
	d := NewDomain("FlyingDomain", WithVerbatimIdentifiers())
	plane, err := d.DeclareType("Plane", nil)
	require.NoError(t, err)
	airport, err := d.DeclareType("Airport", nil)
	require.NoError(t, err)
	planeAt, err := d.DeclarePredicate("plane_at", Param{Name: "p", Type: plane}, Param{Name: "a", Type: airport})
	require.NoError(t, err)

	fly, err := d.DeclareAction("fly",
		[]Param{{Name: "p", Type: plane}, {Name: "orig", Type: airport}, {Name: "dest", Type: airport}},
		func(a Args) ([]Atom, []Atom) {
			return []Atom{planeAt.Of(a[0], a[1])},
				[]Atom{Negate(planeAt.Of(a[0], a[1])), planeAt.Of(a[0], a[2])}
		})
	require.NoError(t, err)

	want := "(:action fly\n" +
		"    :parameters (?p - plane ?orig - airport ?dest - airport)\n" +
		"    :precondition (plane_at ?p ?orig)\n" +
		"    :effect (and (not (plane_at ?p ?orig)) (plane_at ?p ?dest))\n" +
		")"
	assert.Equal(t, want, fly.Block())
}

func TestActionBlockHyphenated(t *testing.T) {
	ac := newAirCargo(t)
	load, ok := ac.domain.Action("load")
	require.True(t, ok)

	want := "(:action load\n" +
		"    :parameters (?c - cargo ?p - plane ?a - airport)\n" +
		"    :precondition (and (cargo-at ?c ?a) (plane-at ?p ?a))\n" +
		"    :effect (and (not (cargo-at ?c ?a)) (in ?c ?p))\n" +
		")"
	assert.Equal(t, want, load.Block())
}

func TestActionUnderscoreNames(t *testing.T) {
	d := NewDomain("GridCarDomain")
	agent, err := d.DeclareType("Agent", nil)
	require.NoError(t, err)
	loc, err := d.DeclareType("Loc", nil)
	require.NoError(t, err)
	at, err := d.DeclarePredicate("at", Param{Name: "agent", Type: agent}, Param{Name: "loc", Type: loc})
	require.NoError(t, err)

	move, err := d.DeclareAction("move_up",
		[]Param{{Name: "agent", Type: agent}, {Name: "loc_old", Type: loc}, {Name: "loc_new", Type: loc}},
		func(a Args) ([]Atom, []Atom) {
			return []Atom{at.Of(a[0], a[1])}, []Atom{Negate(at.Of(a[0], a[1])), at.Of(a[0], a[2])}
		})
	require.NoError(t, err)
	assert.Contains(t, move.Block(), "(:action move-up\n")
	assert.Contains(t, move.Block(), ":parameters (?agent - agent ?loc-old - loc ?loc-new - loc)")
	assert.Contains(t, move.Block(), ":precondition (at ?agent ?loc-old)")
}

func TestActionEmptyPrecondition(t *testing.T) {
	d := NewDomain("LightDomain")
	lamp, err := d.DeclareType("Lamp", nil)
	require.NoError(t, err)
	on, err := d.DeclarePredicate("on", Param{Name: "l", Type: lamp})
	require.NoError(t, err)
	toggle, err := d.DeclareAction("switch_on", []Param{{Name: "l", Type: lamp}}, func(a Args) ([]Atom, []Atom) {
		return nil, []Atom{on.Of(a[0])}
	})
	require.NoError(t, err)
	assert.Contains(t, toggle.Block(), ":precondition (and)\n")
	assert.Contains(t, toggle.Block(), ":effect (on ?l)\n")
}

func TestDeclareActionErrors(t *testing.T) {
	ac := newAirCargo(t)
	params := []Param{{Name: "p", Type: ac.plane}, {Name: "a", Type: ac.airport}}

	_, err := ac.domain.DeclareAction("fly", params, func(a Args) ([]Atom, []Atom) {
		return nil, []Atom{ac.planeAt.Of(a[0], a[1])}
	})
	assert.ErrorIs(t, err, ErrDuplicateDeclaration)

	_, err = ac.domain.DeclareAction("crash", params, func(a Args) ([]Atom, []Atom) {
		return nil, []Atom{ac.cargoAt.Of(a[0], a[1])}
	})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, ok := ac.domain.Action("crash")
	assert.False(t, ok)

	_, err = ac.domain.DeclareAction("idle", params, func(a Args) ([]Atom, []Atom) {
		return []Atom{ac.planeAt.Of(a[0], a[1])}, nil
	})
	assert.ErrorIs(t, err, ErrReturnType)

	_, err = ac.domain.DeclareAction("ghost", params, func(a Args) ([]Atom, []Atom) {
		return nil, []Atom{{}}
	})
	assert.ErrorIs(t, err, ErrReturnType)

	_, err = ac.domain.DeclareAction("nobody", params, nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	other := NewDomain("OtherDomain")
	beacon, err := other.DeclarePredicate("beacon")
	require.NoError(t, err)
	_, err = ac.domain.DeclareAction("signal", params, func(a Args) ([]Atom, []Atom) {
		return []Atom{ac.planeAt.Of(a[0], a[1])}, []Atom{Negate(beacon.Of())}
	})
	assert.ErrorIs(t, err, ErrUndeclaredType)
	_, ok = ac.domain.Action("signal")
	assert.False(t, ok)
}

func TestActionHarvestUsesPlaceholders(t *testing.T) {
	ac := newAirCargo(t)
	var seen Args
	_, err := ac.domain.DeclareAction("inspect",
		[]Param{{Name: "p", Type: ac.plane}, {Name: "a", Type: ac.airport}},
		func(a Args) ([]Atom, []Atom) {
			seen = a
			return nil, []Atom{ac.planeAt.Of(a[0], a[1])}
		})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsPlaceholder())
	assert.Equal(t, "p", seen[0].Label())
	assert.Same(t, ac.plane, seen[0].Type())
	assert.Equal(t, "a", seen[1].Label())
}

func TestActionGround(t *testing.T) {
	ac := newAirCargo(t)
	fly, ok := ac.domain.Action("fly")
	require.True(t, ok)

	step, err := fly.Ground(NewObject(ac.plane, "p1"), NewObject(ac.airport, "sfo"), NewObject(ac.airport, "jfk"))
	require.NoError(t, err)
	assert.Equal(t, "(fly p1 sfo jfk)", step.String())
	require.Len(t, step.Precondition, 1)
	assert.Equal(t, "(plane-at p1 sfo)", step.Precondition[0].Literal())
	require.Len(t, step.Effect, 2)
	assert.Equal(t, "(not (plane-at p1 sfo))", step.Effect[0].Literal())
	assert.Equal(t, "(plane-at p1 jfk)", step.Effect[1].Literal())

	partial, err := fly.Ground(NewObject(ac.plane, "p1"), Unbound, NewObject(ac.airport, "jfk"))
	require.NoError(t, err)
	assert.Equal(t, "(plane-at ?p1 ?orig)", partial.Precondition[0].Reference())
	assert.False(t, partial.Precondition[0].Ground())
}

func TestActionGroundTypeMismatch(t *testing.T) {
	ac := newAirCargo(t)
	fly, ok := ac.domain.Action("fly")
	require.True(t, ok)

	_, err := fly.Ground(NewObject(ac.cargo, "c1"), NewObject(ac.airport, "sfo"), NewObject(ac.airport, "jfk"))
	require.ErrorIs(t, err, ErrTypeMismatch)
	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "action", mismatch.Kind)
	assert.Equal(t, "fly", mismatch.Name)
	assert.Equal(t, 0, mismatch.Position)

	_, err = fly.Ground(NewObject(ac.plane, "p1"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
