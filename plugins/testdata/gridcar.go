package main

import (
	"strconv"

	"github.com/kingrea/pddlkit/pddl"
)

// GridCarProblem moves a single car across a 3x3 grid.
func GridCarProblem() (*pddl.Problem, error) {
	d := pddl.NewDomain("GridCarDomain")
	car, err := d.DeclareType("Car", nil)
	if err != nil {
		return nil, err
	}
	cell, err := d.DeclareType("Cell", nil)
	if err != nil {
		return nil, err
	}
	at, err := d.DeclarePredicate("at", pddl.Param{Name: "car", Type: car}, pddl.Param{Name: "cell", Type: cell})
	if err != nil {
		return nil, err
	}
	adjacent, err := d.DeclarePredicate("adjacent", pddl.Param{Name: "from", Type: cell}, pddl.Param{Name: "to", Type: cell})
	if err != nil {
		return nil, err
	}
	_, err = d.DeclareAction("move",
		[]pddl.Param{{Name: "car", Type: car}, {Name: "from", Type: cell}, {Name: "to", Type: cell}},
		func(a pddl.Args) ([]pddl.Atom, []pddl.Atom) {
			return []pddl.Atom{at.Of(a[0], a[1]), adjacent.Of(a[1], a[2])},
				[]pddl.Atom{pddl.Negate(at.Of(a[0], a[1])), at.Of(a[0], a[2])}
		})
	if err != nil {
		return nil, err
	}

	p := pddl.NewProblem("GridCarProblem", d)
	cars, err := p.Objects(car, []string{"1"})
	if err != nil {
		return nil, err
	}
	var ids []string
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			ids = append(ids, strconv.Itoa(r)+"_"+strconv.Itoa(c))
		}
	}
	cells, err := p.Objects(cell, ids, pddl.WithPrefix("cell_"))
	if err != nil {
		return nil, err
	}
	p.SetInit(func(opts pddl.Options) ([]pddl.Atom, error) {
		start := opts.String("start", "0_0")
		facts := []pddl.Atom{at.Of(cars.At("1"), cells.At(start))}
		for r := 0; r < 3; r++ {
			for c := 0; c+1 < 3; c++ {
				left := strconv.Itoa(r) + "_" + strconv.Itoa(c)
				right := strconv.Itoa(r) + "_" + strconv.Itoa(c+1)
				facts = append(facts, adjacent.Of(cells.At(left), cells.At(right)), adjacent.Of(cells.At(right), cells.At(left)))
			}
		}
		return facts, nil
	})
	p.SetGoal(func(opts pddl.Options) ([]pddl.Atom, error) {
		goal := opts.String("goal", "0_2")
		return []pddl.Atom{at.Of(cars.At("1"), cells.At(goal))}, nil
	})
	return p, nil
}
