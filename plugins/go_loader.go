package plugins

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/kingrea/pddlkit/pddl"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const constructorSuffix = "Problem"

var (
	problemType = reflect.TypeOf((*pddl.Problem)(nil))
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// LoadGoDescription interprets a Go description file and returns the problem
// built by its single exported, parameterless *Problem constructor.
func LoadGoDescription(path string) (*pddl.Problem, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plugin: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("plugin: %s is empty", path)
	}
	name, err := findConstructor(path, code)
	if err != nil {
		return nil, err
	}
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("plugin: load stdlib symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("plugin: load pddl symbols: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("plugin: interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(name)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s: resolve %s: %w", path, name, err)
	}
	problem, err := invokeConstructor(name, fnValue)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s: %w", path, err)
	}
	return problem, nil
}

// findConstructor returns the one exported top-level function without receiver
// or parameters whose name ends in "Problem".
func findConstructor(path string, code []byte) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, code, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("plugin: parse %s: %w", path, err)
	}
	if file.Name.Name != "main" {
		return "", fmt.Errorf("plugin: %s: %w: package must be main, got %s", path, pddl.ErrConfiguration, file.Name.Name)
	}
	var candidates []string
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}
		if !strings.HasSuffix(fn.Name.Name, constructorSuffix) || fn.Type.Params.NumFields() > 0 {
			continue
		}
		candidates = append(candidates, fn.Name.Name)
	}
	sort.Strings(candidates)
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return "", fmt.Errorf("plugin: %s: %w: no func *%s() constructor found", path, pddl.ErrConfiguration, constructorSuffix)
	default:
		return "", fmt.Errorf("plugin: %s: %w: several problem constructors found: %s", path, pddl.ErrConfiguration, strings.Join(candidates, ", "))
	}
}

func invokeConstructor(name string, value reflect.Value) (*pddl.Problem, error) {
	if !value.IsValid() || value.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a function", pddl.ErrConfiguration, name)
	}
	results := value.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, fmt.Errorf("%w: %s must return (*pddl.Problem[, error])", pddl.ErrReturnType, name)
	}
	if len(results) == 2 {
		second := results[1]
		if second.Type() != errorType {
			return nil, fmt.Errorf("%w: %s returned non-error second value", pddl.ErrReturnType, name)
		}
		if !second.IsNil() {
			return nil, fmt.Errorf("%s: %w", name, second.Interface().(error))
		}
	}
	first := results[0]
	if first.Type() != problemType {
		return nil, fmt.Errorf("%w: %s returned %s, want *pddl.Problem", pddl.ErrReturnType, name, first.Type())
	}
	problem, _ := first.Interface().(*pddl.Problem)
	if problem == nil {
		return nil, fmt.Errorf("%w: %s returned a nil problem", pddl.ErrReturnType, name)
	}
	return problem, nil
}
