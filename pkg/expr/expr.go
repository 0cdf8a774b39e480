package expr

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/macropower/aspect/pkg/screenlist"
)

var (
	ErrNotBool       = errors.New("expression must evaluate to a bool")
	ErrInvalidScreen = errors.New("invalid screen")
)

// Protect CEL environment creation and compilation from concurrent access.
var celMutex sync.Mutex

// Environment provides a thread-safe wrapper around a [*cel.Env].
type Environment struct {
	env *cel.Env
}

// NewEnvironment creates a new [Environment].
func NewEnvironment(opts ...cel.EnvOption) (*Environment, error) {
	env, err := createEnvironment(opts...)
	if err != nil {
		return nil, err
	}

	return &Environment{env: env}, nil
}

// MustNewEnvironment creates a new [Environment] and panics on error.
func MustNewEnvironment(opts ...cel.EnvOption) *Environment {
	env, err := NewEnvironment(opts...)
	if err != nil {
		panic(err)
	}

	return env
}

// createEnvironment creates the [*cel.Env] using the global mutex.
func createEnvironment(opts ...cel.EnvOption) (*cel.Env, error) {
	celMutex.Lock()
	defer celMutex.Unlock()

	opts = append(opts, cel.Lib(&lib{}))

	celEnv, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	return celEnv, nil
}

// Compile compiles a CEL expression and returns a program.
//
//nolint:ireturn // Following CEL's function signature.
func (e *Environment) Compile(expression string) (cel.Program, error) {
	celMutex.Lock()
	defer celMutex.Unlock()

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", issues.Err())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	return program, nil
}

// Filter is a compiled boolean expression over a screen.
type Filter struct {
	program    cel.Program
	expression string
}

// NewFilter compiles expression into a [Filter].
func (e *Environment) NewFilter(expression string) (*Filter, error) {
	program, err := e.Compile(expression)
	if err != nil {
		return nil, err
	}

	return &Filter{program: program, expression: expression}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against an entry.
func (f *Filter) Match(entry screenlist.Entry) (bool, error) {
	vars, ok := ScreenVars(entry)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrInvalidScreen, entry.Label())
	}

	out, _, err := f.program.Eval(map[string]any{VarScreen: vars})
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", f.expression, err)
	}

	match, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("%w, got %s", ErrNotBool, out.Type().TypeName())
	}

	return bool(match), nil
}

// Apply returns the entries that match the filter, in order. Entries that
// fail to evaluate do not match.
func (f *Filter) Apply(entries []screenlist.Entry) []screenlist.Entry {
	var out []screenlist.Entry

	for _, e := range entries {
		match, err := f.Match(e)
		if err != nil {
			slog.Debug("filter did not evaluate",
				slog.String("screen", e.Label()),
				slog.Any("error", err),
			)

			continue
		}
		if match {
			out = append(out, e)
		}
	}

	return out
}
