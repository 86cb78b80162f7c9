package vars

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Handler resolves a variable name to its value. ok is false when the
// handler has no binding for name.
type Handler interface {
	Resolve(name string) (string, bool)
}

// Map resolves from a fixed set of bindings.
type Map map[string]string

func (m Map) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Func adapts a function to a Handler.
type Func func(name string) (string, bool)

func (f Func) Resolve(name string) (string, bool) {
	return f(name)
}

// Env resolves from the process environment.
func Env() Handler {
	return Func(os.LookupEnv)
}

// Chain tries each handler in order and takes the first hit.
type Chain []Handler

func (c Chain) Resolve(name string) (string, bool) {
	for _, h := range c {
		if v, ok := h.Resolve(name); ok {
			return v, true
		}
	}
	return "", false
}

// Expr evaluates variable names as expressions over a fixed
// environment, so references like ${replicas * 2} compute values
// instead of looking them up. Compiled programs are cached per name.
type Expr struct {
	env   map[string]any
	progs map[string]*vm.Program
}

func NewExpr(env map[string]any) *Expr {
	return &Expr{env: env, progs: map[string]*vm.Program{}}
}

func (e *Expr) Resolve(name string) (string, bool) {
	prog, ok := e.progs[name]
	if !ok {
		var err error
		prog, err = expr.Compile(name, expr.Env(e.env))
		if err != nil {
			return "", false
		}
		e.progs[name] = prog
	}
	out, err := expr.Run(prog, e.env)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%v", out), true
}
