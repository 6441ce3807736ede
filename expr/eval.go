package expr

import (
	"fmt"
	"math"
)

// ============================================================================
// EVALUATION — Concrete Interpretation of Synthesized Expressions
// ============================================================================
// Evaluate computes the value of an expression for a concrete environment.
// The compiler never evaluates expressions it emits as output; this exists
// so tests can prove the literal and expression paths equivalent, and so
// consumers can preview a deferred default for known inputs.
// ============================================================================

// Env binds raw fragments (by their exact text) to concrete values.
// Values are float64, string, bool, or nil.
type Env map[string]any

// Evaluate computes the value of an expression against an environment.
// Every raw fragment reachable from e must be bound in env.
func Evaluate(e Expr, env Env) (any, error) {
	switch n := e.(type) {
	case NumLit:
		return float64(n), nil
	case StrLit:
		return string(n), nil
	case BoolLit:
		return bool(n), nil
	case NullLit:
		return nil, nil
	case Raw:
		v, ok := env[string(n)]
		if !ok {
			return nil, fmt.Errorf("expr: unbound fragment %q", string(n))
		}
		return v, nil
	case Unary:
		return evalUnary(n, env)
	case Binary:
		return evalBinary(n, env)
	case Ternary:
		test, err := Evaluate(n.Test, env)
		if err != nil {
			return nil, err
		}
		b, ok := test.(bool)
		if !ok {
			return nil, fmt.Errorf("expr: conditional test is %T, want bool", test)
		}
		if b {
			return Evaluate(n.Then, env)
		}
		return Evaluate(n.Else, env)
	case CallExpr:
		return evalCall(n, env)
	default:
		return nil, fmt.Errorf("expr: unknown node %T", e)
	}
}

func evalUnary(n Unary, env Env) (any, error) {
	x, err := Evaluate(n.X, env)
	if err != nil {
		return nil, err
	}
	if n.Op != "!" {
		return nil, fmt.Errorf("expr: unknown unary operator %q", n.Op)
	}
	b, ok := x.(bool)
	if !ok {
		return nil, fmt.Errorf("expr: operand of ! is %T, want bool", x)
	}
	return !b, nil
}

func evalBinary(n Binary, env Env) (any, error) {
	l, err := Evaluate(n.L, env)
	if err != nil {
		return nil, err
	}
	r, err := Evaluate(n.R, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "===":
		return l == r, nil
	case "!==":
		return l != r, nil
	case "&&":
		return evalLogical(n.Op, l, r)
	case "||":
		return evalLogical(n.Op, l, r)
	}

	lf, lok := l.(float64)
	rf, rok := r.(float64)
	if !lok || !rok {
		return nil, fmt.Errorf("expr: operands of %q are %T and %T, want numbers", n.Op, l, r)
	}

	switch n.Op {
	case "+":
		return lf + rf, nil
	case "/":
		return lf / rf, nil
	case "%":
		// Remainder keeps the dividend's sign, matching the renderer.
		return math.Mod(lf, rf), nil
	case "<":
		return lf < rf, nil
	case "<=":
		return lf <= rf, nil
	case ">":
		return lf > rf, nil
	case ">=":
		return lf >= rf, nil
	default:
		return nil, fmt.Errorf("expr: unknown binary operator %q", n.Op)
	}
}

func evalLogical(op string, l, r any) (any, error) {
	lb, lok := l.(bool)
	rb, rok := r.(bool)
	if !lok || !rok {
		return nil, fmt.Errorf("expr: operands of %q are %T and %T, want bools", op, l, r)
	}
	if op == "&&" {
		return lb && rb, nil
	}
	return lb || rb, nil
}

func evalCall(n CallExpr, env Env) (any, error) {
	args := make([]any, len(n.Args))
	for i, a := range n.Args {
		v, err := Evaluate(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch n.Fn {
	case "ceil":
		if len(args) != 1 {
			return nil, fmt.Errorf("expr: ceil takes 1 argument, got %d", len(args))
		}
		f, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expr: ceil argument is %T, want number", args[0])
		}
		return math.Ceil(f), nil
	case "abs":
		if len(args) != 1 {
			return nil, fmt.Errorf("expr: abs takes 1 argument, got %d", len(args))
		}
		f, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expr: abs argument is %T, want number", args[0])
		}
		return math.Abs(f), nil
	default:
		return nil, fmt.Errorf("expr: unknown function %q", n.Fn)
	}
}
