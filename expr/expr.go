package expr

import (
	"strconv"
	"strings"
)

// ============================================================================
// EXPRESSION SYNTHESIS — Render-Time Expression Language
// ============================================================================
// The engine defers decisions it cannot make at compile time by emitting
// expressions in the renderer's expression language (JS-like: ===, %, &&,
// ternary, single-quoted strings). Expressions are composed as a small AST
// and rendered once at the output boundary.
//
// The engine never evaluates an expression it emits — evaluation here
// (eval.go) exists for equivalence checking and consumer previews.
// ============================================================================

// ExprRef is an opaque reference to a render-time expression.
// This is the boundary type for every dynamic value the engine receives or
// produces: the expression is carried verbatim, never evaluated.
type ExprRef struct {
	Expr string `json:"expr"`
}

// NewRef wraps an expression string in an ExprRef.
func NewRef(expression string) *ExprRef {
	return &ExprRef{Expr: expression}
}

// Ref renders an expression node into an ExprRef.
func Ref(e Expr) *ExprRef {
	return &ExprRef{Expr: e.String()}
}

// Expr is a node in the expression AST.
// The node kinds form a closed set: literals (number, string, boolean,
// null), raw fragments, unary not, binary operations, conditionals, and
// function calls.
type Expr interface {
	// String renders the node in the render-time expression language.
	String() string
}

// ============================================================================
// LEAVES
// ============================================================================

// NumLit is a numeric literal.
type NumLit float64

// StrLit is a string literal, rendered single-quoted.
type StrLit string

// BoolLit is a boolean literal.
type BoolLit bool

// NullLit is the null literal.
type NullLit struct{}

// Raw is an opaque expression fragment: a consumer-supplied dynamic
// reference or a renderer signal name (e.g. "width"). Non-identifier
// fragments are parenthesized when rendered so embedding is safe.
type Raw string

// Num creates a numeric literal.
func Num(v float64) Expr { return NumLit(v) }

// Str creates a string literal.
func Str(v string) Expr { return StrLit(v) }

// Bool creates a boolean literal.
func Bool(v bool) Expr { return BoolLit(v) }

// Null creates the null literal.
func Null() Expr { return NullLit{} }

// Frag creates a raw fragment node from an opaque expression string.
func Frag(fragment string) Expr { return Raw(fragment) }

func (n NumLit) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (s StrLit) String() string {
	escaped := strings.ReplaceAll(string(s), `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}

func (b BoolLit) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (NullLit) String() string { return "null" }

func (r Raw) String() string {
	if isIdentifier(string(r)) {
		return string(r)
	}
	return "(" + string(r) + ")"
}

// isIdentifier reports whether a fragment needs no parentheses when embedded.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}

// ============================================================================
// COMPOSITES
// ============================================================================

// Unary is a prefix operation. The only supported operator is "!".
type Unary struct {
	Op string
	X  Expr
}

// Binary is an infix operation. Rendered fully parenthesized so nesting
// never depends on operator precedence.
type Binary struct {
	Op   string
	L, R Expr
}

// Ternary is a conditional expression: Test ? Then : Else.
type Ternary struct {
	Test, Then, Else Expr
}

// CallExpr is a function call in the render-time language.
type CallExpr struct {
	Fn   string
	Args []Expr
}

func (u Unary) String() string {
	return "(" + u.Op + u.X.String() + ")"
}

func (b Binary) String() string {
	return "(" + b.L.String() + " " + b.Op + " " + b.R.String() + ")"
}

func (t Ternary) String() string {
	return t.Test.String() + " ? " + t.Then.String() + " : " + t.Else.String()
}

func (c CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Fn + "(" + strings.Join(args, ", ") + ")"
}

// Not negates a boolean expression.
func Not(x Expr) Expr { return Unary{Op: "!", X: x} }

// Eq builds strict equality (===). Both operands may themselves be boolean
// expressions, which the geometry rules use to compare two predicates.
func Eq(l, r Expr) Expr { return Binary{Op: "===", L: l, R: r} }

// Neq builds strict inequality (!==).
func Neq(l, r Expr) Expr { return Binary{Op: "!==", L: l, R: r} }

// Lt builds l < r.
func Lt(l, r Expr) Expr { return Binary{Op: "<", L: l, R: r} }

// Le builds l <= r.
func Le(l, r Expr) Expr { return Binary{Op: "<=", L: l, R: r} }

// Gt builds l > r.
func Gt(l, r Expr) Expr { return Binary{Op: ">", L: l, R: r} }

// Ge builds l >= r.
func Ge(l, r Expr) Expr { return Binary{Op: ">=", L: l, R: r} }

// And builds l && r.
func And(l, r Expr) Expr { return Binary{Op: "&&", L: l, R: r} }

// Or builds l || r.
func Or(l, r Expr) Expr { return Binary{Op: "||", L: l, R: r} }

// Add builds l + r.
func Add(l, r Expr) Expr { return Binary{Op: "+", L: l, R: r} }

// Div builds l / r.
func Div(l, r Expr) Expr { return Binary{Op: "/", L: l, R: r} }

// Mod builds the remainder operation l % r. Like the render-time language,
// the result keeps the sign of the dividend.
func Mod(l, r Expr) Expr { return Binary{Op: "%", L: l, R: r} }

// Cond builds test ? then : els.
func Cond(test, then, els Expr) Expr {
	return Ternary{Test: test, Then: then, Else: els}
}

// Call builds a function call.
func Call(fn string, args ...Expr) Expr {
	return CallExpr{Fn: fn, Args: args}
}
