package engine

import (
	"fmt"

	"github.com/vizir-org/vizir/expr"
)

// ============================================================================
// GEOMETRY RESOLVER — Label angle, baseline, and alignment
// ============================================================================
// The angle/baseline/align case analysis is encoded exactly once, as
// expression builders over abstract angle and orientation terms. The literal
// path instantiates the rule with constant leaves and evaluates it; the
// dynamic path instantiates it with raw fragments and renders it. The two
// paths cannot diverge because they share the one encoding of every
// comparison, modulo, and boundary.
// ============================================================================

// normalizedAngle wraps an angle term into the half-open range [0, 360).
// Negative angles wrap: ((a % 360) + 360) % 360.
func normalizedAngle(a expr.Expr) expr.Expr {
	return expr.Mod(
		expr.Add(expr.Mod(a, expr.Num(360)), expr.Num(360)),
		expr.Num(360),
	)
}

// normalizeAngle is the literal instantiation of normalizedAngle.
func normalizeAngle(a float64) float64 {
	return mustEvalRule(normalizedAngle(expr.Num(a))).(float64)
}

// isOrient builds the predicate "orientation equals side".
func isOrient(orient expr.Expr, side Orient) expr.Expr {
	return expr.Eq(orient, expr.Str(string(side)))
}

// baselineRule builds the label baseline decision for a channel.
// The angle term must already be normalized into [0, 360).
//
// x channel: angles in (45,135) or (225,315) read vertically → "middle".
// Otherwise the label sits on the side the text leans toward: the
// near-bottom bucket (≤45 or ≥315) agrees with a bottom orientation →
// "bottom", else "top".
//
// y channel: flat buckets (≤45, ≥315, or [135,225]) take no override —
// or "middle" when includeMiddle is set. Otherwise the upper bucket
// [45,135] agreeing with a left orientation → "top", else "bottom".
func baselineRule(ch Channel, includeMiddle bool, angle, orient expr.Expr) expr.Expr {
	if ch == ChannelX {
		midBucket := expr.Or(
			expr.And(expr.Gt(angle, expr.Num(45)), expr.Lt(angle, expr.Num(135))),
			expr.And(expr.Gt(angle, expr.Num(225)), expr.Lt(angle, expr.Num(315))),
		)
		nearBottom := expr.Or(
			expr.Le(angle, expr.Num(45)),
			expr.Ge(angle, expr.Num(315)),
		)
		return expr.Cond(midBucket,
			expr.Str("middle"),
			expr.Cond(expr.Eq(nearBottom, isOrient(orient, OrientBottom)),
				expr.Str("bottom"),
				expr.Str("top")))
	}

	flat := expr.Or(
		expr.Le(angle, expr.Num(45)),
		expr.Or(
			expr.Ge(angle, expr.Num(315)),
			expr.And(expr.Ge(angle, expr.Num(135)), expr.Le(angle, expr.Num(225))),
		),
	)
	upper := expr.And(expr.Ge(angle, expr.Num(45)), expr.Le(angle, expr.Num(135)))

	var onFlat expr.Expr = expr.Null()
	if includeMiddle {
		onFlat = expr.Str("middle")
	}
	return expr.Cond(flat,
		onFlat,
		expr.Cond(expr.Eq(upper, isOrient(orient, OrientLeft)),
			expr.Str("top"),
			expr.Str("bottom")))
}

// alignRule builds the label alignment decision. One rule shape serves both
// channels, parameterized by a start offset (0 for x, 90 for y) and the
// channel's main orientation (bottom for x, left for y).
//
// (angle + offset) mod 180 == 0 → the channel's neutral value (no override
// for x, "center" for y). Otherwise the forward half-turn
// [offset, offset+180) agreeing with the main orientation → "left",
// else "right". The angle term must already be normalized into [0, 360).
func alignRule(ch Channel, angle, orient expr.Expr) expr.Expr {
	var (
		offset  float64
		neutral expr.Expr
	)
	if ch == ChannelX {
		offset, neutral = 0, expr.Null()
	} else {
		offset, neutral = 90, expr.Str("center")
	}

	onAxis := expr.Eq(
		expr.Mod(expr.Add(angle, expr.Num(offset)), expr.Num(180)),
		expr.Num(0),
	)
	forward := expr.And(
		expr.Ge(angle, expr.Num(offset)),
		expr.Lt(angle, expr.Num(offset+180)),
	)
	return expr.Cond(onAxis,
		neutral,
		expr.Cond(expr.Eq(forward, isOrient(orient, mainOrient(ch))),
			expr.Str("left"),
			expr.Str("right")))
}

// ============================================================================
// PROPERTY RESOLVERS
// ============================================================================

// resolveLabelAngle resolves the canonical label angle for the axis.
// Explicit and config angles are normalized into [0, 360); the spec-less
// default is 270 for an x-channel ordinal or nominal field.
func resolveLabelAngle(ctx *Context) Resolved {
	if s := ctx.Spec.LabelAngle; s != nil {
		if s.Dynamic != nil {
			norm := normalizedAngle(expr.Frag(s.Dynamic.Expr))
			return Resolved{Dynamic: expr.Ref(norm), Explicit: true}
		}
		return Resolved{Literal: normalizeAngle(s.Literal), Explicit: true}
	}
	if c := ctx.Config.LabelAngle; c != nil {
		return LiteralOf(normalizeAngle(*c))
	}
	if ctx.Channel == ChannelX && ctx.fieldType().IsDiscrete() {
		return LiteralOf(float64(270))
	}
	return Unset
}

// resolveLabelBaseline derives the baseline from the already-resolved angle.
func resolveLabelBaseline(ctx *Context, angle Resolved) Resolved {
	if s := ctx.Spec.LabelBaseline; s != nil {
		return explicitString(s)
	}
	if c := ctx.Config.LabelBaseline; c != nil {
		return LiteralOf(*c)
	}
	if !angle.IsSet() {
		return Unset
	}

	angleTerm, angleLit := termOfAngle(angle)
	orientTerm, orientLit := termOfOrient(ctx)
	rule := baselineRule(ctx.Channel, ctx.IncludeMiddleBaseline, angleTerm, orientTerm)
	if angleLit && orientLit {
		return literalResult(mustEvalRule(rule))
	}
	return DynamicOf(expr.Ref(rule))
}

// resolveLabelAlign derives the alignment from the already-resolved angle.
func resolveLabelAlign(ctx *Context, angle Resolved) Resolved {
	if s := ctx.Spec.LabelAlign; s != nil {
		return explicitString(s)
	}
	if c := ctx.Config.LabelAlign; c != nil {
		return LiteralOf(*c)
	}
	if !angle.IsSet() {
		return Unset
	}

	angleTerm, angleLit := termOfAngle(angle)
	orientTerm, orientLit := termOfOrient(ctx)
	rule := alignRule(ctx.Channel, angleTerm, orientTerm)
	if angleLit && orientLit {
		return literalResult(mustEvalRule(rule))
	}
	return DynamicOf(expr.Ref(rule))
}

// ============================================================================
// TERM CONSTRUCTION
// ============================================================================

// termOfAngle converts a resolved angle into a rule term. The second result
// reports whether the term is a compile-time constant.
func termOfAngle(angle Resolved) (expr.Expr, bool) {
	if angle.Dynamic != nil {
		return expr.Frag(angle.Dynamic.Expr), false
	}
	return expr.Num(angle.Literal.(float64)), true
}

// termOfOrient converts the context orientation into a rule term.
func termOfOrient(ctx *Context) (expr.Expr, bool) {
	if ctx.Orient.Dynamic != nil {
		return expr.Frag(ctx.Orient.Dynamic.Expr), false
	}
	o := ctx.Orient.Literal
	if o == "" {
		o = DefaultOrient(ctx.Channel)
	}
	return expr.Str(string(o)), true
}

// mustEvalRule evaluates a constant-leaf rule. A failure means the rule
// builder produced an ill-typed expression, which is a programmer error.
func mustEvalRule(rule expr.Expr) any {
	v, err := expr.Evaluate(rule, nil)
	if err != nil {
		panic(fmt.Sprintf("engine: constant rule failed to evaluate: %v", err))
	}
	return v
}

// literalResult converts an evaluated rule value into a judgment.
// A null result means "no override".
func literalResult(v any) Resolved {
	if v == nil {
		return Unset
	}
	return LiteralOf(v)
}
