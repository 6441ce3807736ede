package engine

import (
	"github.com/vizir-org/vizir/expr"
	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// TICK & GRID HEURISTICS — Defaults when neither spec nor config decide
// ============================================================================

// resolveGrid defaults gridlines on for continuous, non-binned fields.
// Binning suppresses the grid unconditionally: bin boundaries and gridlines
// fight over the same pixels.
func resolveGrid(ctx *Context) Resolved {
	if s := ctx.Spec.Grid; s != nil {
		return explicitBool(s)
	}
	if c := ctx.Config.Grid; c != nil {
		return LiteralOf(*c)
	}
	return LiteralOf(!ctx.binned() && ctx.ScaleKind.IsContinuous())
}

// resolveGridScale names the opposite positional channel's scale so
// gridlines can span the plot area. Unset when that scale does not exist.
func resolveGridScale(ctx *Context) Resolved {
	if ctx.OppositeScaleName == "" {
		return Unset
	}
	return LiteralOf(ctx.OppositeScaleName)
}

// resolveTickCount sizes the tick count from the axis length at render
// time. Explicit tick values, discrete scales, and log scales all leave the
// count to the renderer (a log scale's tick filtering does its own work).
func resolveTickCount(ctx *Context) Resolved {
	if s := ctx.Spec.TickCount; s != nil {
		return explicitNum(s)
	}
	if c := ctx.Config.TickCount; c != nil {
		return LiteralOf(*c)
	}
	if ctx.Spec.Values != nil || ctx.ScaleKind.IsDiscrete() || ctx.ScaleKind.IsLog() {
		return Unset
	}
	if ctx.binned() {
		// Bins are dense; one tick per 10px keeps every boundary labeled.
		return DynamicOf(expr.Ref(tickCountExpr(ctx, 10)))
	}
	if ctx.Field != nil && ctx.Field.TimeUnit.IsCoarse() {
		return Unset
	}
	return DynamicOf(expr.Ref(tickCountExpr(ctx, 40)))
}

// tickCountExpr builds ceil(axis-length / step) over the size reference.
func tickCountExpr(ctx *Context, step float64) expr.Expr {
	return expr.Call("ceil", expr.Div(expr.Frag(ctx.Size.Expr), expr.Num(step)))
}

// resolveLabelOverlap picks an overlap-avoidance strategy. Nominal fields
// get none: hiding arbitrary category labels loses information. Log scales
// need greedy avoidance because their labels bunch at one end.
func resolveLabelOverlap(ctx *Context) Resolved {
	if s := ctx.Spec.LabelOverlap; s != nil {
		return explicitAny(s)
	}
	if c := ctx.Config.LabelOverlap; c != nil {
		return LiteralOf(c)
	}
	if ctx.fieldType() == schema.Nominal {
		return Unset
	}
	if ctx.ScaleKind.IsLog() {
		return LiteralOf("greedy")
	}
	return LiteralOf(true)
}

// resolveLabelFlush aligns the outermost labels flush with the axis ends
// for x-channel quantitative and temporal fields.
func resolveLabelFlush(ctx *Context) Resolved {
	if s := ctx.Spec.LabelFlush; s != nil {
		return explicitBool(s)
	}
	if c := ctx.Config.LabelFlush; c != nil {
		return LiteralOf(*c)
	}
	if ctx.Channel == ChannelX && ctx.fieldType().IsContinuous() {
		return LiteralOf(true)
	}
	return Unset
}

// resolveZIndex draws the axis above filled rectangle marks on discrete
// fields, which would otherwise cover the gridlines and ticks.
func resolveZIndex(ctx *Context) Resolved {
	if s := ctx.Spec.ZIndex; s != nil {
		if s.Dynamic != nil {
			return Resolved{Dynamic: s.Dynamic, Explicit: true}
		}
		return Resolved{Literal: int(s.Literal), Explicit: true}
	}
	if c := ctx.Config.ZIndex; c != nil {
		return LiteralOf(*c)
	}
	if ctx.Mark.IsFilledRect() && ctx.fieldType().IsDiscrete() {
		return LiteralOf(1)
	}
	return LiteralOf(0)
}

// resolveOrient takes the explicit override, then the context orientation,
// then the channel's conventional side.
func resolveOrient(ctx *Context) Resolved {
	if s := ctx.Spec.Orient; s != nil {
		if s.Dynamic != nil {
			return Resolved{Dynamic: s.Dynamic, Explicit: true}
		}
		return Resolved{Literal: s.Literal, Explicit: true}
	}
	if c := ctx.Config.Orient; c != nil {
		return LiteralOf(*c)
	}
	if ctx.Orient.Dynamic != nil {
		return DynamicOf(ctx.Orient.Dynamic)
	}
	if ctx.Orient.Literal != "" {
		return LiteralOf(ctx.Orient.Literal)
	}
	return LiteralOf(DefaultOrient(ctx.Channel))
}

// validFormatTypes is the closed set of recognized format-type values.
var validFormatTypes = map[string]bool{
	"number": true,
	"time":   true,
	"utc":    true,
}

// resolveFormat passes the explicit format through.
func resolveFormat(ctx *Context) Resolved {
	if s := ctx.Spec.Format; s != nil {
		return explicitString(s)
	}
	if c := ctx.Config.Format; c != nil {
		return LiteralOf(*c)
	}
	return Unset
}

// resolveFormatType passes a recognized format type through. Unrecognized
// values are dropped, not failed on: this engine merges configuration,
// it does not validate it.
func resolveFormatType(ctx *Context) Resolved {
	if s := ctx.Spec.FormatType; s != nil {
		if !validFormatTypes[*s] {
			return Unset
		}
		return Resolved{Literal: *s, Explicit: true}
	}
	if c := ctx.Config.FormatType; c != nil && validFormatTypes[*c] {
		return LiteralOf(*c)
	}
	return Unset
}
