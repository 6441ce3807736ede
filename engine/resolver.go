package engine

import "fmt"

// ============================================================================
// RESOLVER — Per-property dispatch
// ============================================================================
// Entry point: Resolve(ctx)
//
// One resolver per axis property, each a pure function of the context.
// Precedence is uniform: explicit spec value (verbatim, including explicit
// falsy values) > style config > heuristic default > unset. The only
// cross-property dependency is that labelAlign, labelBaseline consume the
// already-resolved label angle — the angle is computed once per axis.
// ============================================================================

// Resolve resolves every axis property for one axis and returns the
// assembled component. Pure: the context is never mutated, and identical
// contexts resolve to structurally identical components.
//
// A context with neither a field nor a datum definition is a programmer
// error and panics.
func Resolve(ctx Context) *AxisComponent {
	assertContext(&ctx)

	angle := resolveLabelAngle(&ctx)
	props := make(map[Property]Resolved, len(Properties()))
	for _, p := range Properties() {
		props[p] = resolveProperty(&ctx, p, angle)
	}
	return &AxisComponent{props: props}
}

// ResolveProperty resolves a single property against the context.
// The canonical label angle is computed internally; callers resolving a
// whole axis should use Resolve, which computes it once.
func ResolveProperty(ctx Context, p Property) Resolved {
	assertContext(&ctx)
	return resolveProperty(&ctx, p, resolveLabelAngle(&ctx))
}

// resolveProperty dispatches to the property's resolver. The switch is
// exhaustive over the closed Property set.
func resolveProperty(ctx *Context, p Property, angle Resolved) Resolved {
	switch p {
	case PropFormat:
		return resolveFormat(ctx)
	case PropFormatType:
		return resolveFormatType(ctx)
	case PropGrid:
		return resolveGrid(ctx)
	case PropGridScale:
		return resolveGridScale(ctx)
	case PropLabelAlign:
		return resolveLabelAlign(ctx, angle)
	case PropLabelAngle:
		return angle
	case PropLabelBaseline:
		return resolveLabelBaseline(ctx, angle)
	case PropLabelFlush:
		return resolveLabelFlush(ctx)
	case PropLabelOverlap:
		return resolveLabelOverlap(ctx)
	case PropOrient:
		return resolveOrient(ctx)
	case PropTickCount:
		return resolveTickCount(ctx)
	case PropTitle:
		return resolveTitle(ctx)
	case PropValues:
		return resolveValues(ctx)
	case PropZIndex:
		return resolveZIndex(ctx)
	default:
		panic(fmt.Sprintf("engine: unknown axis property %q", p))
	}
}

// assertContext checks the programmer-error invariants of a context.
func assertContext(ctx *Context) {
	if ctx.Field == nil && ctx.Datum == nil {
		panic(fmt.Sprintf("engine: axis resolution for channel %q requires a field or datum definition", ctx.Channel))
	}
	if ctx.Field != nil && ctx.Datum != nil {
		panic(fmt.Sprintf("engine: channel %q has both a field and a datum definition", ctx.Channel))
	}
}

// ============================================================================
// EXPLICIT OVERRIDES — verbatim pass-through
// ============================================================================

func explicitBool(v *BoolValue) Resolved {
	if v.Dynamic != nil {
		return Resolved{Dynamic: v.Dynamic, Explicit: true}
	}
	return Resolved{Literal: v.Literal, Explicit: true}
}

func explicitNum(v *NumValue) Resolved {
	if v.Dynamic != nil {
		return Resolved{Dynamic: v.Dynamic, Explicit: true}
	}
	return Resolved{Literal: v.Literal, Explicit: true}
}

func explicitString(v *StringValue) Resolved {
	if v.Dynamic != nil {
		return Resolved{Dynamic: v.Dynamic, Explicit: true}
	}
	return Resolved{Literal: v.Literal, Explicit: true}
}

func explicitAny(v *AnyValue) Resolved {
	if v.Dynamic != nil {
		return Resolved{Dynamic: v.Dynamic, Explicit: true}
	}
	return Resolved{Literal: v.Literal, Explicit: true}
}
