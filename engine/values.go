package engine

import (
	"time"

	"github.com/vizir-org/vizir/helpers"
	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// VALUE MATERIALIZER — Explicit tick values
// ============================================================================
// An explicit literal list of tick values is mapped into the field's typed
// domain before it reaches the renderer: temporal fields get time.Time,
// quantitative fields get float64, discrete fields keep their raw category
// values. A dynamic reference passes through untouched, and an absent
// override stays unresolved (the renderer computes its own ticks).
// ============================================================================

// resolveValues resolves the explicit tick-value override.
func resolveValues(ctx *Context) Resolved {
	s := ctx.Spec.Values
	if s == nil {
		return Unset
	}
	if s.Dynamic != nil {
		return Resolved{Dynamic: s.Dynamic, Explicit: true}
	}
	return Resolved{
		Literal:  materializeValues(ctx.fieldType(), s.Literal),
		Explicit: true,
	}
}

// materializeValues converts raw literals into the field's typed domain.
// Unconvertible entries are dropped, not failed on.
func materializeValues(t schema.FieldType, raw []any) []any {
	out := make([]any, 0, len(raw))
	for _, v := range raw {
		switch t {
		case schema.Temporal:
			if d, ok := toTime(v); ok {
				out = append(out, d)
			}
		case schema.Quantitative:
			if n, ok := toNumber(v); ok {
				out = append(out, n)
			}
		default:
			// Ordinal and nominal domains keep raw category values;
			// numbers are widened for uniformity.
			if n, ok := v.(int); ok {
				out = append(out, float64(n))
			} else {
				out = append(out, v)
			}
		}
	}
	return out
}

// toTime interprets a raw tick value as a point in time.
// Numbers are epoch milliseconds, the renderer's temporal representation.
func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		return helpers.ParseDate(x)
	case float64:
		return time.UnixMilli(int64(x)).UTC(), true
	case int:
		return time.UnixMilli(int64(x)).UTC(), true
	}
	return time.Time{}, false
}

// toNumber interprets a raw tick value as a number.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		return helpers.ParseNumber(x)
	}
	return 0, false
}
