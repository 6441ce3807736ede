package engine

import (
	"github.com/vizir-org/vizir/expr"
	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// AXIS RESOLUTION TYPES
// ============================================================================
// AxisSpec carries the user's partial overrides, Context carries everything
// the chart-assembly stage knows about the axis, and AxisComponent is the
// resolved output: one judgment per property — a literal, a render-time
// expression, or unset (defer to the renderer's own default).
// ============================================================================

// Channel is the positional encoding role an axis belongs to.
type Channel string

const (
	ChannelX Channel = "x"
	ChannelY Channel = "y"
)

// Opposite returns the other positional channel.
func (c Channel) Opposite() Channel {
	if c == ChannelX {
		return ChannelY
	}
	return ChannelX
}

// Orient is the side of the plot area an axis is drawn on.
// x axes are top or bottom; y axes are left or right.
type Orient string

const (
	OrientTop    Orient = "top"
	OrientBottom Orient = "bottom"
	OrientLeft   Orient = "left"
	OrientRight  Orient = "right"
)

// DefaultOrient returns the conventional side for a channel.
func DefaultOrient(c Channel) Orient {
	if c == ChannelX {
		return OrientBottom
	}
	return OrientLeft
}

// mainOrient is the orientation the geometry rules compare against.
func mainOrient(c Channel) Orient {
	if c == ChannelX {
		return OrientBottom
	}
	return OrientLeft
}

// ScaleKind is the domain-to-range mapping family of the axis scale.
type ScaleKind string

const (
	ScaleLinear  ScaleKind = "linear"
	ScaleLog     ScaleKind = "log"
	ScaleSqrt    ScaleKind = "sqrt"
	ScalePow     ScaleKind = "pow"
	ScaleTime    ScaleKind = "time"
	ScaleUTC     ScaleKind = "utc"
	ScalePoint   ScaleKind = "point"
	ScaleBand    ScaleKind = "band"
	ScaleOrdinal ScaleKind = "ordinal"
)

// IsDiscrete reports whether the scale maps a discrete domain.
func (s ScaleKind) IsDiscrete() bool {
	switch s {
	case ScalePoint, ScaleBand, ScaleOrdinal:
		return true
	}
	return false
}

// IsContinuous reports whether the scale maps a continuous domain.
func (s ScaleKind) IsContinuous() bool {
	return s != "" && !s.IsDiscrete()
}

// IsLog reports whether the scale is logarithmic.
func (s ScaleKind) IsLog() bool {
	return s == ScaleLog
}

// MarkKind is the mark type the axis guides.
type MarkKind string

const (
	MarkBar   MarkKind = "bar"
	MarkLine  MarkKind = "line"
	MarkArea  MarkKind = "area"
	MarkPoint MarkKind = "point"
	MarkRect  MarkKind = "rect"
	MarkTick  MarkKind = "tick"
	MarkRule  MarkKind = "rule"
)

// IsFilledRect reports whether the mark fills a full rectangle per datum.
func (m MarkKind) IsFilledRect() bool {
	return m == MarkRect
}

// ============================================================================
// PROPERTY ENUM
// ============================================================================

// Property identifies one resolvable axis property.
// The set is closed: the dispatcher switches exhaustively over it.
type Property string

const (
	PropFormat        Property = "format"
	PropFormatType    Property = "formatType"
	PropGrid          Property = "grid"
	PropGridScale     Property = "gridScale"
	PropLabelAlign    Property = "labelAlign"
	PropLabelAngle    Property = "labelAngle"
	PropLabelBaseline Property = "labelBaseline"
	PropLabelFlush    Property = "labelFlush"
	PropLabelOverlap  Property = "labelOverlap"
	PropOrient        Property = "orient"
	PropTickCount     Property = "tickCount"
	PropTitle         Property = "title"
	PropValues        Property = "values"
	PropZIndex        Property = "zindex"
)

// Properties returns all resolvable properties in stable order.
func Properties() []Property {
	return []Property{
		PropFormat,
		PropFormatType,
		PropGrid,
		PropGridScale,
		PropLabelAlign,
		PropLabelAngle,
		PropLabelBaseline,
		PropLabelFlush,
		PropLabelOverlap,
		PropOrient,
		PropTickCount,
		PropTitle,
		PropValues,
		PropZIndex,
	}
}

// ============================================================================
// OVERRIDE CARRIERS — literal or dynamic, presence via pointer
// ============================================================================

// BoolValue is a boolean override: a literal or a dynamic reference.
type BoolValue struct {
	Literal bool
	Dynamic *expr.ExprRef
}

// NumValue is a numeric override: a literal or a dynamic reference.
type NumValue struct {
	Literal float64
	Dynamic *expr.ExprRef
}

// StringValue is a string override: a literal or a dynamic reference.
// An empty literal is meaningful where falsy means "disable" (title).
type StringValue struct {
	Literal string
	Dynamic *expr.ExprRef
}

// AnyValue is an untyped override for properties with mixed-type domains
// (labelOverlap: true, false, or a strategy name).
type AnyValue struct {
	Literal any
	Dynamic *expr.ExprRef
}

// ValuesValue is an explicit tick-value override: a literal list or a
// dynamic reference.
type ValuesValue struct {
	Literal []any
	Dynamic *expr.ExprRef
}

// OrientValue is an orientation that is either known at compile time or
// deferred to render time.
type OrientValue struct {
	Literal Orient
	Dynamic *expr.ExprRef
}

// IsSet reports whether an orientation was provided at all.
func (o OrientValue) IsSet() bool {
	return o.Literal != "" || o.Dynamic != nil
}

// AxisSpec is the user's partial axis specification. Nil fields mean "no
// override"; a non-nil field wins over every heuristic, verbatim.
type AxisSpec struct {
	Format        *StringValue
	FormatType    *string
	Grid          *BoolValue
	LabelAlign    *StringValue
	LabelAngle    *NumValue
	LabelBaseline *StringValue
	LabelFlush    *BoolValue
	LabelOverlap  *AnyValue
	Orient        *OrientValue
	TickCount     *NumValue
	Title         *StringValue
	Values        *ValuesValue
	ZIndex        *NumValue
}

// ============================================================================
// RESOLVED OUTPUT
// ============================================================================

// Resolved is the judgment for one axis property.
// Exactly one of three states holds: a compile-time literal, a render-time
// expression, or unset.
type Resolved struct {
	// Literal is the compile-time value, nil when not literally resolved.
	Literal any
	// Dynamic is the render-time expression, nil when not deferred.
	Dynamic *expr.ExprRef
	// Explicit marks values taken verbatim from the axis spec.
	Explicit bool
}

// Unset is the "no override, renderer default applies" judgment.
var Unset = Resolved{}

// IsSet reports whether the property resolved to anything at all.
func (r Resolved) IsSet() bool {
	return r.Literal != nil || r.Dynamic != nil
}

// LiteralOf wraps a compile-time value.
func LiteralOf(v any) Resolved { return Resolved{Literal: v} }

// DynamicOf wraps a render-time expression reference.
func DynamicOf(ref *expr.ExprRef) Resolved { return Resolved{Dynamic: ref} }

// AxisComponent is the resolved axis: one judgment per property.
// Immutable once built.
type AxisComponent struct {
	props map[Property]Resolved
}

// Get returns the judgment for a property.
func (c *AxisComponent) Get(p Property) Resolved {
	return c.props[p]
}

// ============================================================================
// RESOLUTION CONTEXT
// ============================================================================

// Context is everything the chart-assembly stage supplies for one axis.
// Resolution is a pure function of (Context.Spec, the rest of Context).
type Context struct {
	// Channel identifies the axis (x or y).
	Channel Channel

	// Field is the primary field definition. Exactly one of Field or Datum
	// must be set; resolution panics otherwise (programmer error).
	Field *schema.FieldDef

	// Field2 is the paired secondary field definition (the range endpoint
	// channel, x2/y2), consulted only for title merging. Optional.
	Field2 *schema.FieldDef

	// Datum is set instead of Field when the channel is bound to a constant.
	Datum *schema.DatumDef

	// ScaleKind is the mapping family of this axis's scale.
	ScaleKind ScaleKind

	// ScaleName names this axis's scale in the chart IR.
	ScaleName string

	// OppositeScaleName names the other positional channel's scale.
	// Empty when that scale does not exist (no cross-axis gridlines).
	OppositeScaleName string

	// Mark is the mark kind the axis guides.
	Mark MarkKind

	// Orient is the axis orientation, literal or dynamic. When unset the
	// channel's conventional side applies.
	Orient OrientValue

	// Size references the axis length at render time (tick-count sizing).
	Size expr.ExprRef

	// Config holds the style-resolved axis defaults for this axis,
	// flattened once per compile pass. See StyleConfig.For.
	Config Config

	// IncludeMiddleBaseline selects "middle" instead of no override on the
	// flat-angle buckets of the y-channel baseline rule.
	IncludeMiddleBaseline bool

	// Spec carries the user's partial overrides.
	Spec AxisSpec
}

// fieldType returns the semantic type, or "" for a datum binding.
func (ctx *Context) fieldType() schema.FieldType {
	if ctx.Field == nil {
		return ""
	}
	return ctx.Field.Type
}

// binned reports whether the primary field is binned.
func (ctx *Context) binned() bool {
	return ctx.Field != nil && ctx.Field.Bin
}
