package schema

import "strings"

// ============================================================================
// FIELD & DATUM DEFINITIONS — Channel data bindings
// ============================================================================
// Describes what a positional channel encodes: the field name, its semantic
// type, and any binning / time-unit / aggregate transformation. The axis
// engine reads these for its heuristics and title fallbacks; it never reads
// data rows.
// ============================================================================

// FieldType is the semantic type of an encoded field.
type FieldType string

const (
	Quantitative FieldType = "quantitative"
	Ordinal      FieldType = "ordinal"
	Nominal      FieldType = "nominal"
	Temporal     FieldType = "temporal"
)

// IsDiscrete reports whether the type carries discrete values.
func (t FieldType) IsDiscrete() bool {
	return t == Ordinal || t == Nominal
}

// IsContinuous reports whether the type carries continuous values.
func (t FieldType) IsContinuous() bool {
	return t == Quantitative || t == Temporal
}

// TimeUnit is the granularity a temporal field has been truncated to.
// Empty means no truncation.
type TimeUnit string

const (
	UnitYear    TimeUnit = "year"
	UnitQuarter TimeUnit = "quarter"
	UnitMonth   TimeUnit = "month"
	UnitWeek    TimeUnit = "week"
	UnitDate    TimeUnit = "date"
	UnitDay     TimeUnit = "day"
	UnitHours   TimeUnit = "hours"
	UnitMinutes TimeUnit = "minutes"
	UnitSeconds TimeUnit = "seconds"
)

// IsCoarse reports whether the granularity produces few enough ticks that
// the renderer should pick its own tick count.
func (u TimeUnit) IsCoarse() bool {
	switch u {
	case UnitMonth, UnitHours, UnitDay, UnitQuarter:
		return true
	}
	return false
}

// Aggregate is the aggregation applied to a field before encoding.
// Empty means no aggregation.
type Aggregate string

const (
	AggSum    Aggregate = "sum"
	AggMean   Aggregate = "mean"
	AggMedian Aggregate = "median"
	AggMin    Aggregate = "min"
	AggMax    Aggregate = "max"
	AggCount  Aggregate = "count"
)

// FieldDef describes a channel's field binding.
type FieldDef struct {
	Field     string    `json:"field"`
	Type      FieldType `json:"type"`
	Bin       bool      `json:"bin,omitempty"`
	TimeUnit  TimeUnit  `json:"timeUnit,omitempty"`
	Aggregate Aggregate `json:"aggregate,omitempty"`

	// Title overrides the generated descriptor. Nil means absent; a non-nil
	// empty string means the title is explicitly suppressed.
	Title *string `json:"title,omitempty"`
}

// HasTitle reports whether a title was set, including an explicit suppression.
func (f *FieldDef) HasTitle() bool {
	return f != nil && f.Title != nil
}

// TitleSuppressed reports whether the title was explicitly suppressed.
func (f *FieldDef) TitleSuppressed() bool {
	return f != nil && f.Title != nil && *f.Title == ""
}

// Descriptor returns the structural fallback title: the field name plus any
// binning, time-unit, or aggregate qualifier.
//
//	price                 → "price"
//	bin price             → "price (binned)"
//	month(date)           → "date (month)"
//	sum(price)            → "Sum of price"
//	count()               → "Count of Records"
func (f *FieldDef) Descriptor() string {
	if f == nil {
		return ""
	}
	if f.Aggregate == AggCount {
		return "Count of Records"
	}

	name := f.Field
	if f.Bin {
		name += " (binned)"
	} else if f.TimeUnit != "" {
		name += " (" + string(f.TimeUnit) + ")"
	}

	if f.Aggregate != "" {
		return capitalize(string(f.Aggregate)) + " of " + name
	}
	return name
}

// DatumDef describes a channel bound to a constant datum instead of a field.
// A datum contributes no title and no discrete domain.
type DatumDef struct {
	Datum any `json:"datum"`
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
