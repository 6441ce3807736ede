package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/vizir-org/vizir/expr"
	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// VALUE MATERIALIZER TESTS
// ============================================================================

func valuesContext(t schema.FieldType, scale ScaleKind, values *ValuesValue) Context {
	return Context{
		Channel:   ChannelX,
		Field:     &schema.FieldDef{Field: "f", Type: t},
		ScaleKind: scale,
		Mark:      MarkBar,
		Size:      expr.ExprRef{Expr: "width"},
		Spec:      AxisSpec{Values: values},
	}
}

func TestValuesAbsent(t *testing.T) {
	r := Resolve(valuesContext(schema.Quantitative, ScaleLinear, nil)).Get(PropValues)
	assertUnset(t, r, "no explicit values")
}

func TestValuesDynamicPassThrough(t *testing.T) {
	ref := expr.NewRef("tickParam")
	r := Resolve(valuesContext(schema.Quantitative, ScaleLinear,
		&ValuesValue{Dynamic: ref})).Get(PropValues)
	if r.Dynamic != ref {
		t.Errorf("dynamic values = %+v, want pass-through of %v", r, ref)
	}
	if !r.Explicit {
		t.Error("dynamic values not marked explicit")
	}
}

func TestValuesQuantitative(t *testing.T) {
	r := Resolve(valuesContext(schema.Quantitative, ScaleLinear,
		&ValuesValue{Literal: []any{0, 2.5, "5", "not a number"}})).Get(PropValues)
	want := []any{float64(0), 2.5, float64(5)}
	if !reflect.DeepEqual(r.Literal, want) {
		t.Errorf("got %v, want %v", r.Literal, want)
	}
}

func TestValuesTemporal(t *testing.T) {
	r := Resolve(valuesContext(schema.Temporal, ScaleTime,
		&ValuesValue{Literal: []any{
			"2024-01-15",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			"never",
		}})).Get(PropValues)

	got, ok := r.Literal.([]any)
	if !ok {
		t.Fatalf("literal is %T", r.Literal)
	}
	// The unparseable entry is dropped, not failed on.
	if len(got) != 2 {
		t.Fatalf("got %d values, want 2: %v", len(got), got)
	}
	first, ok := got[0].(time.Time)
	if !ok || !first.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first value = %v", got[0])
	}
}

func TestValuesTemporalEpochMillis(t *testing.T) {
	millis := float64(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	r := Resolve(valuesContext(schema.Temporal, ScaleTime,
		&ValuesValue{Literal: []any{millis}})).Get(PropValues)
	got := r.Literal.([]any)
	if len(got) != 1 || !got[0].(time.Time).Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("epoch millis value = %v", got)
	}
}

func TestValuesNominalVerbatim(t *testing.T) {
	r := Resolve(valuesContext(schema.Nominal, ScaleBand,
		&ValuesValue{Literal: []any{"A", "B", 3}})).Get(PropValues)
	want := []any{"A", "B", float64(3)}
	if !reflect.DeepEqual(r.Literal, want) {
		t.Errorf("got %v, want %v", r.Literal, want)
	}
}
