package engine

import (
	"testing"

	"github.com/vizir-org/vizir/expr"
	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// TITLE MERGE TESTS
// ============================================================================

func strPtr(s string) *string { return &s }

func titleContext(primary, secondary *schema.FieldDef) Context {
	return Context{
		Channel:   ChannelX,
		Field:     primary,
		Field2:    secondary,
		ScaleKind: ScaleLinear,
		Mark:      MarkBar,
		Size:      expr.ExprRef{Expr: "width"},
	}
}

func TestExplicitTitleVerbatim(t *testing.T) {
	ctx := titleContext(&schema.FieldDef{Field: "price", Type: schema.Quantitative}, nil)
	ctx.Spec.Title = &StringValue{Literal: "Revenue"}
	r := Resolve(ctx).Get(PropTitle)
	assertLiteral(t, r, "Revenue", "explicit title")
	if !r.Explicit {
		t.Error("explicit title not marked explicit")
	}
}

func TestExplicitTitleSuppression(t *testing.T) {
	// An explicit empty title suppresses; it must stay distinguishable from
	// "unresolved".
	ctx := titleContext(&schema.FieldDef{Field: "price", Type: schema.Quantitative}, nil)
	ctx.Spec.Title = &StringValue{Literal: ""}
	r := Resolve(ctx).Get(PropTitle)
	if !r.IsSet() || r.Literal != "" || !r.Explicit {
		t.Errorf("suppressed title = %+v, want explicit empty literal", r)
	}
}

func TestDynamicTitlePassThrough(t *testing.T) {
	ctx := titleContext(&schema.FieldDef{Field: "price", Type: schema.Quantitative}, nil)
	ctx.Spec.Title = &StringValue{Dynamic: expr.NewRef("titleParam")}
	r := Resolve(ctx).Get(PropTitle)
	if r.Dynamic == nil || r.Dynamic.Expr != "titleParam" {
		t.Errorf("dynamic title = %+v", r)
	}
}

func TestFieldTitleMerge(t *testing.T) {
	cases := []struct {
		name      string
		primary   *schema.FieldDef
		secondary *schema.FieldDef
		want      string
	}{
		{
			name:    "both titled and distinct",
			primary: &schema.FieldDef{Field: "start", Title: strPtr("Start")},
			secondary: &schema.FieldDef{
				Field: "end", Title: strPtr("End"),
			},
			want: "Start, End",
		},
		{
			name:      "both titled and equal",
			primary:   &schema.FieldDef{Field: "a", Title: strPtr("Duration")},
			secondary: &schema.FieldDef{Field: "b", Title: strPtr("Duration")},
			want:      "Duration",
		},
		{
			name:      "only primary titled",
			primary:   &schema.FieldDef{Field: "start", Title: strPtr("Start")},
			secondary: &schema.FieldDef{Field: "end"},
			want:      "Start",
		},
		{
			name:      "primary suppressed, secondary titled",
			primary:   &schema.FieldDef{Field: "start", Title: strPtr("")},
			secondary: &schema.FieldDef{Field: "end", Title: strPtr("End")},
			want:      "End",
		},
		{
			name:      "both suppressed",
			primary:   &schema.FieldDef{Field: "start", Title: strPtr("")},
			secondary: &schema.FieldDef{Field: "end", Title: strPtr("")},
			want:      "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Resolve(titleContext(c.primary, c.secondary)).Get(PropTitle)
			if !r.IsSet() {
				t.Fatalf("got unset, want %q", c.want)
			}
			if r.Literal != c.want {
				t.Errorf("got %v, want %q", r.Literal, c.want)
			}
		})
	}
}

func TestDescriptorFallback(t *testing.T) {
	cases := []struct {
		name      string
		primary   *schema.FieldDef
		secondary *schema.FieldDef
		want      string
	}{
		{
			name:    "plain field",
			primary: &schema.FieldDef{Field: "price", Type: schema.Quantitative},
			want:    "price",
		},
		{
			name: "aggregate",
			primary: &schema.FieldDef{
				Field: "price", Type: schema.Quantitative, Aggregate: schema.AggSum,
			},
			want: "Sum of price",
		},
		{
			name: "primary and secondary descriptors",
			primary: &schema.FieldDef{
				Field: "start", Type: schema.Temporal, TimeUnit: schema.UnitMonth,
			},
			secondary: &schema.FieldDef{Field: "end", Type: schema.Temporal},
			want:      "start (month), end",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Resolve(titleContext(c.primary, c.secondary)).Get(PropTitle)
			if r.Literal != c.want {
				t.Errorf("got %v, want %q", r.Literal, c.want)
			}
		})
	}
}

func TestConfigTitle(t *testing.T) {
	ctx := titleContext(&schema.FieldDef{Field: "price", Type: schema.Quantitative}, nil)
	ctx.Config.Title = strPtr("Styled Title")
	assertLiteral(t, Resolve(ctx).Get(PropTitle), "Styled Title", "config title")
}
