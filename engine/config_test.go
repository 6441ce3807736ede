package engine

import "testing"

// ============================================================================
// STYLE CONFIG TESTS — Flattening precedence
// ============================================================================

func boolPtr(b bool) *bool      { return &b }
func numPtr(f float64) *float64 { return &f }

func TestStyleFlattening(t *testing.T) {
	styles := NewStyleConfig(
		WithBaseStyle(Config{
			Grid:       boolPtr(true),
			LabelAngle: numPtr(0),
		}),
		WithChannelStyle(ChannelX, Config{
			LabelAngle: numPtr(315),
		}),
		WithNamedStyle("compact", Config{
			Grid: boolPtr(false),
		}),
	)

	// Base only.
	y := styles.For(ChannelY)
	if y.Grid == nil || *y.Grid != true {
		t.Errorf("y grid = %v, want base true", y.Grid)
	}
	if y.LabelAngle == nil || *y.LabelAngle != 0 {
		t.Errorf("y labelAngle = %v, want base 0", y.LabelAngle)
	}

	// Channel style overrides base.
	x := styles.For(ChannelX)
	if x.LabelAngle == nil || *x.LabelAngle != 315 {
		t.Errorf("x labelAngle = %v, want channel 315", x.LabelAngle)
	}
	if x.Grid == nil || *x.Grid != true {
		t.Errorf("x grid = %v, want base true", x.Grid)
	}

	// Named style overrides both.
	compact := styles.For(ChannelX, "compact")
	if compact.Grid == nil || *compact.Grid != false {
		t.Errorf("compact grid = %v, want named false", compact.Grid)
	}

	// Unknown style names are ignored.
	same := styles.For(ChannelX, "missing")
	if same.LabelAngle == nil || *same.LabelAngle != 315 {
		t.Errorf("unknown style changed the config: %+v", same)
	}
}

func TestConfigAngleNormalized(t *testing.T) {
	styles := NewStyleConfig(WithBaseStyle(Config{LabelAngle: numPtr(-45)}))
	ctx := quantContext(ChannelX)
	ctx.Config = styles.For(ChannelX)
	assertLiteral(t, Resolve(ctx).Get(PropLabelAngle), float64(315), "config angle wraps")
}
