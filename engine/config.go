package engine

// ============================================================================
// STYLE CONFIG — Style-resolved axis defaults
// ============================================================================
// Global axis defaults are grouped into styles (a base style, per-channel
// styles, and named styles referenced by the axis spec). The chart-assembly
// stage builds one StyleConfig per compile pass and flattens the applicable
// styles into the single Config threaded through the resolution Context.
// There is no package-level state.
// ============================================================================

// Config holds style-resolved defaults for one axis. Nil fields mean the
// style says nothing about the property.
//
// Precedence inside the resolver: explicit axis spec > Config > heuristic.
type Config struct {
	Format        *string
	FormatType    *string
	Grid          *bool
	LabelAlign    *string
	LabelAngle    *float64
	LabelBaseline *string
	LabelFlush    *bool
	LabelOverlap  any
	Orient        *Orient
	TickCount     *float64
	Title         *string
	ZIndex        *int
}

// merge returns c with every set field of o applied on top.
func (c Config) merge(o Config) Config {
	if o.Format != nil {
		c.Format = o.Format
	}
	if o.FormatType != nil {
		c.FormatType = o.FormatType
	}
	if o.Grid != nil {
		c.Grid = o.Grid
	}
	if o.LabelAlign != nil {
		c.LabelAlign = o.LabelAlign
	}
	if o.LabelAngle != nil {
		c.LabelAngle = o.LabelAngle
	}
	if o.LabelBaseline != nil {
		c.LabelBaseline = o.LabelBaseline
	}
	if o.LabelFlush != nil {
		c.LabelFlush = o.LabelFlush
	}
	if o.LabelOverlap != nil {
		c.LabelOverlap = o.LabelOverlap
	}
	if o.Orient != nil {
		c.Orient = o.Orient
	}
	if o.TickCount != nil {
		c.TickCount = o.TickCount
	}
	if o.Title != nil {
		c.Title = o.Title
	}
	if o.ZIndex != nil {
		c.ZIndex = o.ZIndex
	}
	return c
}

// StyleConfig is the per-compile-pass collection of axis styles.
type StyleConfig struct {
	base    Config
	channel map[Channel]Config
	named   map[string]Config
}

// StyleOption configures a StyleConfig via functional options.
type StyleOption func(*StyleConfig)

// NewStyleConfig builds a StyleConfig from options. Call once per compile
// pass and thread the flattened result through each Context.
func NewStyleConfig(opts ...StyleOption) *StyleConfig {
	s := &StyleConfig{
		channel: make(map[Channel]Config),
		named:   make(map[string]Config),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithBaseStyle sets defaults that apply to every axis.
func WithBaseStyle(c Config) StyleOption {
	return func(s *StyleConfig) { s.base = c }
}

// WithChannelStyle sets defaults for all axes of one channel.
func WithChannelStyle(ch Channel, c Config) StyleOption {
	return func(s *StyleConfig) { s.channel[ch] = c }
}

// WithNamedStyle registers a named style an axis spec can reference.
func WithNamedStyle(name string, c Config) StyleOption {
	return func(s *StyleConfig) { s.named[name] = c }
}

// For flattens the applicable styles for one axis into a single Config:
// base, then the channel style, then each named style in order.
func (s *StyleConfig) For(ch Channel, styles ...string) Config {
	cfg := s.base
	cfg = cfg.merge(s.channel[ch])
	for _, name := range styles {
		if named, ok := s.named[name]; ok {
			cfg = cfg.merge(named)
		}
	}
	return cfg
}
