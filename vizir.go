// Package vizir resolves renderer-ready axis configuration for chart
// compilation.
//
// Usage:
//
//	import "github.com/vizir-org/vizir/engine"
//
//	component := engine.Resolve(engine.Context{
//	    Channel:   engine.ChannelX,
//	    Field:     &schema.FieldDef{Field: "month", Type: schema.Nominal},
//	    ScaleKind: engine.ScaleBand,
//	    Mark:      engine.MarkBar,
//	    Size:      expr.ExprRef{Expr: "width"},
//	    Config:    styles.For(engine.ChannelX),
//	    Spec:      axisSpec,
//	})
//
// The engine takes a partial axis spec (user overrides, literal or dynamic)
// plus a resolution context (field metadata, scale kind, mark kind,
// orientation, style config) and returns a resolved component with one
// judgment per axis property: a literal, a render-time expression, or unset.
//
// Parsing chart specs, building scales, and rendering are handled by the
// surrounding compiler. The engine never evaluates a dynamic reference it is
// given — it forwards it or recompiles it into an equivalent expression.
package vizir
