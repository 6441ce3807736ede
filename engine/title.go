package engine

import (
	"strings"

	"github.com/vizir-org/vizir/schema"
)

// ============================================================================
// TITLE MERGE — Primary + secondary channel titles
// ============================================================================
// A positional channel may pair with a secondary channel marking a range
// endpoint (x with x2, y with y2). The axis title covers both: explicit
// titles win verbatim, the field definitions' own titles come next, and the
// structural descriptors are the last resort.
// ============================================================================

// resolveTitle resolves the axis title.
// An explicit empty title means "suppress" and is kept verbatim so the
// consumer can tell suppression apart from "unresolved".
func resolveTitle(ctx *Context) Resolved {
	if s := ctx.Spec.Title; s != nil {
		return explicitString(s)
	}
	if c := ctx.Config.Title; c != nil {
		return LiteralOf(*c)
	}

	// Field-level titles, when either side carries one. An explicit empty
	// title suppresses that side.
	if ctx.Field.HasTitle() || ctx.Field2.HasTitle() {
		return LiteralOf(mergeTitles(fieldTitle(ctx.Field), fieldTitle(ctx.Field2)))
	}

	// Structural descriptors for both channels.
	merged := mergeTitles(ctx.Field.Descriptor(), ctx.Field2.Descriptor())
	if merged == "" {
		return Unset
	}
	return LiteralOf(merged)
}

// fieldTitle returns a field's own title contribution: its explicit title
// when present (empty when suppressed), nothing otherwise.
func fieldTitle(f *schema.FieldDef) string {
	if f.HasTitle() {
		return *f.Title
	}
	return ""
}

// mergeTitles combines two title contributions. Distinct non-empty titles
// join "A, B" style; duplicates collapse.
func mergeTitles(a, b string) string {
	if a == b || b == "" {
		return a
	}
	if a == "" {
		return b
	}
	return strings.Join([]string{a, b}, ", ")
}
