package render

// Palette maps a node type to its color render hint. The physics core
// never owns this mapping; hosts supply one from configuration or fall
// back to the deterministic default assignment.
type Palette map[string]string

// defaultColors is the rotation used when a type has no configured color
var defaultColors = []string{
	"#4285F4", // blue
	"#EA4335", // red
	"#FBBC05", // yellow
	"#34A853", // green
	"#9C27B0", // purple
	"#FF7043", // orange
	"#00ACC1", // cyan
	"#8D6E63", // brown
}

// NewPalette assigns default colors to the given types in order,
// overlaid with any configured overrides. Types come from the unfiltered
// graph so legend colors stay stable while filters change.
func NewPalette(types []string, overrides map[string]string) Palette {
	p := make(Palette, len(types))
	for i, t := range types {
		p[t] = defaultColors[i%len(defaultColors)]
	}
	for t, c := range overrides {
		p[t] = c
	}
	return p
}

// Color returns the render hint for a type
func (p Palette) Color(nodeType string) string {
	if c, ok := p[nodeType]; ok {
		return c
	}
	return "#808080"
}
