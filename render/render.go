// Package render turns per-frame engine output into drawable artifacts.
// The engine owns positions; everything visual (colors, sizes, symbols)
// lives here or in host configuration.
package render

import (
	"fmt"
	"strings"

	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
)

// Frame is the renderer-facing output contract for one animation frame:
// the active nodes with their computed positions, the active edges, and
// the current highlight state.
type Frame struct {
	Nodes       []models.Node               `json:"nodes"`
	Edges       []models.Edge               `json:"edges"`
	Positions   map[string]physics.Position `json:"positions"`
	Types       []string                    `json:"types"` // legend: distinct types of the unfiltered graph
	Selected    string                      `json:"selected,omitempty"`
	Highlighted map[string]bool             `json:"highlighted,omitempty"` // edge IDs incident to the selection
}

// Snapshot assembles a frame from the engine and the active view
func Snapshot(engine *physics.Engine, view models.View) *Frame {
	return &Frame{
		Nodes:       view.Nodes,
		Edges:       engine.ActiveEdges(),
		Positions:   engine.Positions(),
		Types:       view.Types,
		Selected:    engine.Selected(),
		Highlighted: engine.HighlightedEdges(),
	}
}

// Options defines rendering configuration
type Options struct {
	Width      float64 // canvas width
	Height     float64 // canvas height
	Background string  // background color
	NodeSize   float64 // node radius
	EdgeWidth  float64 // base edge stroke width
	FontSize   float64 // label font size
	ShowLabels bool    // draw node labels
	Palette    Palette // type -> color render hints
}

// NewDefaultOptions creates a default set of render options
func NewDefaultOptions() *Options {
	return &Options{
		Width:      800,
		Height:     600,
		Background: "#f8f8f8",
		NodeSize:   12.0,
		EdgeWidth:  1.0,
		FontSize:   10.0,
		ShowLabels: true,
		Palette:    Palette{},
	}
}

// Renderer is implemented by all rendering backends
type Renderer interface {
	// Render draws one frame using the provided options
	Render(frame *Frame, options *Options) ([]byte, error)

	// Name returns the name of the renderer
	Name() string
}

// GetRenderer returns the appropriate renderer for a format
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "ascii":
		return &ASCIIRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
