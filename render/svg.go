package render

import (
	"bytes"
	"fmt"
	"math"
)

// SVGRenderer outputs SVG format
type SVGRenderer struct{}

// Name returns the name of the renderer
func (r *SVGRenderer) Name() string {
	return "SVG Renderer"
}

// Render creates an SVG representation of the frame
func (r *SVGRenderer) Render(frame *Frame, options *Options) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%f" height="%f" viewBox="0 0 %f %f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, options.Width, options.Height, options.Width, options.Height, options.Background))

	// Draw edges beneath nodes
	for _, edge := range frame.Edges {
		source, okS := frame.Positions[edge.Source]
		target, okT := frame.Positions[edge.Target]
		if !okS || !okT {
			continue
		}

		edgeColor := "#666666"
		strokeWidth := options.EdgeWidth
		if edge.Weight > 0 {
			// Weight affects rendered thickness only
			strokeWidth = math.Max(0.5, edge.Weight*options.EdgeWidth*0.5)
		}
		if frame.Highlighted[edge.ID] {
			edgeColor = "#FF5722"
			strokeWidth += 1
		}

		buf.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="%s" stroke-width="%f" />
`, source.X, source.Y, target.X, target.Y, edgeColor, strokeWidth))

		if edge.Label != "" {
			midX := (source.X + target.X) / 2
			midY := (source.Y + target.Y) / 2
			buf.WriteString(fmt.Sprintf(`<text x="%f" y="%f" font-family="sans-serif" font-size="%f" fill="%s" text-anchor="middle">%s</text>
`, midX, midY, options.FontSize, edgeColor, edge.Label))
		}
	}

	// Draw nodes
	for _, node := range frame.Nodes {
		pos, ok := frame.Positions[node.ID]
		if !ok {
			continue
		}

		stroke := "rgba(0,0,0,0.3)"
		strokeWidth := 0.5
		if node.ID == frame.Selected {
			stroke = "#FF5722"
			strokeWidth = 2.0
		}

		buf.WriteString(fmt.Sprintf(`<circle cx="%f" cy="%f" r="%f" fill="%s" stroke="%s" stroke-width="%f" />
`, pos.X, pos.Y, options.NodeSize, options.Palette.Color(node.Type), stroke, strokeWidth))

		if options.ShowLabels && node.Label != "" {
			labelY := pos.Y + options.NodeSize + options.FontSize + 2
			buf.WriteString(fmt.Sprintf(`<text x="%f" y="%f" font-family="sans-serif" font-size="%f" fill="#333333" text-anchor="middle">%s</text>
`, pos.X, labelY, options.FontSize, node.Label))
		}
	}

	// Legend from the unfiltered type list
	for i, t := range frame.Types {
		y := 20.0 + float64(i)*16
		buf.WriteString(fmt.Sprintf(`<circle cx="12" cy="%f" r="5" fill="%s" />
<text x="22" y="%f" font-family="sans-serif" font-size="%f" fill="#333333">%s</text>
`, y, options.Palette.Color(t), y+3, options.FontSize, t))
	}

	buf.WriteString(`</svg>`)
	return buf.Bytes(), nil
}
