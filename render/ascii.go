package render

// ASCIIRenderer outputs a character-grid rendering for terminal output
type ASCIIRenderer struct{}

// Name returns the name of the renderer
func (r *ASCIIRenderer) Name() string {
	return "ASCII Renderer"
}

// nodeSymbols rotate per type so clusters are visually distinguishable
var nodeSymbols = []rune{'O', '@', '#', 'X', '*', '+'}

// Render creates an ASCII representation of the frame
func (r *ASCIIRenderer) Render(frame *Frame, options *Options) ([]byte, error) {
	// Scale down to terminal cells; character cells are roughly twice as
	// tall as they are wide.
	width := max(int(options.Width/10), 40)
	height := max(int(options.Height/20), 20)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for i := 0; i < width; i++ {
		grid[0][i] = '-'
		grid[height-1][i] = '-'
	}
	for i := 0; i < height; i++ {
		grid[i][0] = '|'
		grid[i][width-1] = '|'
	}
	grid[0][0], grid[0][width-1] = '+', '+'
	grid[height-1][0], grid[height-1][width-1] = '+', '+'

	toCell := func(x, y float64) (int, int) {
		cx := int(x*float64(width-2)/options.Width) + 1
		cy := int(y*float64(height-2)/options.Height) + 1
		return clamp(cx, 1, width-2), clamp(cy, 1, height-2)
	}

	for _, edge := range frame.Edges {
		source, okS := frame.Positions[edge.Source]
		target, okT := frame.Positions[edge.Target]
		if !okS || !okT {
			continue
		}
		x1, y1 := toCell(source.X, source.Y)
		x2, y2 := toCell(target.X, target.Y)
		symbol := '.'
		if frame.Highlighted[edge.ID] {
			symbol = '='
		}
		drawLine(grid, x1, y1, x2, y2, symbol)
	}

	typeSymbol := make(map[string]rune, len(frame.Types))
	for i, t := range frame.Types {
		typeSymbol[t] = nodeSymbols[i%len(nodeSymbols)]
	}

	for _, node := range frame.Nodes {
		pos, ok := frame.Positions[node.ID]
		if !ok {
			continue
		}
		x, y := toCell(pos.X, pos.Y)
		symbol, ok := typeSymbol[node.Type]
		if !ok {
			symbol = 'o'
		}
		if node.ID == frame.Selected {
			symbol = '%'
		}
		grid[y][x] = symbol
	}

	out := make([]byte, 0, height*(width+1))
	for _, row := range grid {
		out = append(out, []byte(string(row))...)
		out = append(out, '\n')
	}
	return out, nil
}

// drawLine plots a Bresenham line of the given symbol, leaving existing
// non-space cells (borders, nodes) intact
func drawLine(grid [][]rune, x1, y1, x2, y2 int, symbol rune) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if grid[y1][x1] == ' ' {
			grid[y1][x1] = symbol
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
