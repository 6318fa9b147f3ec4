package grid

import "strings"

// Render symbols beyond the input alphabet.
const (
	SymbolVisited = 'X'
	SymbolLoop    = 'O'
)

// Painter turns one cell symbol into its printed form, e.g. by adding
// terminal colour. A nil Painter prints the symbol as-is.
type Painter func(symbol rune) string

// Render draws g row by row. Precedence per cell: obstruction, guard start,
// loop candidate, visited, floor. A derived grid's extra point renders as an
// obstruction.
// Complexity: O(W×H).
func Render(g *Grid, start Position, visited, loops map[Point]struct{}, paint Painter) []string {
	out := make([]string, 0, g.Height())
	var b strings.Builder
	for i := range g.Width() * g.Height() {
		p := g.Coordinate(i)
		sym := SymbolFloor
		switch {
		case g.IsObstruction(p):
			sym = SymbolObstruction
		case p == start.Point:
			sym = SymbolStart
		case has(loops, p):
			sym = SymbolLoop
		case has(visited, p):
			sym = SymbolVisited
		}
		if paint != nil {
			b.WriteString(paint(sym))
		} else {
			b.WriteRune(sym)
		}
		if p.X == g.Width()-1 {
			out = append(out, b.String())
			b.Reset()
		}
	}

	return out
}

func has(set map[Point]struct{}, p Point) bool {
	_, ok := set[p]
	return ok
}
