package render

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

// Layout maps the simulation surface onto a terminal
// Each cell holds two vertically stacked pixels drawn with a half block,
// which keeps pixels roughly square on common fonts
type Layout struct {
	Cols, Rows int

	// SceneRows is the number of rows used by the picture; the last row is the status bar
	SceneRows int

	// PixW, PixH is the half-block pixel grid covering the scene rows
	PixW, PixH int

	// X, Y, W, H is the letterboxed surface rectangle in pixels
	X, Y, W, H int
}

// ComputeLayout fits the surface into a terminal of cols by rows cells
func ComputeLayout(cols, rows int) Layout {
	l := Layout{Cols: cols, Rows: rows, SceneRows: max(rows-1, 0)}
	l.PixW = cols
	l.PixH = l.SceneRows * 2
	if l.PixW == 0 || l.PixH == 0 {
		return l
	}

	sw, sh := float64(parameter.SurfaceWidth), float64(parameter.SurfaceHeight)
	k := math.Min(float64(l.PixW)/sw, float64(l.PixH)/sh)
	l.W = max(int(math.Round(sw*k)), 1)
	l.H = max(int(math.Round(sh*k)), 1)
	l.X = (l.PixW - l.W) / 2
	l.Y = (l.PixH - l.H) / 2
	return l
}

// Inside reports whether pixel (px, py) falls on the surface
func (l Layout) Inside(px, py int) bool {
	return px >= l.X && px < l.X+l.W && py >= l.Y && py < l.Y+l.H
}

// ToSurface converts a cell to surface coordinates at the cell's center
// ok is false for the status bar and the letterbox margins
func (l Layout) ToSurface(col, row int) (x, y float64, ok bool) {
	if l.W == 0 || row < 0 || row >= l.SceneRows || col < 0 || col >= l.Cols {
		return 0, 0, false
	}
	px := float64(col) + 0.5
	py := float64(row*2) + 1
	x = (px - float64(l.X)) / float64(l.W) * parameter.SurfaceWidth
	y = (py - float64(l.Y)) / float64(l.H) * parameter.SurfaceHeight
	if x < 0 || x >= parameter.SurfaceWidth || y < 0 || y >= parameter.SurfaceHeight {
		return 0, 0, false
	}
	return x, y, true
}
