package core

import "math"

// Contains reports whether c lies inside the grid.
func (s Size) Contains(c Cell) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Index returns the linear slice index for c in row-major order.
func (s Size) Index(c Cell) int { return c.Y*s.W + c.X }

// Wrap applies toroidal wrapping to integer coordinates.
func (s Size) Wrap(c Cell) Cell {
	c.X = (c.X%s.W + s.W) % s.W
	c.Y = (c.Y%s.H + s.H) % s.H
	return c
}

// WrapFloat folds v into [0, dim). The result is never negative.
func WrapFloat(v float64, dim int) float64 {
	d := float64(dim)
	v = math.Mod(v+d, d)
	if v < 0 {
		v += d
	}
	return v
}

// CellAt truncates a fractional position to the grid cell containing it.
func CellAt(x, y float64) Cell {
	return Cell{X: int(x), Y: int(y)}
}
