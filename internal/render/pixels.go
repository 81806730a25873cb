package render

import (
	"image/color"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

// Palette indices written by Rasterize.
const (
	CellEmpty uint8 = iota
	CellFood
	CellBody
	CellHead
	CellHeadDead
)

// Palette maps cell indices to colors.
var Palette = []color.RGBA{
	CellEmpty:    {R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
	CellFood:     {R: 0xff, G: 0xcc, B: 0x00, A: 0xff},
	CellBody:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	CellHead:     {R: 0x00, G: 0x7a, B: 0xcc, A: 0xff},
	CellHeadDead: {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// Rasterize writes one palette index per grid cell into dst, which must hold
// grid.W*grid.H entries. Later layers win: background, food, body, head.
func Rasterize(dst []uint8, grid core.Size, view snake.View, food core.Cell) {
	if len(dst) != grid.W*grid.H {
		return
	}
	for i := range dst {
		dst[i] = CellEmpty
	}
	set := func(c core.Cell, v uint8) {
		if grid.Contains(c) {
			dst[grid.Index(c)] = v
		}
	}
	set(food, CellFood)
	for _, c := range view.Body {
		set(c, CellBody)
	}
	if view.Alive {
		set(view.Head, CellHead)
	} else {
		set(view.Head, CellHeadDead)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// RGBA renders cells into a freshly allocated RGBA byte slice.
func RGBA(cells []uint8, palette []color.RGBA) []byte {
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	return buf
}
