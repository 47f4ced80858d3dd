package render

import "image/color"

// FillRGBA converts cell values into RGBA pixels in buf. A non-empty palette
// maps values by index; otherwise cells are treated as binary on/off.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA, on, off color.Color) {
	if len(buf) < 4*len(cells) {
		return
	}
	if len(palette) > 0 {
		fillPaletteRGBA(buf, cells, palette)
		return
	}
	fillBinaryRGBA(buf, cells, on, off)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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

// ColorAt resolves a single cell value the same way FillRGBA does.
func ColorAt(v uint8, palette []color.RGBA, on, off color.Color) color.RGBA {
	if len(palette) > 0 {
		idx := int(v)
		if idx >= len(palette) {
			idx = len(palette) - 1
		}
		return palette[idx]
	}
	src := off
	if v != 0 {
		src = on
	}
	r, g, b, a := src.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
