package render

import (
	"image/color"
	"math"
)

// Background is the color of dead cells.
var Background = color.RGBA{A: 255}

// Age thresholds for the cell palette.
const (
	ageYoung  = 5
	ageMature = 15
	ageOld    = 30
)

// AgeColor returns the display color of a cell with the given age at (x, y)
// on a w*h grid. Young cells are cyan, then green, then yellow; long-lived
// cells take a hue from their position.
func AgeColor(age uint8, x, y, w, h int) color.RGBA {
	switch {
	case age == 0:
		return Background
	case age < ageYoung:
		return color.RGBA{G: 255, B: 255, A: 255}
	case age < ageMature:
		return color.RGBA{G: 255, A: 255}
	case age < ageOld:
		return color.RGBA{R: 255, G: 255, A: 255}
	}
	span := w + h
	if span <= 0 {
		span = 1
	}
	hue := ((x + y) * 360 / span) % 360
	return HSV(float64(hue), 1, 1)
}

// HSV converts hue (degrees), saturation and value in [0,1] to RGBA.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 255,
	}
}

// fillAgeRGBA converts age cells of a w-wide grid into RGBA pixels in buf.
func fillAgeRGBA(buf []byte, cells []uint8, w int) {
	if w <= 0 {
		return
	}
	h := len(cells) / w
	for i, age := range cells {
		col := AgeColor(age, i%w, i/w, w, h)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
