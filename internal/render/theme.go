package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	colBackground = colornames.Ivory
	colString     = colornames.Darkolivegreen
	colHighlight  = colornames.Crimson

	colPreviewString = colornames.Lightgray
	colPreviewGlyph  = colornames.Darkgray

	// bulbs cycle through this palette by id
	bulbPalette = []color.RGBA{
		colornames.Gold,
		colornames.Orangered,
		colornames.Limegreen,
		colornames.Deepskyblue,
		colornames.Hotpink,
		colornames.Mediumpurple,
	}
)

func bulbColor(id int) color.RGBA {
	if id < 0 {
		return colPreviewGlyph
	}
	return bulbPalette[id%len(bulbPalette)]
}

// fade returns c with its alpha scaled by k, premultiplied.
func fade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
