package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawStroked draws one line of text with the double-stroke technique that
// keeps text legible over arbitrary backgrounds. (x, y) is the top-left of
// the line, not the baseline.
//
// Pass 1 strokes the glyphs in outline (thick, dark ring), pass 2 re-strokes
// them in fill (thinner, bolding the glyph body inside the ring). The order
// matters: swapping the passes would bury the bolding under the border.
// outlineW == 0 skips pass 1; inlineW == 0 degrades pass 2 to a plain draw.
func DrawStroked(dst draw.Image, x, y int, text string, face font.Face, fill, outline color.Color, outlineW, inlineW int) {
	if text == "" {
		return
	}
	baseline := y + face.Metrics().Ascent.Ceil()

	if outlineW > 0 {
		strokePass(dst, x, baseline, text, face, outline, outlineW)
		drawString(dst, x, baseline, text, face, fill)
	}
	if inlineW > 0 {
		strokePass(dst, x, baseline, text, face, fill, inlineW)
	}
	drawString(dst, x, baseline, text, face, fill)
}

// strokePass re-draws the glyphs at every offset within radius w of the
// origin, approximating a stroke of width w.
func strokePass(dst draw.Image, x, baseline int, text string, face font.Face, col color.Color, w int) {
	for dy := -w; dy <= w; dy++ {
		for dx := -w; dx <= w; dx++ {
			if dx*dx+dy*dy > w*w {
				continue
			}
			drawString(dst, x+dx, baseline+dy, text, face, col)
		}
	}
}

func drawString(dst draw.Image, x, baseline int, text string, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
