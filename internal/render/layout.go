package render

import (
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
)

// Vertical gap between wrapped lines, in pixels.
const lineSpacing = 6

// Wrap breaks text into lines that each measure at most maxWidth pixels.
//
// Packing is greedy at single-rune granularity: a line closes the instant the
// next rune would overflow. Japanese has no inter-word spaces, so word-level
// wrapping would not help; the cost is that Latin words can split mid-token.
func Wrap(text string, face font.Face, maxWidth int) []string {
	if text == "" {
		return nil
	}
	var lines []string
	cur := ""
	for _, r := range text {
		test := cur + string(r)
		if font.MeasureString(face, test).Ceil() <= maxWidth {
			cur = test
		} else {
			lines = append(lines, cur)
			cur = string(r)
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// LineHeight is the vertical extent of one line of the face.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// DrawWrapped wraps text to maxWidth and draws it line by line with the
// stroked renderer, starting at (x, y). It returns the total vertical extent
// consumed so the caller can position content below it; empty text consumes
// nothing.
func DrawWrapped(dst draw.Image, x, y int, text string, face font.Face, fill, outline color.Color, maxWidth, outlineW, inlineW int) int {
	total := 0
	for _, line := range Wrap(text, face, maxWidth) {
		DrawStroked(dst, x, y+total, line, face, fill, outline, outlineW, inlineW)
		total += LineHeight(face) + lineSpacing
	}
	return total
}
