package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func countColored(img *image.NRGBA, want color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func newCanvas(w, h int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

func TestDrawStrokedPaintsOutlineAndFill(t *testing.T) {
	bg := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	fill := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	outline := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	img := newCanvas(60, 40, bg)
	DrawStroked(img, 10, 10, "AB", basicfont.Face7x13, fill, outline, 2, 1)

	if countColored(img, fill) == 0 {
		t.Fatal("no fill-colored pixels drawn")
	}
	if countColored(img, outline) == 0 {
		t.Fatal("no outline-colored pixels drawn")
	}
}

func TestDrawStrokedZeroOutline(t *testing.T) {
	bg := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	fill := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	outline := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	img := newCanvas(60, 40, bg)
	DrawStroked(img, 10, 10, "AB", basicfont.Face7x13, fill, outline, 0, 0)

	if countColored(img, fill) == 0 {
		t.Fatal("no fill-colored pixels drawn")
	}
	if countColored(img, outline) != 0 {
		t.Fatal("outline pixels drawn with outline width 0")
	}
}

func TestDrawStrokedEmptyTextIsNoop(t *testing.T) {
	bg := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	img := newCanvas(20, 20, bg)
	DrawStroked(img, 5, 5, "", basicfont.Face7x13, color.NRGBA{A: 255}, color.NRGBA{A: 255}, 3, 1)
	if countColored(img, bg) != 20*20 {
		t.Fatal("empty text modified the canvas")
	}
}
