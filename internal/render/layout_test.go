package render

import (
	"image"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

// basicfont.Face7x13 advances every glyph by 7 pixels, which makes wrap
// boundaries exact.
const glyphAdvance = 7

func TestWrapEvenPacking(t *testing.T) {
	face := basicfont.Face7x13
	const perLine = 10
	text := strings.Repeat("a", 25)

	lines := Wrap(text, face, perLine*glyphAdvance)
	if len(lines) != 3 {
		t.Fatalf("Wrap produced %d lines, want 3: %q", len(lines), lines)
	}
	for i, line := range lines {
		if got := len(line) * glyphAdvance; got > perLine*glyphAdvance {
			t.Fatalf("line %d measures %dpx, over the %dpx budget", i, got, perLine*glyphAdvance)
		}
	}
	if lines[2] != "aaaaa" {
		t.Fatalf("last line = %q, want the 5 leftover runes", lines[2])
	}
	if strings.Join(lines, "") != text {
		t.Fatalf("wrapping lost runes: %q", lines)
	}
}

func TestWrapExactFit(t *testing.T) {
	face := basicfont.Face7x13
	lines := Wrap("abcde", face, 5*glyphAdvance)
	if len(lines) != 1 || lines[0] != "abcde" {
		t.Fatalf("Wrap = %q, want single exact-fit line", lines)
	}
}

func TestWrapEmpty(t *testing.T) {
	face := basicfont.Face7x13
	if lines := Wrap("", face, 100); lines != nil {
		t.Fatalf("Wrap(\"\") = %q, want no lines", lines)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	if h := DrawWrapped(img, 0, 0, "", face, titleColor, strokeColor, 100, 2, 1); h != 0 {
		t.Fatalf("DrawWrapped(\"\") consumed %dpx, want 0", h)
	}
}

func TestDrawWrappedHeight(t *testing.T) {
	face := basicfont.Face7x13
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	// 12 runes at 4 per line = 3 lines.
	h := DrawWrapped(img, 10, 10, strings.Repeat("x", 12), face, titleColor, strokeColor, 4*glyphAdvance, 2, 1)
	want := 3 * (LineHeight(face) + lineSpacing)
	if h != want {
		t.Fatalf("DrawWrapped height = %d, want %d", h, want)
	}
}
