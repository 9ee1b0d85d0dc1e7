package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"time"

	xdraw "golang.org/x/image/draw"

	"mysterybot/internal/domain/entities"
)

// Fixed layout constants of the panel composition.
const (
	accentBarWidth = 18
	thumbSize      = 340
	thumbRadius    = 28
	thumbMargin    = 28
	titleX         = 70
	titleY         = 60
	rowStartY      = 140
	rowGap         = 16
	noteGap        = 10
	noteRightPad   = 380
	footerMarginY  = 40
	overlayInset   = 40
)

var (
	baseColor   = color.NRGBA{R: 20, G: 22, B: 28, A: 255}
	accentColor = color.NRGBA{R: 212, G: 175, B: 55, A: 255}
	titleColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	noteColor   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	footerColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	strokeColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Renderer composites announcement panels. It is stateless apart from the
// font cache and safe for concurrent use.
type Renderer struct {
	fonts  *FontResolver
	client *http.Client
}

// NewRenderer creates a Renderer drawing with faces from fonts.
func NewRenderer(fonts *FontResolver) *Renderer {
	return &Renderer{
		fonts:  fonts,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// RenderPanel renders spec into a PNG-encoded panel image. Background and
// thumbnail fetches are best effort: a failed fetch drops the layer, it never
// aborts the render.
func (r *Renderer) RenderPanel(ctx context.Context, spec entities.EventSpec, style Style) ([]byte, error) {
	w, h := style.Width, style.Height
	base := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(base, base.Bounds(), image.NewUniform(baseColor), image.Point{}, draw.Src)

	// Background, cropped to fill the canvas and dimmed via the style alpha.
	if bg := fetchImage(ctx, r.client, spec.BackgroundURL); bg != nil {
		fitted := coverCrop(bg, w, h)
		draw.DrawMask(base, base.Bounds(), fitted, image.Point{},
			image.NewUniform(color.Alpha{A: style.BGAlpha}), image.Point{}, draw.Over)
	}

	// Gold accent bar along the left edge.
	draw.Draw(base, image.Rect(0, 0, accentBarWidth, h), image.NewUniform(accentColor), image.Point{}, draw.Over)

	// Rounded thumbnail anchored top-right.
	if thumb := fetchImage(ctx, r.client, spec.ThumbnailURL); thumb != nil {
		fitted := coverCrop(thumb, thumbSize, thumbSize)
		mask := roundedMask(thumbSize, thumbSize, thumbRadius)
		at := image.Pt(w-thumbSize-thumbMargin, thumbMargin)
		draw.DrawMask(base, image.Rectangle{Min: at, Max: at.Add(image.Pt(thumbSize, thumbSize))},
			fitted, image.Point{}, mask, image.Point{}, draw.Over)
	}

	// Optional dim overlay panel.
	if style.PanelOpacity > 0 {
		overlay := image.NewUniform(color.NRGBA{A: style.PanelOpacity})
		draw.Draw(base, image.Rect(overlayInset, overlayInset, w-overlayInset, h-overlayInset),
			overlay, image.Point{}, draw.Over)
	}

	titleFace := r.fonts.Face(style.TitleSize)
	labelFace := r.fonts.Face(style.LabelSize)
	valueFace := r.fonts.Face(style.ValueSize)

	DrawStroked(base, titleX, titleY, spec.Title, titleFace, titleColor, strokeColor,
		style.StrokeTitle, style.InlineStrokeTitle)

	// Label/value rows: labels in the left column, values in the right one,
	// sharing a baseline.
	y := rowStartY
	putRow := func(label, value string) {
		DrawStroked(base, style.LabelX, y, label, labelFace, labelColor, strokeColor,
			style.StrokeBody, style.InlineStrokeBody)
		DrawStroked(base, style.ValueX, y-2, value, valueFace, titleColor, strokeColor,
			style.StrokeBody, style.InlineStrokeBody)
		y += style.ValueSize + rowGap
	}
	putRow(style.Labels.Date, spec.DateTime)
	putRow(style.Labels.Players, FormatPartySize(spec.Players, style.Labels.PlayersUnit))
	putRow(style.Labels.Duration, spec.Duration)

	// Free-text note, wrapped to the remaining width.
	DrawStroked(base, style.LabelX, y, style.Labels.Note, labelFace, labelColor, strokeColor,
		style.StrokeBody, style.InlineStrokeBody)
	y += style.LabelSize + noteGap
	y += DrawWrapped(base, style.LabelX, y, spec.Note, r.fonts.Face(style.NoteSize),
		noteColor, strokeColor, w-style.LabelX-noteRightPad, style.StrokeBody, style.InlineStrokeBody)

	DrawStroked(base, titleX, h-footerMarginY, style.Labels.Footer, r.fonts.Face(style.FooterSize),
		footerColor, strokeColor, style.StrokeBody, style.InlineStrokeBody)

	// Flatten to an opaque image and serialize.
	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatPartySize appends the unit suffix to digits-only values, turning "6"
// into "6 名", and passes anything else through verbatim ("TBD" stays "TBD").
func FormatPartySize(value, unit string) string {
	if value == "" {
		return value
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return value
		}
	}
	return value + " " + unit
}

// coverCrop scales src to exactly fill w×h, cropping the overflowing axis
// around the center.
func coverCrop(src image.Image, w, h int) *image.NRGBA {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	crop := sb
	if srcW*h > w*srcH {
		// Source is wider than the target: crop left/right.
		cropW := srcH * w / h
		crop.Min.X = sb.Min.X + (srcW-cropW)/2
		crop.Max.X = crop.Min.X + cropW
	} else {
		cropH := srcW * h / w
		crop.Min.Y = sb.Min.Y + (srcH-cropH)/2
		crop.Max.Y = crop.Min.Y + cropH
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// roundedMask builds an alpha mask for a w×h rectangle with corner radius r.
func roundedMask(w, h, r int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rr := r * r
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := x, y
			switch {
			case x < r && y < r:
				cx, cy = x-r, y-r
			case x >= w-r && y < r:
				cx, cy = x-(w-r-1), y-r
			case x < r && y >= h-r:
				cx, cy = x-r, y-(h-r-1)
			case x >= w-r && y >= h-r:
				cx, cy = x-(w-r-1), y-(h-r-1)
			default:
				mask.SetAlpha(x, y, color.Alpha{A: 255})
				continue
			}
			if cx*cx+cy*cy <= rr {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}
