// Package plot renders interaction heatmaps and bar charts as PNG images.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Size of a figure in inches, and its resolution.
type Size struct {
	Width  float64
	Height float64
	DPI    float64
}

// DefaultSize is a 12x8 inch figure at 300 dpi.
var DefaultSize = Size{Width: 12, Height: 8, DPI: 300}

// Pixels returns the image dimensions.
func (s Size) Pixels() (int, int) {
	return int(s.Width * s.DPI), int(s.Height * s.DPI)
}

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *truetype.Font
	bold      *truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

type faceKey struct {
	size float64
	bold bool
}

// Figure is a single canvas. Every drawing operation goes through it.
type Figure struct {
	dc    *gg.Context
	size  Size
	faces map[faceKey]font.Face
}

// NewFigure returns a blank white figure.
func NewFigure(size Size) (*Figure, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %v", err)
	}

	w, h := size.Pixels()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid figure size %vx%v at %v dpi", size.Width, size.Height, size.DPI)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	return &Figure{dc: dc, size: size, faces: make(map[faceKey]font.Face)}, nil
}

// Render draws a figure and writes it as PNG to w.
// The image is encoded and w is closed on every path, including a failed draw;
// the first error is returned.
func Render(w io.WriteCloser, size Size, draw func(*Figure) error) (err error) {
	f, err := NewFigure(size)
	if err != nil {
		w.Close()
		return err
	}

	defer func() {
		if ferr := f.flush(w); err == nil {
			err = ferr
		}
	}()

	return draw(f)
}

func (f *Figure) flush(w io.WriteCloser) error {
	err := f.dc.EncodePNG(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write PNG: %v", err)
	}
	return nil
}

func (f *Figure) width() float64  { return float64(f.dc.Width()) }
func (f *Figure) height() float64 { return float64(f.dc.Height()) }

// px converts points to pixels.
func (f *Figure) px(pt float64) float64 {
	return pt * f.size.DPI / 72
}

func (f *Figure) setFont(pt float64, isBold bool) {
	k := faceKey{size: pt, bold: isBold}
	face, ok := f.faces[k]
	if !ok {
		ttf := regular
		if isBold {
			ttf = bold
		}
		face = truetype.NewFace(ttf, &truetype.Options{Size: pt, DPI: f.size.DPI, Hinting: font.HintingFull})
		f.faces[k] = face
	}
	f.dc.SetFontFace(face)
}

// maxWidth returns the widest rendering of labels with the current font.
func (f *Figure) maxWidth(labels []string) float64 {
	var max float64
	for _, l := range labels {
		if w, _ := f.dc.MeasureString(l); w > max {
			max = w
		}
	}
	return max
}

// text draws s anchored at x, y, rotated by deg degrees around the anchor.
func (f *Figure) text(s string, x, y, ax, ay, deg float64) {
	if deg == 0 {
		f.dc.DrawStringAnchored(s, x, y, ax, ay)
		return
	}
	f.dc.Push()
	f.dc.RotateAbout(gg.Radians(deg), x, y)
	f.dc.DrawStringAnchored(s, x, y, ax, ay)
	f.dc.Pop()
}

// frame strokes a black border around a rectangle.
func (f *Figure) frame(x, y, w, h float64) {
	f.dc.SetColor(color.Black)
	f.dc.SetLineWidth(f.px(frameWidth))
	f.dc.DrawRectangle(x, y, w, h)
	f.dc.Stroke()
}

func (f *Figure) line(x1, y1, x2, y2, pt float64) {
	f.dc.SetColor(color.Black)
	f.dc.SetLineWidth(f.px(pt))
	f.dc.DrawLine(x1, y1, x2, y2)
	f.dc.Stroke()
}
