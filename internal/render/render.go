// Package render draws a computed scene to an image for visual inspection.
package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/grindlemire/go-gridflex/internal/layout"
	"github.com/grindlemire/go-gridflex/internal/measure"
	"github.com/grindlemire/go-gridflex/internal/scene"
)

// Palette fills nodes by depth, cycling when the tree is deeper.
var Palette = []string{"#f5f5f5", "#cfe2f3", "#d9ead3", "#fff2cc", "#f4cccc", "#d9d2e9"}

const (
	outlineColor = "#444444"
	contentColor = "#999999"
	textColor    = "#000000"
)

// Options control the drawing.
type Options struct {
	Scale   int  // Pixels per layout unit, at least 1
	Labels  bool // Draw node names
	Content bool // Outline content rectangles inside the padding
}

// Renderer draws scenes with one font face.
type Renderer struct {
	text *measure.Text
	opts Options
}

// New returns a Renderer. A nil m uses the default face.
func New(m *measure.Text, opts Options) *Renderer {
	if m == nil {
		m = measure.Default()
	}
	opts.Scale = max(1, opts.Scale)
	return &Renderer{text: m, opts: opts}
}

// Image draws the last computed layout of s.
func (r *Renderer) Image(s *scene.Scene) image.Image {
	return r.draw(s).Image()
}

// WritePNG draws s and encodes it as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, s *scene.Scene) error {
	if err := r.draw(s).EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG draws s and writes it to path.
func (r *Renderer) SavePNG(path string, s *scene.Scene) error {
	if err := r.draw(s).SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(s *scene.Scene) *gg.Context {
	scale := r.opts.Scale
	dc := gg.NewContext(s.Width*scale, s.Height*scale)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(float64(scale), float64(scale))
	dc.SetFontFace(r.text.Face())
	dc.SetLineWidth(1 / float64(scale))

	s.Walk(func(n *layout.Node, depth int) {
		r.drawNode(dc, s, n, depth)
	})
	return dc
}

func (r *Renderer) drawNode(dc *gg.Context, s *scene.Scene, n *layout.Node, depth int) {
	box := n.Rect()
	if box.IsEmpty() {
		return
	}

	dc.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
	dc.SetHexColor(Palette[depth%len(Palette)])
	dc.FillPreserve()
	dc.SetHexColor(outlineColor)
	dc.Stroke()

	content := n.ContentRect()
	if r.opts.Content && content != box && !content.IsEmpty() {
		dc.DrawRectangle(float64(content.X), float64(content.Y), float64(content.Width), float64(content.Height))
		dc.SetHexColor(contentColor)
		dc.Stroke()
	}

	dc.SetHexColor(textColor)
	lineHeight := r.text.LineHeight()
	y := content.Y + r.text.Ascent()
	if text := s.Text(n); text != "" {
		for _, line := range strings.Split(text, "\n") {
			dc.DrawString(line, float64(content.X), float64(y))
			y += lineHeight
		}
	} else if r.opts.Labels && n.Name != "" {
		dc.DrawString(n.Name, float64(box.X+1), float64(box.Y+r.text.Ascent()))
	}
}
