// Package measure computes the natural size of text leaves from font metrics.
package measure

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/go-gridflex/internal/layout"
)

// Text measures strings with a single font face. A face is not safe for
// concurrent use, so calls are serialized.
type Text struct {
	mu   sync.Mutex
	face font.Face
}

// New returns a Text measuring with face.
func New(face font.Face) *Text {
	return &Text{face: face}
}

// Default returns a Text using the built-in 7x13 bitmap face.
func Default() *Text {
	return New(basicfont.Face7x13)
}

// Face returns the font face used for measuring.
func (t *Text) Face() font.Face {
	return t.face
}

// LineHeight returns the distance between baselines in pixels.
func (t *Text) LineHeight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func (t *Text) Ascent() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.face.Metrics().Ascent.Ceil()
}

// Size returns the width of the widest line of s and the height of all its
// lines. Lines are separated by '\n'. An empty string has no size.
func (t *Text) Size(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, font.MeasureString(t.face, line).Ceil())
	}
	return width, len(lines) * t.face.Metrics().Height.Ceil()
}

// Func returns a layout.MeasureFunc reporting the size of s.
func (t *Text) Func(s string) layout.MeasureFunc {
	return func() (int, int) {
		return t.Size(s)
	}
}
