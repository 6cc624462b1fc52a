// Package overlay maps OCR word bounding boxes from source-image pixel
// space into CSS rectangles aligned with a responsively scaled page image,
// for search-term highlighting.
package overlay

import (
	"strings"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MinQueryLen is the shortest query that produces highlights. Shorter
// queries would light up the page on every keystroke, so highlighting
// only activates once the query exceeds two characters.
const MinQueryLen = 3

// Rect is one highlight rectangle in CSS pixels, relative to the top-left
// corner of the rendered image.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DisplayTransform scales natural-image coordinates into displayed
// coordinates. It is recomputed whenever the rendered size changes; the
// zero value (unloaded image) maps everything to nothing.
type DisplayTransform struct {
	ScaleX float64
	ScaleY float64
	valid  bool
}

// NewDisplayTransform derives the transform from the image's displayed
// and natural dimensions. A natural dimension of zero means the image has
// not loaded yet; the returned transform produces no rectangles rather
// than dividing by zero.
func NewDisplayTransform(displayedW, displayedH, naturalW, naturalH float64) DisplayTransform {
	if naturalW <= 0 || naturalH <= 0 {
		return DisplayTransform{}
	}
	return DisplayTransform{
		ScaleX: displayedW / naturalW,
		ScaleY: displayedH / naturalH,
		valid:  true,
	}
}

// Apply maps one bounding box [x0 y0 x1 y1] into a CSS rectangle.
func (t DisplayTransform) Apply(box [4]float64) Rect {
	return Rect{
		Left:   box[0] * t.ScaleX,
		Top:    box[1] * t.ScaleY,
		Width:  (box[2] - box[0]) * t.ScaleX,
		Height: (box[3] - box[1]) * t.ScaleY,
	}
}

// Highlights returns one rectangle per word whose text contains query,
// case-insensitively, in word order. It is pure and synchronous: calling
// it again with the same inputs yields the same rectangles, so resize and
// image-load events can simply recompute.
func Highlights(words []domain.OCRWord, t DisplayTransform, query string) []Rect {
	if !t.valid {
		return nil
	}
	if len([]rune(query)) < MinQueryLen {
		return nil
	}
	needle := strings.ToLower(query)
	var rects []Rect
	for _, w := range words {
		if strings.Contains(strings.ToLower(w.Text), needle) {
			rects = append(rects, t.Apply(w.Box))
		}
	}
	return rects
}
