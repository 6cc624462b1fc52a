package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/overlay"
)

func TestNewDisplayTransform_HalfScale(t *testing.T) {
	tr := overlay.NewDisplayTransform(500, 500, 1000, 1000)
	rect := tr.Apply([4]float64{100, 100, 200, 150})

	assert.InDelta(t, 50, rect.Left, 1e-9)
	assert.InDelta(t, 50, rect.Top, 1e-9)
	assert.InDelta(t, 50, rect.Width, 1e-9)
	assert.InDelta(t, 25, rect.Height, 1e-9)
}

func TestNewDisplayTransform_NonUniformScale(t *testing.T) {
	tr := overlay.NewDisplayTransform(800, 300, 1600, 1200)
	rect := tr.Apply([4]float64{0, 0, 1600, 1200})

	assert.InDelta(t, 0, rect.Left, 1e-9)
	assert.InDelta(t, 0, rect.Top, 1e-9)
	assert.InDelta(t, 800, rect.Width, 1e-9)
	assert.InDelta(t, 300, rect.Height, 1e-9)
}

func TestHighlights_UnloadedImageProducesNothing(t *testing.T) {
	words := []domain.OCRWord{{Text: "contrato", Box: [4]float64{10, 10, 50, 20}}}

	tr := overlay.NewDisplayTransform(500, 500, 0, 0)
	assert.Nil(t, overlay.Highlights(words, tr, "contrato"))

	tr = overlay.NewDisplayTransform(500, 500, -1, 600)
	assert.Nil(t, overlay.Highlights(words, tr, "contrato"))
}

func TestHighlights_ShortQueryProducesNothing(t *testing.T) {
	words := []domain.OCRWord{{Text: "abcde", Box: [4]float64{10, 10, 50, 20}}}
	tr := overlay.NewDisplayTransform(1000, 1000, 1000, 1000)

	assert.Nil(t, overlay.Highlights(words, tr, ""))
	assert.Nil(t, overlay.Highlights(words, tr, "a"))
	assert.Nil(t, overlay.Highlights(words, tr, "ab"))
	assert.Len(t, overlay.Highlights(words, tr, "abc"), 1, "three characters activate matching")
}

func TestHighlights_MinQueryLenCountsRunes(t *testing.T) {
	words := []domain.OCRWord{{Text: "ação", Box: [4]float64{0, 0, 10, 10}}}
	tr := overlay.NewDisplayTransform(100, 100, 100, 100)

	// Two runes even though the UTF-8 encoding is longer.
	assert.Nil(t, overlay.Highlights(words, tr, "çã"))
	assert.Len(t, overlay.Highlights(words, tr, "açã"), 1)
}

func TestHighlights_CaseInsensitiveSubstring(t *testing.T) {
	words := []domain.OCRWord{
		{Text: "Alvará", Box: [4]float64{0, 0, 100, 20}},
		{Text: "ALVARÁ", Box: [4]float64{0, 30, 100, 50}},
		{Text: "licença", Box: [4]float64{0, 60, 100, 80}},
	}
	tr := overlay.NewDisplayTransform(1000, 1000, 1000, 1000)

	rects := overlay.Highlights(words, tr, "alvará")
	assert.Len(t, rects, 2)
}

func TestHighlights_PreservesWordOrder(t *testing.T) {
	words := []domain.OCRWord{
		{Text: "nota", Box: [4]float64{0, 0, 10, 10}},
		{Text: "anotação", Box: [4]float64{0, 20, 10, 30}},
		{Text: "outra", Box: [4]float64{0, 40, 10, 50}},
		{Text: "nota", Box: [4]float64{0, 60, 10, 70}},
	}
	tr := overlay.NewDisplayTransform(100, 100, 100, 100)

	rects := overlay.Highlights(words, tr, "nota")
	assert.Len(t, rects, 3)
	assert.Equal(t, float64(0), rects[0].Top)
	assert.Equal(t, float64(20), rects[1].Top)
	assert.Equal(t, float64(60), rects[2].Top)
}

func TestHighlights_Deterministic(t *testing.T) {
	words := []domain.OCRWord{
		{Text: "decreto", Box: [4]float64{12.5, 40, 90.25, 55}},
		{Text: "municipal", Box: [4]float64{95, 40, 180, 55}},
	}
	tr := overlay.NewDisplayTransform(640, 480, 1280, 960)

	first := overlay.Highlights(words, tr, "decreto")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, overlay.Highlights(words, tr, "decreto"))
	}
}

func TestHighlights_NoMatches(t *testing.T) {
	words := []domain.OCRWord{{Text: "contrato", Box: [4]float64{0, 0, 10, 10}}}
	tr := overlay.NewDisplayTransform(100, 100, 100, 100)

	assert.Empty(t, overlay.Highlights(words, tr, "empenho"))
}
