package ebitenui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const measureCacheSize = 1024

type measureKey struct {
	text string
	size float64
}

// Fonts renders and measures text with one TrueType face per font size.
// It implements arbor.TextMeasurer.
type Fonts struct {
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	measured *lru.Cache[measureKey, [2]float64]
}

// NewFonts loads a TrueType font from raw TTF/OTF data. Nil data selects
// Go Regular.
func NewFonts(ttfData []byte) (*Fonts, error) {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("arbor: failed to parse TTF data: %w", err)
	}
	measured, err := lru.New[measureKey, [2]float64](measureCacheSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{
		source:   source,
		faces:    make(map[float64]*text.GoTextFace),
		measured: measured,
	}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// LineHeight returns the vertical distance between baselines at size.
func (f *Fonts) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureText returns the width and height of s rendered at size. Results
// are cached; labels measure themselves every frame.
func (f *Fonts) MeasureText(s string, size float64) (width, height float64) {
	key := measureKey{s, size}
	if wh, ok := f.measured.Get(key); ok {
		return wh[0], wh[1]
	}
	w, h := text.Measure(s, f.Face(size), f.LineHeight(size))
	f.measured.Add(key, [2]float64{w, h})
	return w, h
}
