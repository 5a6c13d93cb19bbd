package arbor

// LabelStyle sets how a Label's text is rendered.
type LabelStyle struct {
	FontSize float64
	Color    Color
}

// DefaultLabelStyle is the style NewLabel starts with.
var DefaultLabelStyle = LabelStyle{FontSize: 16, Color: ColorWhite}

// Label is a single line of text.
//
// With a Measurer the label is exactly as big as its measured text. Without
// one it is exactly FontSize tall and accepts any width.
type Label struct {
	Leaf
	Text       string
	Style      LabelStyle
	Measurer   TextMeasurer
	Visibility Visibility
}

// NewLabel creates a Label. m may be nil.
func NewLabel(text string, m TextMeasurer) *Label {
	return &Label{Text: text, Style: DefaultLabelStyle, Measurer: m}
}

func (l *Label) SizeRange() (w, h SizeRange) {
	if l.Visibility == Collapsed {
		return SizeRange{}, SizeRange{}
	}
	if l.Measurer == nil {
		return AnySize, Exact(l.Style.FontSize)
	}
	tw, th := l.Measurer.MeasureText(l.Text, l.Style.FontSize)
	return Exact(tw), Exact(th)
}

func (l *Label) Bounds(slot Rect) Rect { return DefaultBounds(l, slot) }

func (l *Label) Draw(dc DrawContext, slot Rect) {
	if l.Visibility.hidden() || l.Text == "" {
		return
	}
	dc.DrawText(l.Text, slot.Min(), l.Style.FontSize, l.Style.Color)
}
