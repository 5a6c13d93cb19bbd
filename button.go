package arbor

// ButtonState is the interaction state of a Button.
type ButtonState uint8

const (
	ButtonDisabled ButtonState = iota
	ButtonNormal
	ButtonHover
	ButtonPress
)

// ButtonStyle holds the background color for each state.
type ButtonStyle struct {
	Disabled Color
	Normal   Color
	Hover    Color
	Press    Color
}

// DefaultButtonStyle is the style NewButton starts with.
var DefaultButtonStyle = ButtonStyle{
	Disabled: ColorGray,
	Normal:   ColorDodgerBlue,
	Hover:    ColorSkyBlue,
	Press:    ColorBlue,
}

// PressContext describes a button press to its callback.
type PressContext struct {
	Name     string
	Position Point
}

// Button is a clickable rectangle around arbitrary content.
type Button struct {
	Visibility Visibility
	Style      ButtonStyle
	Name       string
	OnPress    func(PressContext)

	content Element
	state   ButtonState
}

// NewButton creates an enabled Button named name around content.
func NewButton(name string, content Node, onPress func(PressContext)) *Button {
	return &Button{
		Style:   DefaultButtonStyle,
		Name:    name,
		OnPress: onPress,
		content: Wrap(content),
		state:   ButtonNormal,
	}
}

func (b *Button) Content() *Element { return &b.content }

// State returns the current interaction state.
func (b *Button) State() ButtonState { return b.state }

// SetEnabled enables or disables the button. Enabling a disabled button
// puts it back in ButtonNormal; enabling an enabled one does nothing.
func (b *Button) SetEnabled(enabled bool) {
	switch {
	case !enabled:
		b.state = ButtonDisabled
	case b.state == ButtonDisabled:
		b.state = ButtonNormal
	}
}

// Color returns the style color of the current state.
func (b *Button) Color() Color {
	switch b.state {
	case ButtonDisabled:
		return b.Style.Disabled
	case ButtonHover:
		return b.Style.Hover
	case ButtonPress:
		return b.Style.Press
	default:
		return b.Style.Normal
	}
}

func (b *Button) SizeRange() (w, h SizeRange) {
	if b.Visibility == Collapsed {
		return SizeRange{}, SizeRange{}
	}
	return b.content.SizeRange()
}

func (b *Button) Bounds(slot Rect) Rect { return DefaultBounds(b, slot) }

func (b *Button) DibsTick(tc TickContext, slot Rect, ev *Events) {
	if b.Visibility.hidden() {
		return
	}
	b.content.DibsTick(tc, b.Bounds(slot), ev)
}

func (b *Button) ActiveTick(tc TickContext, slot Rect, ev *Events) {
	if b.Visibility.hidden() {
		return
	}
	r := b.Bounds(slot)
	if b.Visibility.hitChildren() && ev.MouseOver(r) {
		b.content.ActiveTick(tc, r, ev)
	} else {
		b.content.InactiveTick(tc, r, *ev)
	}

	if b.state == ButtonDisabled || !b.Visibility.hitSelf() {
		return
	}
	m, claimed := ev.TakeMouseOver(r)
	switch {
	case ev.PrimaryReleased:
		if claimed {
			b.state = ButtonHover
		} else {
			b.state = ButtonNormal
		}
	case claimed:
		if b.state == ButtonNormal {
			b.state = ButtonHover
		}
		if m.Press.IsSome() {
			b.state = ButtonPress
			if b.OnPress != nil {
				b.OnPress(PressContext{Name: b.Name, Position: m.Position})
			}
		}
	default:
		b.state = ButtonNormal
	}
}

func (b *Button) InactiveTick(tc TickContext, slot Rect, ev Events) {
	if b.Visibility.hidden() {
		return
	}
	b.content.InactiveTick(tc, b.Bounds(slot), ev)
	if b.state != ButtonDisabled && b.Visibility.hitSelf() {
		b.state = ButtonNormal
	}
}

func (b *Button) Draw(dc DrawContext, slot Rect) {
	if b.Visibility.hidden() {
		return
	}
	r := b.Bounds(slot)
	dc.DrawRect(r, b.Color())
	b.content.Draw(dc, r)
}
