package ebitenui

import "github.com/hajimehoshi/ebiten/v2"

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TickContext is the arbor.TickContext Run hands to the tree. Widgets that
// need it type-assert the context they receive.
type TickContext struct {
	Delta     float64 // seconds since the previous tick
	Modifiers KeyModifiers
}

// newTickContext samples the keyboard for the current tick.
func newTickContext() *TickContext {
	return &TickContext{
		Delta:     1.0 / float64(ebiten.TPS()),
		Modifiers: readModifiers(),
	}
}

// IsKeyPressed reports whether k is held down.
func (*TickContext) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// Has reports whether all modifiers in m are held.
func (tc *TickContext) Has(m KeyModifiers) bool {
	return tc.Modifiers&m == m
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
