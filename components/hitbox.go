package components

import (
	"github.com/yohamta/donburi"
)

type HitboxKind int

const (
	HitboxSword HitboxKind = iota
	HitboxShield
)

func (k HitboxKind) String() string {
	if k == HitboxShield {
		return "shield"
	}
	return "sword"
}

// HitboxData is a collider attached in front of its owner. It is switched
// on and off by the owner's controller.
type HitboxData struct {
	OwnerEntity *donburi.Entry          // The entity carrying this hitbox
	Kind        HitboxKind
	Active      bool
	Width       float64
	Height      float64
	HitEntities map[*donburi.Entry]bool // Entities already hit while active
}

// SetEnabled switches the hitbox. Each activation starts with a fresh hit
// list so one swing hits each target once.
func (h *HitboxData) SetEnabled(on bool) {
	if on && !h.Active {
		clear(h.HitEntities)
	}
	h.Active = on
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// HitboxToggle switches a hitbox entity on behalf of a controller. It
// resolves the component on every call because component storage moves
// when entities are created.
type HitboxToggle struct {
	Entry *donburi.Entry
}

func (t HitboxToggle) SetEnabled(on bool) {
	if t.Entry == nil || !t.Entry.Valid() {
		return
	}
	Hitbox.Get(t.Entry).SetEnabled(on)
}

// Place returns the hitbox's top-left corner for an owner box at (x, y)
// with size (w, h) facing the given direction.
func (h *HitboxData) Place(x, y, w, hgt, facing float64) (float64, float64) {
	hx := x + w
	if facing < 0 {
		hx = x - h.Width
	}
	hy := y + (hgt-h.Height)/2
	if h.Kind == HitboxSword {
		// Swing at chest height.
		hy -= hgt / 6
	}
	return hx, hy
}
