package components

import "github.com/yohamta/donburi"

type ProbeKind int

const (
	ProbeGround ProbeKind = iota
	ProbeWall
)

// ProbeData is a point-radius overlap query anchored to its owner's
// collision box. OffsetX is mirrored by the owner's facing when Mirror is set.
type ProbeData struct {
	Owner   *donburi.Entry
	Kind    ProbeKind
	Tag     string
	Radius  float64
	OffsetX float64
	OffsetY float64
	Mirror  bool
	Hit     bool
}

var Probe = donburi.NewComponentType[ProbeData]()

// Center returns the probe's world position for an owner box at (x, y)
// with size (w, h).
func (p *ProbeData) Center(x, y, w, h, facing float64) (float64, float64) {
	offX := p.OffsetX
	if p.Mirror && facing < 0 {
		offX = -offX
	}
	return x + w/2 + offX, y + h/2 + p.OffsetY
}
