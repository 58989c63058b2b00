// Package patrol moves an NPC back and forth between two points, pausing
// at each end.
package patrol

import (
	"errors"
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/wallblade/gamemath"
)

// ParamWalking is the animation channel toggled while moving.
const ParamWalking = "isWalking"

// timeEpsilon absorbs float error from summing fixed steps.
const timeEpsilon = 1e-9

var ErrNoAnimator = errors.New("patrol: animator is required")

type Animator interface {
	SetBool(name string, v bool)
}

type Mode int

const (
	Moving Mode = iota
	Waiting
)

func (m Mode) String() string {
	if m == Waiting {
		return "waiting"
	}
	return "moving"
}

type Config struct {
	Speed         float64
	WaitTime      float64
	ReachDistance float64
}

type Patrol struct {
	cfg    Config
	anim   Animator
	a, b   dmath.Vec2
	target dmath.Vec2
	toB    bool

	mode     Mode
	waitLeft float64
	facing   float64
	arrivals int
}

// New starts a patrol heading for b.
func New(cfg Config, a, b dmath.Vec2, anim Animator) (*Patrol, error) {
	if anim == nil {
		return nil, ErrNoAnimator
	}
	if a == b {
		return nil, fmt.Errorf("patrol: endpoints are identical (%v, %v)", a.X, a.Y)
	}
	if cfg.Speed <= 0 {
		return nil, fmt.Errorf("patrol: speed must be positive, got %v", cfg.Speed)
	}
	if cfg.WaitTime < 0 || cfg.ReachDistance < 0 {
		return nil, fmt.Errorf("patrol: negative wait time or reach distance")
	}

	p := &Patrol{
		cfg:    cfg,
		anim:   anim,
		a:      a,
		b:      b,
		target: b,
		toB:    true,
		mode:   Moving,
	}
	p.facing = gamemath.FacingToward(a.X, b.X)
	anim.SetBool(ParamWalking, true)
	return p, nil
}

// Tick advances the patrol and returns the new position.
func (p *Patrol) Tick(dt float64, pos dmath.Vec2) dmath.Vec2 {
	if p.mode == Waiting {
		p.waitLeft -= dt
		if p.waitLeft <= timeEpsilon {
			p.waitLeft = 0
			p.mode = Moving
			p.facing = gamemath.FacingToward(pos.X, p.target.X)
			p.anim.SetBool(ParamWalking, true)
		}
		return pos
	}

	pos = gamemath.MoveTowards(pos, p.target, p.cfg.Speed*dt)
	if gamemath.Distance(pos, p.target) <= p.cfg.ReachDistance {
		p.mode = Waiting
		p.waitLeft = p.cfg.WaitTime
		p.arrivals++
		p.anim.SetBool(ParamWalking, false)
		p.toB = !p.toB
		if p.toB {
			p.target = p.b
		} else {
			p.target = p.a
		}
	}
	return pos
}

func (p *Patrol) Mode() Mode             { return p.mode }
func (p *Patrol) Target() dmath.Vec2     { return p.target }
func (p *Patrol) Facing() float64        { return p.facing }
func (p *Patrol) WaitRemaining() float64 { return p.waitLeft }

// Arrivals counts how many endpoints have been reached.
func (p *Patrol) Arrivals() int { return p.arrivals }

func (p *Patrol) SetConfig(cfg Config) error {
	if cfg.Speed <= 0 {
		return fmt.Errorf("patrol: speed must be positive, got %v", cfg.Speed)
	}
	p.cfg = cfg
	return nil
}
