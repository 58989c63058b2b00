// Package locomotion is the player's movement and combat state machine.
//
// The controller never talks to physics, input devices or the animation
// player directly. Each simulation step the caller hands it the probe
// results and the current velocity, and writes back the returned velocity.
// Animation parameters go to an Animator; hitbox colliders are switched
// through optional Toggles.
package locomotion

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// facingDeadzone is the smallest horizontal input that flips the facing.
const facingDeadzone = 0.01

// timeEpsilon absorbs float drift when comparing accumulated tick time.
const timeEpsilon = 1e-9

var ErrNoAnimator = errors.New("locomotion: animator is required")

// Animator receives named animation parameters.
type Animator interface {
	SetBool(name string, v bool)
	SetFloat(name string, v float64)
	SetTrigger(name string)
}

// Toggle switches a collider on or off.
type Toggle interface {
	SetEnabled(on bool)
}

// Config holds the movement tunables. Speeds are pixels per second,
// WallJumpDuration is seconds.
type Config struct {
	Speed            float64
	JumpForce        float64
	WallSlideSpeed   float64
	WallJumpForce    dmath.Vec2
	WallJumpDuration float64
}

func (c Config) Validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("locomotion: negative speed %v", c.Speed)
	case c.JumpForce < 0:
		return fmt.Errorf("locomotion: negative jump force %v", c.JumpForce)
	case c.WallSlideSpeed < 0:
		return fmt.Errorf("locomotion: negative wall slide speed %v", c.WallSlideSpeed)
	case c.WallJumpDuration <= 0:
		return fmt.Errorf("locomotion: wall jump duration must be positive, got %v", c.WallJumpDuration)
	}
	return nil
}

// Sensors is the environment snapshot for one tick.
type Sensors struct {
	Grounded     bool
	TouchingWall bool
	Velocity     dmath.Vec2
}

// Input is the player's intent for one tick. Jump and Attack are edges,
// MoveX and Block are levels.
type Input struct {
	MoveX  float64
	Jump   bool
	Attack bool
	Block  bool
}

// Commands is what the caller applies after a tick.
type Commands struct {
	Velocity dmath.Vec2
	Facing   float64
	State    State
	Events   []Event
}

type Option func(*Controller)

// WithSwordHitbox attaches the collider opened by attack animation events.
func WithSwordHitbox(t Toggle) Option {
	return func(c *Controller) { c.sword = t }
}

// WithShieldHitbox attaches the collider that follows the block input.
func WithShieldHitbox(t Toggle) Option {
	return func(c *Controller) { c.shield = t }
}

// WithFacing sets the initial facing. Anything negative faces left.
func WithFacing(f float64) Option {
	return func(c *Controller) {
		if f < 0 {
			c.facing = -1
		} else {
			c.facing = 1
		}
	}
}

type Controller struct {
	cfg    Config
	anim   Animator
	sword  Toggle
	shield Toggle

	facing       float64
	grounded     bool
	touchingWall bool
	wallSliding  bool

	wallJumping     bool
	wallJumpElapsed float64

	blocking  bool
	swordOpen bool
	hits      int

	pending []Event
}

// New builds a controller. A missing animator or a bad config is reported
// here so that nothing fails later inside Tick.
func New(cfg Config, anim Animator, opts ...Option) (*Controller, error) {
	if anim == nil {
		return nil, ErrNoAnimator
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		anim:   anim,
		facing: 1,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.sword != nil {
		c.sword.SetEnabled(false)
	}
	if c.shield != nil {
		c.shield.SetEnabled(false)
	}
	return c, nil
}

// Tick advances the state machine by dt seconds.
//
// Order within a tick: lockout timer, state derivation, wall slide clamp,
// jump, horizontal drive and facing, attack, block, animation parameters.
func (c *Controller) Tick(dt float64, s Sensors, in Input) Commands {
	v := s.Velocity

	if c.wallJumping {
		c.wallJumpElapsed += dt
		if c.wallJumpElapsed >= c.cfg.WallJumpDuration-timeEpsilon {
			c.wallJumping = false
			c.wallJumpElapsed = 0
			c.emit(EventWallJumpEnd)
		}
	}

	c.grounded = s.Grounded
	c.touchingWall = s.TouchingWall
	c.wallSliding = s.TouchingWall && !s.Grounded && in.MoveX != 0 && !c.wallJumping

	if c.wallSliding && v.Y > c.cfg.WallSlideSpeed {
		v.Y = c.cfg.WallSlideSpeed
	}

	if in.Jump {
		v = c.jump(v)
	}

	if !c.wallJumping {
		v.X = in.MoveX * c.cfg.Speed
		switch {
		case in.MoveX > facingDeadzone:
			c.facing = 1
		case in.MoveX < -facingDeadzone:
			c.facing = -1
		}
	}

	if in.Attack {
		c.attack()
	}
	c.setBlock(in.Block)

	c.anim.SetBool(ParamWallSliding, c.wallSliding)
	c.anim.SetFloat(ParamSpeed, math.Abs(in.MoveX))
	c.anim.SetBool(ParamGrounded, c.grounded)
	c.anim.SetFloat(ParamYVelocity, v.Y)

	events := c.pending
	c.pending = nil
	return Commands{
		Velocity: v,
		Facing:   c.facing,
		State:    c.State(),
		Events:   events,
	}
}

func (c *Controller) jump(v dmath.Vec2) dmath.Vec2 {
	if c.grounded {
		v.Y = -c.cfg.JumpForce
		c.anim.SetTrigger(TriggerJump)
		c.emit(EventGroundJump)
		return v
	}
	if !c.wallSliding {
		return v
	}

	c.wallJumping = true
	c.wallJumpElapsed = 0
	c.wallSliding = false
	v.X = -c.facing * c.cfg.WallJumpForce.X
	v.Y = -c.cfg.WallJumpForce.Y
	c.anim.SetTrigger(TriggerJump)
	c.emit(EventWallJump)
	return v
}

func (c *Controller) attack() {
	if !c.grounded {
		c.emit(EventAttackIgnored)
		return
	}
	c.anim.SetTrigger(TriggerAttack)
	c.emit(EventAttack)
}

func (c *Controller) setBlock(on bool) {
	if on == c.blocking {
		return
	}
	c.blocking = on
	if c.shield != nil {
		c.shield.SetEnabled(on)
	}
	c.anim.SetBool(ParamBlocking, on)
	if on {
		c.emit(EventBlockStart)
	} else {
		c.emit(EventBlockEnd)
	}
}

// OnHitboxWindowOpen is called by the animation driver when the attack
// reaches its active frames.
func (c *Controller) OnHitboxWindowOpen() {
	if c.swordOpen {
		return
	}
	c.swordOpen = true
	if c.sword != nil {
		c.sword.SetEnabled(true)
	}
	c.emit(EventHitboxOpen)
}

// OnHitboxWindowClose ends the active frames. A close without a matching
// open is ignored, so it is safe to call when an attack is interrupted.
func (c *Controller) OnHitboxWindowClose() {
	if !c.swordOpen {
		return
	}
	c.swordOpen = false
	if c.sword != nil {
		c.sword.SetEnabled(false)
	}
	c.emit(EventHitboxClose)
}

// OnAttackHit marks the impact frame of the attack animation.
func (c *Controller) OnAttackHit() {
	c.hits++
	c.emit(EventAttackHit)
}

func (c *Controller) emit(e Event) {
	c.pending = append(c.pending, e)
}

// State returns the state derived on the last tick.
func (c *Controller) State() State {
	switch {
	case c.wallJumping:
		return WallJumping
	case c.grounded:
		return Grounded
	case c.wallSliding:
		return WallSliding
	}
	return Airborne
}

func (c *Controller) Facing() float64      { return c.facing }
func (c *Controller) IsBlocking() bool     { return c.blocking }
func (c *Controller) IsSwordActive() bool  { return c.swordOpen }
func (c *Controller) TouchingWall() bool   { return c.touchingWall }
func (c *Controller) AttackHits() int      { return c.hits }
func (c *Controller) Config() Config       { return c.cfg }

// WallJumpRemaining is the time left in the wall jump lockout, zero when
// not wall jumping.
func (c *Controller) WallJumpRemaining() float64 {
	if !c.wallJumping {
		return 0
	}
	return math.Max(0, c.cfg.WallJumpDuration-c.wallJumpElapsed)
}

// SetConfig swaps the tunables, used when tuning files are reloaded.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}
