package locomotion

import (
	"errors"
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

type recorder struct {
	bools    map[string]bool
	floats   map[string]float64
	triggers map[string]int
}

func newRecorder() *recorder {
	return &recorder{
		bools:    map[string]bool{},
		floats:   map[string]float64{},
		triggers: map[string]int{},
	}
}

func (r *recorder) SetBool(name string, v bool)     { r.bools[name] = v }
func (r *recorder) SetFloat(name string, v float64) { r.floats[name] = v }
func (r *recorder) SetTrigger(name string)          { r.triggers[name]++ }

type toggle struct {
	on    bool
	calls int
}

func (t *toggle) SetEnabled(on bool) {
	t.on = on
	t.calls++
}

const dt = 0.05

func testConfig() Config {
	return Config{
		Speed:            5,
		JumpForce:        5,
		WallSlideSpeed:   2,
		WallJumpForce:    dmath.Vec2{X: 8, Y: 12},
		WallJumpDuration: 0.2,
	}
}

func newController(t *testing.T, opts ...Option) (*Controller, *recorder) {
	t.Helper()
	rec := newRecorder()
	c, err := New(testConfig(), rec, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, rec
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(testConfig(), nil); !errors.Is(err, ErrNoAnimator) {
		t.Fatalf("nil animator: got %v, want ErrNoAnimator", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"negative jump", func(c *Config) { c.JumpForce = -1 }},
		{"negative slide", func(c *Config) { c.WallSlideSpeed = -1 }},
		{"zero duration", func(c *Config) { c.WallJumpDuration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg, newRecorder()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewDisablesHitboxes(t *testing.T) {
	sword, shield := &toggle{on: true}, &toggle{on: true}
	newController(t, WithSwordHitbox(sword), WithShieldHitbox(shield))
	if sword.on || shield.on {
		t.Fatalf("hitboxes should start disabled: sword=%v shield=%v", sword.on, shield.on)
	}
}

func TestGroundedRun(t *testing.T) {
	c, rec := newController(t)

	cmd := c.Tick(dt, Sensors{Grounded: true}, Input{MoveX: 1})
	if !approx(cmd.Velocity.X, 5) || cmd.Velocity.Y != 0 {
		t.Fatalf("velocity = %+v, want (5, 0)", cmd.Velocity)
	}
	if cmd.Facing != 1 || cmd.State != Grounded {
		t.Fatalf("facing=%v state=%v", cmd.Facing, cmd.State)
	}
	if rec.floats[ParamSpeed] != 1 || !rec.bools[ParamGrounded] {
		t.Fatalf("params not published: %+v %+v", rec.floats, rec.bools)
	}

	cmd = c.Tick(dt, Sensors{Grounded: true}, Input{MoveX: -0.5})
	if !approx(cmd.Velocity.X, -2.5) || cmd.Facing != -1 {
		t.Fatalf("velocity=%+v facing=%v", cmd.Velocity, cmd.Facing)
	}
	if rec.floats[ParamSpeed] != 0.5 {
		t.Fatalf("Speed param = %v, want 0.5", rec.floats[ParamSpeed])
	}
}

func TestFacingDeadzone(t *testing.T) {
	c, _ := newController(t, WithFacing(-1))
	cmd := c.Tick(dt, Sensors{Grounded: true}, Input{MoveX: 0.005})
	if cmd.Facing != -1 {
		t.Fatalf("tiny input flipped facing to %v", cmd.Facing)
	}
	cmd = c.Tick(dt, Sensors{Grounded: true}, Input{})
	if cmd.Facing != -1 || cmd.Velocity.X != 0 {
		t.Fatalf("idle: facing=%v vx=%v", cmd.Facing, cmd.Velocity.X)
	}
}

func TestGroundJump(t *testing.T) {
	c, rec := newController(t)
	cmd := c.Tick(dt, Sensors{Grounded: true, Velocity: dmath.Vec2{Y: 1}}, Input{MoveX: 1, Jump: true})
	if cmd.Velocity.Y != -5 {
		t.Fatalf("vy = %v, want -5", cmd.Velocity.Y)
	}
	if rec.triggers[TriggerJump] != 1 || !hasEvent(cmd.Events, EventGroundJump) {
		t.Fatalf("jump not reported: triggers=%v events=%v", rec.triggers, cmd.Events)
	}
	if rec.floats[ParamYVelocity] != -5 {
		t.Fatalf("yVelocity param = %v", rec.floats[ParamYVelocity])
	}
}

func TestAirJumpIgnored(t *testing.T) {
	c, rec := newController(t)
	in := dmath.Vec2{X: 3, Y: 4}
	cmd := c.Tick(dt, Sensors{Velocity: in}, Input{Jump: true})
	if cmd.Velocity.Y != 4 {
		t.Fatalf("vy changed to %v", cmd.Velocity.Y)
	}
	if rec.triggers[TriggerJump] != 0 || len(cmd.Events) != 0 {
		t.Fatalf("unexpected jump: triggers=%v events=%v", rec.triggers, cmd.Events)
	}
	if cmd.State != Airborne {
		t.Fatalf("state = %v, want airborne", cmd.State)
	}
}

func TestWallSlideClamp(t *testing.T) {
	tests := []struct {
		name      string
		sensors   Sensors
		moveX     float64
		wantVY    float64
		wantState State
	}{
		{"falling fast against wall", Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: 10}}, 1, 2, WallSliding},
		{"falling slow against wall", Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: 1}}, 1, 1, WallSliding},
		{"rising against wall", Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: -4}}, 1, -4, WallSliding},
		{"no input", Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: 10}}, 0, 10, Airborne},
		{"grounded at wall", Sensors{Grounded: true, TouchingWall: true, Velocity: dmath.Vec2{Y: 10}}, 1, 10, Grounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newController(t)
			cmd := c.Tick(dt, tt.sensors, Input{MoveX: tt.moveX})
			if cmd.Velocity.Y != tt.wantVY {
				t.Fatalf("vy = %v, want %v", cmd.Velocity.Y, tt.wantVY)
			}
			if cmd.State != tt.wantState {
				t.Fatalf("state = %v, want %v", cmd.State, tt.wantState)
			}
			if rec.bools[ParamWallSliding] != (tt.wantState == WallSliding) {
				t.Fatalf("isWallSliding = %v", rec.bools[ParamWallSliding])
			}
		})
	}
}

func TestWallJumpLockout(t *testing.T) {
	c, _ := newController(t)
	wall := Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: 3}}

	// Pressing into a wall on the right.
	c.Tick(dt, wall, Input{MoveX: 1})
	cmd := c.Tick(dt, wall, Input{MoveX: 1, Jump: true})
	if cmd.State != WallJumping || !hasEvent(cmd.Events, EventWallJump) {
		t.Fatalf("state=%v events=%v", cmd.State, cmd.Events)
	}
	if cmd.Velocity.X != -8 || cmd.Velocity.Y != -12 {
		t.Fatalf("wall jump velocity = %+v, want (-8, -12)", cmd.Velocity)
	}
	if cmd.Facing != 1 {
		t.Fatalf("facing changed during wall jump: %v", cmd.Facing)
	}
	if !approx(c.WallJumpRemaining(), 0.2) {
		t.Fatalf("remaining = %v", c.WallJumpRemaining())
	}

	// Input is ignored horizontally for the next three ticks.
	v := cmd.Velocity
	for i := 0; i < 3; i++ {
		cmd = c.Tick(dt, Sensors{Velocity: v}, Input{MoveX: 1})
		if cmd.State != WallJumping {
			t.Fatalf("tick %d: state = %v", i, cmd.State)
		}
		if cmd.Velocity.X != -8 {
			t.Fatalf("tick %d: vx = %v, want -8", i, cmd.Velocity.X)
		}
		v = cmd.Velocity
	}

	// Four ticks is exactly the lockout.
	cmd = c.Tick(dt, Sensors{Velocity: v}, Input{MoveX: 1})
	if cmd.State != Airborne {
		t.Fatalf("state = %v, want airborne after lockout", cmd.State)
	}
	if !hasEvent(cmd.Events, EventWallJumpEnd) {
		t.Fatalf("missing lockout end event: %v", cmd.Events)
	}
	if cmd.Velocity.X != 5 {
		t.Fatalf("vx = %v, want 5 once control returns", cmd.Velocity.X)
	}
	if c.WallJumpRemaining() != 0 {
		t.Fatalf("remaining = %v", c.WallJumpRemaining())
	}
}

func TestWallJumpBlocksSlideAndAirJump(t *testing.T) {
	c, _ := newController(t, WithFacing(-1))
	wall := Sensors{TouchingWall: true, Velocity: dmath.Vec2{Y: 3}}
	cmd := c.Tick(dt, wall, Input{MoveX: -1, Jump: true})
	if cmd.State != WallJumping || cmd.Velocity.X != 8 {
		t.Fatalf("state=%v vx=%v", cmd.State, cmd.Velocity.X)
	}

	// Still touching the wall during the lockout: no slide, no second jump.
	cmd = c.Tick(dt, Sensors{TouchingWall: true, Velocity: dmath.Vec2{X: 8, Y: 10}}, Input{MoveX: -1, Jump: true})
	if cmd.State != WallJumping {
		t.Fatalf("state = %v", cmd.State)
	}
	if cmd.Velocity.Y != 10 || cmd.Velocity.X != 8 {
		t.Fatalf("velocity = %+v, want untouched (8, 10)", cmd.Velocity)
	}
}

func TestAttack(t *testing.T) {
	c, rec := newController(t)

	cmd := c.Tick(dt, Sensors{}, Input{Attack: true})
	if rec.triggers[TriggerAttack] != 0 || !hasEvent(cmd.Events, EventAttackIgnored) {
		t.Fatalf("airborne attack fired: triggers=%v events=%v", rec.triggers, cmd.Events)
	}

	cmd = c.Tick(dt, Sensors{Grounded: true}, Input{Attack: true})
	if rec.triggers[TriggerAttack] != 1 || !hasEvent(cmd.Events, EventAttack) {
		t.Fatalf("grounded attack missing: triggers=%v events=%v", rec.triggers, cmd.Events)
	}
}

func TestBlock(t *testing.T) {
	shield := &toggle{}
	c, rec := newController(t, WithShieldHitbox(shield))
	calls := shield.calls

	cmd := c.Tick(dt, Sensors{Grounded: true}, Input{Block: true})
	if !c.IsBlocking() || !shield.on || !rec.bools[ParamBlocking] {
		t.Fatalf("block on: blocking=%v shield=%v param=%v", c.IsBlocking(), shield.on, rec.bools[ParamBlocking])
	}
	if !hasEvent(cmd.Events, EventBlockStart) {
		t.Fatalf("events = %v", cmd.Events)
	}

	// Holding does not re-toggle.
	c.Tick(dt, Sensors{Grounded: true}, Input{Block: true})
	if shield.calls != calls+1 {
		t.Fatalf("shield toggled %d times, want 1", shield.calls-calls)
	}

	cmd = c.Tick(dt, Sensors{Grounded: true}, Input{})
	if c.IsBlocking() || shield.on || rec.bools[ParamBlocking] {
		t.Fatal("block did not release")
	}
	if !hasEvent(cmd.Events, EventBlockEnd) {
		t.Fatalf("events = %v", cmd.Events)
	}
}

func TestBlockWithoutShield(t *testing.T) {
	c, rec := newController(t)
	c.Tick(dt, Sensors{Grounded: true}, Input{Block: true})
	if !c.IsBlocking() || !rec.bools[ParamBlocking] {
		t.Fatal("block should work without a shield collider")
	}
}

func TestHitboxWindow(t *testing.T) {
	sword := &toggle{}
	c, _ := newController(t, WithSwordHitbox(sword))

	c.OnHitboxWindowClose()
	if sword.on || c.IsSwordActive() {
		t.Fatal("close without open changed the sword")
	}

	c.OnHitboxWindowOpen()
	if !sword.on || !c.IsSwordActive() {
		t.Fatal("open did not enable the sword")
	}
	c.OnAttackHit()
	c.OnHitboxWindowClose()
	if sword.on || c.IsSwordActive() {
		t.Fatal("close did not disable the sword")
	}
	if c.AttackHits() != 1 {
		t.Fatalf("hits = %d", c.AttackHits())
	}

	cmd := c.Tick(dt, Sensors{Grounded: true}, Input{})
	want := []Event{EventHitboxOpen, EventAttackHit, EventHitboxClose}
	if len(cmd.Events) != len(want) {
		t.Fatalf("events = %v, want %v", cmd.Events, want)
	}
	for i := range want {
		if cmd.Events[i] != want[i] {
			t.Fatalf("events = %v, want %v", cmd.Events, want)
		}
	}

	cmd = c.Tick(dt, Sensors{Grounded: true}, Input{})
	if len(cmd.Events) != 0 {
		t.Fatalf("events not drained: %v", cmd.Events)
	}
}

func TestSetConfig(t *testing.T) {
	c, _ := newController(t)
	cfg := testConfig()
	cfg.Speed = 10
	if err := c.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	cmd := c.Tick(dt, Sensors{Grounded: true}, Input{MoveX: 1})
	if cmd.Velocity.X != 10 {
		t.Fatalf("vx = %v", cmd.Velocity.X)
	}
	cfg.WallJumpDuration = -1
	if err := c.SetConfig(cfg); err == nil {
		t.Fatal("expected error for bad config")
	}
}
