package patrol

import (
	"errors"
	"fmt"
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

type recorder struct {
	walking bool
	sets    int
}

func (r *recorder) SetBool(name string, v bool) {
	if name == ParamWalking {
		r.walking = v
		r.sets++
	}
}

func testConfig() Config {
	return Config{Speed: 2, WaitTime: 2, ReachDistance: 0.1}
}

func TestNew(t *testing.T) {
	a, b := dmath.Vec2{X: 0}, dmath.Vec2{X: 10}

	if _, err := New(testConfig(), a, b, nil); !errors.Is(err, ErrNoAnimator) {
		t.Fatalf("nil animator: %v", err)
	}
	if _, err := New(testConfig(), a, a, &recorder{}); err == nil {
		t.Fatal("identical endpoints should fail")
	}
	bad := testConfig()
	bad.Speed = 0
	if _, err := New(bad, a, b, &recorder{}); err == nil {
		t.Fatal("zero speed should fail")
	}

	rec := &recorder{}
	p, err := New(testConfig(), a, b, rec)
	if err != nil {
		t.Fatal(err)
	}
	if p.Target() != b || p.Mode() != Moving || p.Facing() != 1 || !rec.walking {
		t.Fatalf("initial: target=%v mode=%v facing=%v walking=%v", p.Target(), p.Mode(), p.Facing(), rec.walking)
	}

	p, _ = New(testConfig(), b, a, &recorder{})
	if p.Facing() != -1 {
		t.Fatalf("facing = %v, want -1 when B is to the left", p.Facing())
	}
}

func TestStepDoesNotOvershoot(t *testing.T) {
	p, _ := New(testConfig(), dmath.Vec2{}, dmath.Vec2{X: 1}, &recorder{})

	pos := p.Tick(0.25, dmath.Vec2{})
	if math.Abs(pos.X-0.5) > 1e-9 {
		t.Fatalf("x = %v, want 0.5", pos.X)
	}
	pos = p.Tick(1, pos)
	if pos.X != 1 {
		t.Fatalf("x = %v, want clamp to 1", pos.X)
	}
	if p.Mode() != Waiting {
		t.Fatalf("mode = %v", p.Mode())
	}
}

func TestFullCycle(t *testing.T) {
	a, b := dmath.Vec2{X: 0, Y: 5}, dmath.Vec2{X: 4, Y: 5}
	rec := &recorder{}
	p, _ := New(testConfig(), a, b, rec)

	const dt = 0.1
	pos := a
	// 4 units at 2 u/s is 2 seconds of walking.
	for i := 0; i < 20 && p.Mode() == Moving; i++ {
		pos = p.Tick(dt, pos)
		if pos.X < a.X || pos.X > b.X || pos.Y != 5 {
			t.Fatalf("left the segment: %+v", pos)
		}
	}
	if p.Mode() != Waiting || rec.walking {
		t.Fatalf("mode=%v walking=%v", p.Mode(), rec.walking)
	}
	if p.Target() != a {
		t.Fatalf("target = %v, want A", p.Target())
	}
	if math.Abs(pos.X-4) > 0.1 {
		t.Fatalf("x = %v, want near 4", pos.X)
	}

	// Waiting holds position.
	held := pos
	for i := 0; i < 19; i++ {
		pos = p.Tick(dt, pos)
	}
	if pos != held || p.Mode() != Waiting {
		t.Fatalf("moved while waiting: %+v mode=%v", pos, p.Mode())
	}

	pos = p.Tick(dt, pos)
	if p.Mode() != Moving || !rec.walking {
		t.Fatalf("did not resume: mode=%v walking=%v", p.Mode(), rec.walking)
	}
	if p.Facing() != -1 {
		t.Fatalf("facing = %v, want -1 heading back to A", p.Facing())
	}

	for i := 0; i < 40 && p.Mode() == Moving; i++ {
		pos = p.Tick(dt, pos)
	}
	if p.Target() != b || p.Arrivals() != 2 {
		t.Fatalf("target=%v arrivals=%d", p.Target(), p.Arrivals())
	}
}

func TestWaitLastsExactlyWaitTime(t *testing.T) {
	for _, tps := range []int{10, 30, 60, 144} {
		t.Run(fmt.Sprintf("%d tps", tps), func(t *testing.T) {
			dt := 1 / float64(tps)
			p, _ := New(testConfig(), dmath.Vec2{}, dmath.Vec2{X: 0.05}, &recorder{})

			pos := p.Tick(dt, dmath.Vec2{})
			if p.Mode() != Waiting {
				t.Fatalf("mode = %v, want waiting after reaching B", p.Mode())
			}

			ticks := 0
			for p.Mode() == Waiting && ticks < 10*tps {
				pos = p.Tick(dt, pos)
				ticks++
			}
			if want := 2 * tps; ticks != want {
				t.Errorf("waited %d ticks, want %d", ticks, want)
			}
		})
	}
}

func TestZeroWaitResumesNextTick(t *testing.T) {
	cfg := testConfig()
	cfg.WaitTime = 0
	p, _ := New(cfg, dmath.Vec2{}, dmath.Vec2{X: 1}, &recorder{})

	pos := p.Tick(1, dmath.Vec2{})
	if p.Mode() != Waiting {
		t.Fatalf("mode = %v", p.Mode())
	}
	p.Tick(0.016, pos)
	if p.Mode() != Moving {
		t.Fatalf("mode = %v, want moving", p.Mode())
	}
}
