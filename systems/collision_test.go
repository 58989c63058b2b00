package systems

import (
	"testing"

	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
)

func newSolid(x, y, w, h float64, extra ...string) *resolv.Object {
	return resolv.NewObject(x, y, w, h, append([]string{tags.ResolvSolid}, extra...)...)
}

// testSpace builds a 320x240 space with ground along y=200 and a wall
// whose left face is at x=140.
func testSpace() (*resolv.Space, *resolv.Object, *resolv.Object) {
	space := resolv.NewSpace(320, 240, 16, 16)
	ground := newSolid(0, 200, 320, 40, tags.ResolvGround)
	wall := newSolid(140, 0, 20, 200, tags.ResolvWall)
	space.Add(ground, wall)
	return space, ground, wall
}

func TestVerticalCollisionLands(t *testing.T) {
	space, ground, _ := testSpace()
	body := resolv.NewObject(100, 160, 16, 32)
	space.Add(body)

	physics := &components.PhysicsData{SpeedY: 300}
	resolveObjectVerticalCollision(physics, body, 10)

	if physics.OnGround != ground {
		t.Fatalf("OnGround = %v, want the ground", physics.OnGround)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0", physics.SpeedY)
	}
	if body.Bottom() != 200 {
		t.Errorf("bottom = %v, want flush at 200", body.Bottom())
	}

	// Resting bodies stay grounded without moving.
	body.Update()
	resolveObjectVerticalCollision(physics, body, 0)
	if physics.OnGround != ground || body.Bottom() != 200 {
		t.Errorf("resting body lost the ground: OnGround=%v bottom=%v", physics.OnGround, body.Bottom())
	}
}

func TestVerticalCollisionFreeFall(t *testing.T) {
	space, _, _ := testSpace()
	body := resolv.NewObject(40, 20, 16, 32)
	space.Add(body)

	physics := &components.PhysicsData{SpeedY: 120}
	resolveObjectVerticalCollision(physics, body, 2)

	if physics.OnGround != nil {
		t.Error("body far above the ground should be airborne")
	}
	if body.Y != 22 {
		t.Errorf("Y = %v, want 22", body.Y)
	}
	if physics.SpeedY != 120 {
		t.Errorf("SpeedY = %v, want unchanged", physics.SpeedY)
	}
}

func TestVerticalCollisionCeiling(t *testing.T) {
	space := resolv.NewSpace(320, 240, 16, 16)
	ceiling := newSolid(0, 0, 320, 16)
	space.Add(ceiling)
	body := resolv.NewObject(100, 20, 16, 32)
	space.Add(body)

	physics := &components.PhysicsData{SpeedY: -400}
	resolveObjectVerticalCollision(physics, body, -8)

	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0 after bumping the ceiling", physics.SpeedY)
	}
	if body.Y != 16 {
		t.Errorf("Y = %v, want flush under the ceiling at 16", body.Y)
	}
	if physics.OnGround != nil {
		t.Error("a ceiling is not ground")
	}
}

func TestHorizontalCollisionStopsAtWall(t *testing.T) {
	space, _, _ := testSpace()
	body := resolv.NewObject(100, 168, 16, 32)
	space.Add(body)

	physics := &components.PhysicsData{SpeedX: 160}
	resolveObjectHorizontalCollision(physics, body, 30)

	if physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v, want 0", physics.SpeedX)
	}
	if body.X+body.W != 140 {
		t.Errorf("right edge = %v, want flush at 140", body.X+body.W)
	}
}

func TestHorizontalCollisionIgnoresFloor(t *testing.T) {
	space, _, _ := testSpace()
	// Standing on the ground, walking away from the wall.
	body := resolv.NewObject(60, 168, 16, 32)
	space.Add(body)

	physics := &components.PhysicsData{SpeedX: -160}
	resolveObjectHorizontalCollision(physics, body, -5)

	if body.X != 55 {
		t.Errorf("X = %v, want 55", body.X)
	}
	if physics.SpeedX != -160 {
		t.Errorf("SpeedX = %v, want unchanged", physics.SpeedX)
	}
}

func TestProbeHits(t *testing.T) {
	space, _, _ := testSpace()

	tests := []struct {
		name   string
		cx, cy float64
		tag    string
		want   bool
	}{
		{"touching ground", 108, 201, tags.ResolvGround, true},
		{"same cell but out of reach", 108, 190, tags.ResolvGround, false},
		{"touching wall", 138, 100, tags.ResolvWall, true},
		{"ground is not a wall", 108, 201, tags.ResolvWall, false},
	}

	const r = 3.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := resolv.NewObject(tt.cx-r, tt.cy-r, r*2, r*2, tags.ResolvProbe)
			space.Add(probe)
			defer space.Remove(probe)

			if got := probeHits(probe, tt.tag, tt.cx, tt.cy, r); got != tt.want {
				t.Errorf("probeHits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxesOverlap(t *testing.T) {
	o := resolv.NewObject(10, 10, 10, 10)
	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"inside", 12, 12, 2, 2, true},
		{"touching edge", 20, 10, 5, 5, false},
		{"left of", 0, 10, 5, 5, false},
		{"partial", 5, 15, 10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boxesOverlap(tt.x, tt.y, tt.w, tt.h, o); got != tt.want {
				t.Errorf("boxesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}
