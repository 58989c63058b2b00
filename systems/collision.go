package systems

import (
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves physics bodies by their velocity and resolves them
// against solids, horizontal axis first.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := tickDuration()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveObjectVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
	})
}

// resolveObjectHorizontalCollision moves the object by dx, stopping flush
// against the first solid in the way.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solid := nearestBlocking(object, check, dx, 0); solid != nil {
		physics.SpeedX = 0
		dx = check.ContactWithObject(solid).X()
	}

	object.X += dx
}

// resolveObjectVerticalCollision moves the object by dy and records the
// solid it lands on. Resting bodies probe one pixel down so they stay
// grounded.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solid := nearestBlocking(object, check, 0, checkDistance)
	if solid == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		physics.SpeedY = 0
		object.Y += solid.Y + solid.H - object.Y
		return
	}

	physics.OnGround = solid
	physics.SpeedY = 0
	object.Y += solid.Y - object.Bottom()
}

// nearestBlocking returns the closest solid the object would overlap after
// moving by (dx, dy). Cell queries are coarse, so candidates are checked
// against the exact swept box and must start on the far side of the
// object's leading edge.
func nearestBlocking(object *resolv.Object, check *resolv.Collision, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	bestDist := 0.0

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !boxesOverlap(object.X+dx, object.Y+dy, object.W, object.H, solid) {
			continue
		}

		var dist float64
		switch {
		case dx > 0:
			dist = solid.X - (object.X + object.W)
		case dx < 0:
			dist = object.X - (solid.X + solid.W)
		case dy > 0:
			dist = solid.Y - object.Bottom()
		case dy < 0:
			dist = object.Y - (solid.Y + solid.H)
		}
		// Already overlapping on this axis; the other axis owns it.
		if dist < -collisionEpsilon {
			continue
		}

		if best == nil || dist < bestDist {
			best, bestDist = solid, dist
		}
	}
	return best
}

const collisionEpsilon = 0.001

func boxesOverlap(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}
