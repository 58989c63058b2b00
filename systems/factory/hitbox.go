package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox attaches a disabled hitbox in front of owner.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, kind components.HitboxKind, w, h, facing float64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	data := components.HitboxData{
		OwnerEntity: owner,
		Kind:        kind,
		Width:       w,
		Height:      h,
		HitEntities: make(map[*donburi.Entry]bool),
	}
	o := components.Object.Get(owner)
	x, y := data.Place(o.X, o.Y, o.W, o.H, facing)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox

	components.Hitbox.SetValue(hitbox, data)
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return hitbox
}
