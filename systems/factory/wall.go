package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a walkable surface. The ground probe only reports
// contact with objects carrying the ground tag.
func CreateGround(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}

// CreateWall creates a vertical surface the player can slide down and
// jump off.
func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
