package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProbe attaches an overlap probe to owner. The probe is a square
// around a circle of the given radius; the probe system refines the hit
// against the circle.
func CreateProbe(ecs *ecs.ECS, owner *donburi.Entry, data components.ProbeData, facing float64) *donburi.Entry {
	probe := archetypes.Probe.Spawn(ecs)

	data.Owner = owner
	size := data.Radius * 2
	o := components.Object.Get(owner)
	cx, cy := data.Center(o.X, o.Y, o.W, o.H, facing)

	obj := resolv.NewObject(cx-data.Radius, cy-data.Radius, size, size, tags.ResolvProbe)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = probe

	components.Probe.SetValue(probe, data)
	components.Object.SetValue(probe, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return probe
}
