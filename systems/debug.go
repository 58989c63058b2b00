package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/fonts"
	"github.com/automoto/wallblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects, probes, hitboxes and patrol
// endpoints when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if obj.HasTags(tags.ResolvSolid) {
				v.stroke(screen, obj.X, obj.Y, obj.W, obj.H, color.RGBA{100, 100, 100, 255})
			}
		}
	}

	tags.Probe.Each(ecs.World, func(e *donburi.Entry) {
		probe := components.Probe.Get(e)
		o := components.Object.Get(e)
		c := cfg.UI.DebugProbeOff
		if probe.Hit {
			c = cfg.UI.DebugProbeOn
		}
		vector.StrokeCircle(screen,
			float32(o.X+probe.Radius+v.offX), float32(o.Y+probe.Radius+v.offY),
			float32(probe.Radius), 1, c, true)
	})

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		o := components.Object.Get(e)
		c := cfg.UI.DebugSword
		if hitbox.Kind == components.HitboxShield {
			c = cfg.UI.DebugShield
		}
		if !hitbox.Active {
			c.A = 80
		}
		v.stroke(screen, o.X, o.Y, o.W, o.H, c)
	})

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		npc := components.NPC.Get(e)
		for _, p := range []struct{ X, Y float64 }{{npc.A.X, npc.A.Y}, {npc.B.X, npc.B.Y}} {
			v.fill(screen, p.X-2, p.Y-2, 4, 4, cfg.UI.DebugPatrolEnd)
		}
	})

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		text.Draw(screen, debugStatus(playerEntry), fonts.Small.Get(),
			hudMargin, int(v.height)-hudMargin, cfg.UI.HUDTextColor)
	}
}

func debugStatus(e *donburi.Entry) string {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	ctrl := player.Controller
	return fmt.Sprintf("v=(%.0f, %.0f) ground=%t wall=%t lockout=%.2fs sword=%t hits=%d",
		physics.SpeedX, physics.SpeedY,
		probeHit(player.GroundProbe), probeHit(player.WallProbe),
		ctrl.WallJumpRemaining(), ctrl.IsSwordActive(), ctrl.AttackHits())
}
