package factory

import (
	"fmt"

	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/locomotion"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlayerLocomotionConfig builds the controller config from the current
// tuning.
func PlayerLocomotionConfig() locomotion.Config {
	return locomotion.Config{
		Speed:            cfg.Player.Speed,
		JumpForce:        cfg.Player.JumpForce,
		WallSlideSpeed:   cfg.Player.WallSlideSpeed,
		WallJumpForce:    math.Vec2{X: cfg.Player.WallJumpForceX, Y: cfg.Player.WallJumpForceY},
		WallJumpDuration: cfg.Player.WallJumpDuration,
	}
}

// CreatePlayer spawns the player with its probes and hitboxes. The spawn
// point is where the player's feet start.
func CreatePlayer(ecs *ecs.ECS, spawn assets.PlayerSpawn) (*donburi.Entry, error) {
	if cfg.Probe.Radius <= 0 {
		return nil, fmt.Errorf("player probes need a positive radius, got %v", cfg.Probe.Radius)
	}
	locoCfg := PlayerLocomotionConfig()
	if err := locoCfg.Validate(); err != nil {
		return nil, err
	}

	facing := spawn.Facing
	if facing == 0 {
		facing = cfg.DirectionRight
	}

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	animator := components.NewAnimatorData()
	components.Animator.Set(player, animator)
	components.Animation.Set(player, GenerateAnimations("player", cfg.Idle))

	// Flash stays attached to avoid archetype thrashing.
	components.Flash.SetValue(player, components.FlashData{})

	sword := CreateHitbox(ecs, player, components.HitboxSword, cfg.Player.SwordWidth, cfg.Player.SwordHeight, facing)
	shield := CreateHitbox(ecs, player, components.HitboxShield, cfg.Player.ShieldWidth, cfg.Player.ShieldHeight, facing)

	ctrl, err := locomotion.New(locoCfg, animator,
		locomotion.WithSwordHitbox(components.HitboxToggle{Entry: sword}),
		locomotion.WithShieldHitbox(components.HitboxToggle{Entry: shield}),
		locomotion.WithFacing(facing),
	)
	if err != nil {
		return nil, err
	}

	groundProbe := CreateProbe(ecs, player, components.ProbeData{
		Kind:    components.ProbeGround,
		Tag:     tags.ResolvGround,
		Radius:  cfg.Probe.Radius,
		OffsetY: cfg.Probe.GroundOffset,
	}, facing)
	wallProbe := CreateProbe(ecs, player, components.ProbeData{
		Kind:    components.ProbeWall,
		Tag:     tags.ResolvWall,
		Radius:  cfg.Probe.Radius,
		OffsetX: cfg.Probe.WallOffsetX,
		OffsetY: cfg.Probe.WallOffsetY,
		Mirror:  true,
	}, facing)

	components.Player.SetValue(player, components.PlayerData{
		Controller:    ctrl,
		Facing:        facing,
		State:         ctrl.State(),
		GroundProbe:   groundProbe,
		WallProbe:     wallProbe,
		Sword:         sword,
		Shield:        shield,
		Spawn:         math.Vec2{X: spawn.X, Y: spawn.Y},
		TuningVersion: cfg.TuningVersion,
	})

	addToSpace(ecs, obj)

	return player, nil
}
