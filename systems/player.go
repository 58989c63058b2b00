package systems

import (
	"log"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := tickDuration()

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, playerInput(input), dt)
	})
}

// playerInput maps the polled actions onto controller input. Jump and
// attack are edges, block is held.
func playerInput(input *components.InputData) locomotion.Input {
	return locomotion.Input{
		MoveX:  input.MoveAxis,
		Jump:   GetAction(input, cfg.ActionJump).JustPressed,
		Attack: GetAction(input, cfg.ActionAttack).JustPressed,
		Block:  GetAction(input, cfg.ActionBlock).Pressed,
	}
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, in locomotion.Input, dt float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	sensors := locomotion.Sensors{
		Grounded:     probeHit(player.GroundProbe),
		TouchingWall: probeHit(player.WallProbe),
		Velocity:     math.Vec2{X: physics.SpeedX, Y: physics.SpeedY},
	}

	cmd := player.Controller.Tick(dt, sensors, in)

	physics.SpeedX = cmd.Velocity.X
	physics.SpeedY = cmd.Velocity.Y
	// Leaving the ground this tick; the collision pass decides landing.
	if cmd.Velocity.Y < 0 {
		physics.OnGround = nil
	}
	player.Facing = cmd.Facing
	player.State = cmd.State

	for _, ev := range cmd.Events {
		handlePlayerEvent(ecs, player, ev)
	}
}

func handlePlayerEvent(ecs *ecs.ECS, player *components.PlayerData, ev locomotion.Event) {
	switch ev {
	case locomotion.EventGroundJump:
		log.Printf("[player] Ground jump")
		PlaySFX(ecs, cfg.SoundJump)
	case locomotion.EventWallJump:
		log.Printf("[player] Wall jump")
		PlaySFX(ecs, cfg.SoundWallJump)
	case locomotion.EventAttack:
		log.Printf("[player] Attack triggered")
		PlaySFX(ecs, cfg.SoundSwing)
	case locomotion.EventBlockStart, locomotion.EventBlockEnd:
		log.Printf("[player] Block state: %t", player.Controller.IsBlocking())
		if ev == locomotion.EventBlockStart {
			PlaySFX(ecs, cfg.SoundBlock)
		}
	case locomotion.EventHitboxOpen:
		log.Printf("[player] Sword hitbox enabled")
	case locomotion.EventHitboxClose:
		log.Printf("[player] Sword hitbox disabled")
	case locomotion.EventAttackHit:
		log.Printf("[player] Attack hit frame reached")
	}
}

func probeHit(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	return components.Probe.Get(e).Hit
}
