package systems

import (
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/locomotion"
	"github.com/automoto/wallblade/patrol"
	"github.com/automoto/wallblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runThreshold is the Speed parameter above which the run clip plays.
const runThreshold = 0.01

// UpdateAnimations picks clips from the animator parameters, advances them
// and forwards authored frame events.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, updatePlayerAnimation)
	tags.NPC.Each(ecs.World, updateNPCAnimation)
}

func updatePlayerAnimation(e *donburi.Entry) {
	player := components.Player.Get(e)
	animator := components.Animator.Get(e)
	anim := components.Animation.Get(e)

	finished := anim.CurrentAnimation != nil && anim.CurrentAnimation.Finished()
	next, restart := selectPlayerClip(anim.CurrentSheet, finished, animator)

	// A swing cut short must not leave the sword live.
	if anim.CurrentSheet == cfg.Attack && (next != cfg.Attack || restart) && player.Controller.IsSwordActive() {
		player.Controller.OnHitboxWindowClose()
	}

	entered := anim.SetAnimation(next)
	if anim.CurrentAnimation == nil {
		return
	}
	if restart && !entered {
		anim.CurrentAnimation.Restart()
		entered = true
	}
	if !entered && !anim.CurrentAnimation.Update() {
		return
	}
	dispatchFrameEvents(player.Controller, anim.FrameEvents())
}

// selectPlayerClip is the player's animation graph. It consumes the
// Attack and Jump triggers and reports whether the chosen clip should
// restart from its first frame.
func selectPlayerClip(current cfg.StateID, finished bool, a *components.AnimatorData) (cfg.StateID, bool) {
	attack := a.ConsumeTrigger(locomotion.TriggerAttack)
	jump := a.ConsumeTrigger(locomotion.TriggerJump)

	if attack {
		// An attack already swinging plays out.
		if current == cfg.Attack && !finished {
			return cfg.Attack, false
		}
		return cfg.Attack, current == cfg.Attack
	}
	if current == cfg.Attack && !finished {
		return cfg.Attack, false
	}

	grounded := a.Bools[locomotion.ParamGrounded]
	switch {
	case a.Bools[locomotion.ParamBlocking]:
		return cfg.Block, false
	case a.Bools[locomotion.ParamWallSliding]:
		return cfg.WallSlide, false
	case jump:
		return cfg.Jump, current == cfg.Jump
	case !grounded && a.Floats[locomotion.ParamYVelocity] < 0:
		return cfg.Jump, false
	case !grounded:
		return cfg.Fall, false
	case a.Floats[locomotion.ParamSpeed] > runThreshold:
		return cfg.Running, false
	}
	return cfg.Idle, false
}

// FrameEventHandler receives authored animation events.
type FrameEventHandler interface {
	OnHitboxWindowOpen()
	OnHitboxWindowClose()
	OnAttackHit()
}

func dispatchFrameEvents(h FrameEventHandler, events []cfg.FrameEvent) {
	for _, ev := range events {
		switch ev {
		case cfg.EventEnableSwordHitbox:
			h.OnHitboxWindowOpen()
		case cfg.EventDisableSwordHitbox:
			h.OnHitboxWindowClose()
		case cfg.EventAttackHit:
			h.OnAttackHit()
		}
	}
}

func updateNPCAnimation(e *donburi.Entry) {
	animator := components.Animator.Get(e)
	anim := components.Animation.Get(e)

	clip := cfg.NPCIdle
	if animator.Bools[patrol.ParamWalking] {
		clip = cfg.NPCWalk
	}
	if !anim.SetAnimation(clip) && anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}
