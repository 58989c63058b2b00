package systems

import (
	"log"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning reloads the tuning file whenever the watcher reports a
// write, then pushes new values into live entities. A nil watcher only
// pushes values changed elsewhere.
func NewUpdateTuning(w *cfg.Watcher) ecs.System {
	return func(e *ecs.ECS) {
		if w != nil {
			drainTuningWatcher(w)
		}
		ApplyTuningChanges(e)
	}
}

func drainTuningWatcher(w *cfg.Watcher) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning %s: %v", path, err)
				continue
			}
			log.Printf("[tuning] Reloaded %s (version %d)", path, cfg.TuningVersion)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: Tuning watcher error: %v", err)
		default:
			return
		}
	}
}

// ApplyTuningChanges updates controllers, patrols and probes built with an
// older tuning version. Collision box sizes apply from the next spawn.
func ApplyTuningChanges(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.TuningVersion == cfg.TuningVersion {
			return
		}
		player.TuningVersion = cfg.TuningVersion

		if err := player.Controller.SetConfig(factory.PlayerLocomotionConfig()); err != nil {
			log.Printf("Warning: Player tuning rejected: %v", err)
		}

		physics := components.Physics.Get(entry)
		physics.Gravity = cfg.Physics.Gravity
		physics.MaxFallSpeed = cfg.Physics.MaxFallSpeed

		retuneProbe(player.GroundProbe, 0, cfg.Probe.GroundOffset)
		retuneProbe(player.WallProbe, cfg.Probe.WallOffsetX, cfg.Probe.WallOffsetY)
	})

	components.NPC.Each(e.World, func(entry *donburi.Entry) {
		npc := components.NPC.Get(entry)
		if npc.TuningVersion == cfg.TuningVersion || npc.Patrol == nil {
			return
		}
		npc.TuningVersion = cfg.TuningVersion

		if err := npc.Patrol.SetConfig(factory.NPCPatrolConfig(npc)); err != nil {
			log.Printf("Warning: Patrol tuning for %s rejected: %v", npc.Name, err)
		}
	})
}

func retuneProbe(e *donburi.Entry, offX, offY float64) {
	if e == nil || !e.Valid() {
		return
	}
	probe := components.Probe.Get(e)
	probe.OffsetX = offX
	probe.OffsetY = offY
	if cfg.Probe.Radius <= 0 {
		return
	}
	probe.Radius = cfg.Probe.Radius

	size := probe.Radius * 2
	obj := components.Object.Get(e)
	obj.W, obj.H = size, size
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
}
