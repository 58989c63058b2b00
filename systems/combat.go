package systems

import (
	"log"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes keeps sword and shield in front of their owner.
func UpdateHitboxes(ecs *ecs.ECS) {
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry).Object
		updateHitboxPosition(hitbox, hitboxObject)
	})
}

func updateHitboxPosition(hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	owner := hitbox.OwnerEntity
	if owner == nil || !owner.Valid() {
		return
	}

	ownerObject := components.Object.Get(owner).Object
	hitboxObject.X, hitboxObject.Y = hitbox.Place(
		ownerObject.X, ownerObject.Y, ownerObject.W, ownerObject.H, ownerFacing(owner))
}

// UpdateCombat applies active sword hitboxes to the NPCs they overlap.
// Each activation hits a given NPC once.
func UpdateCombat(ecs *ecs.ECS) {
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		if hitbox.Kind != components.HitboxSword || !hitbox.Active {
			return
		}
		checkHitboxCollisions(ecs, hitbox, components.Object.Get(hitboxEntry).Object)
	})
}

func checkHitboxCollisions(ecs *ecs.ECS, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	check := hitboxObject.Check(0, 0, tags.ResolvNPC)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvNPC) {
		targetEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, targetEntry) {
			continue
		}
		if !boxesOverlap(hitboxObject.X, hitboxObject.Y, hitboxObject.W, hitboxObject.H, obj) {
			continue
		}
		applyHitToNPC(ecs, targetEntry, hitbox)
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	// Don't hit the owner of the hitbox
	if hitbox.OwnerEntity == target || !target.Valid() {
		return false
	}
	return !hitbox.HitEntities[target]
}

func applyHitToNPC(ecs *ecs.ECS, npcEntry *donburi.Entry, hitbox *components.HitboxData) {
	hitbox.HitEntities[npcEntry] = true

	npc := components.NPC.Get(npcEntry)
	npc.Hits++
	log.Printf("[player] Sword hit %s (%d hits)", npc.Name, npc.Hits)

	PlaySFX(ecs, cfg.SoundHit)
	TriggerFlash(npcEntry, cfg.Combat.HitFlashDuration)
}
