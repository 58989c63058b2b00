package systems

import (
	"math"
	"testing"

	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/locomotion"
	"github.com/automoto/wallblade/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func testLevel() *assets.Level {
	return &assets.Level{
		Name:   "test",
		Width:  640,
		Height: 360,
		Ground: []assets.Rect{{X: 0, Y: 300, Width: 640, Height: 60}},
		Walls:  []assets.Rect{{X: 600, Y: 0, Width: 40, Height: 300}},
		PlayerSpawns: []assets.PlayerSpawn{
			{X: 100, Y: 250, Facing: 1},
		},
		NPCs: []assets.NPCSpawn{
			{Name: "guard", A: dmath.Vec2{X: 300, Y: 300}, B: dmath.Vec2{X: 400, Y: 300}},
		},
	}
}

func newTestWorld(t *testing.T, level *assets.Level) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateAudio(e)
	getOrCreateInput(e)

	player, err := factory.PopulateWorld(e, level)
	if err != nil {
		t.Fatalf("PopulateWorld: %v", err)
	}
	return e, player
}

func runTicks(e *ecs.ECS, n int) {
	systems := Gameplay()
	for i := 0; i < n; i++ {
		for _, system := range systems {
			system(e)
		}
	}
}

func TestPopulateWorldRejectsBadLevels(t *testing.T) {
	level := testLevel()
	level.PlayerSpawns = nil
	if _, err := factory.PopulateWorld(ecs.NewECS(donburi.NewWorld()), level); err == nil {
		t.Error("expected an error without a player spawn")
	}

	level = testLevel()
	level.NPCs[0].B = level.NPCs[0].A
	if _, err := factory.PopulateWorld(ecs.NewECS(donburi.NewWorld()), level); err == nil {
		t.Error("expected an error for an NPC with identical endpoints")
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	e, player := newTestWorld(t, testLevel())

	runTicks(e, 90)

	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)
	data := components.Player.Get(player)

	if physics.OnGround == nil {
		t.Fatal("player never landed")
	}
	if math.Abs(obj.Bottom()-300) > 1e-6 {
		t.Errorf("feet at %v, want 300", obj.Bottom())
	}
	if data.State != locomotion.Grounded {
		t.Errorf("state = %v, want grounded", data.State)
	}
	if !probeHit(data.GroundProbe) {
		t.Error("ground probe should touch the ground")
	}
	if probeHit(data.WallProbe) {
		t.Error("wall probe should be clear in the open")
	}
}

func TestNPCPatrolsTowardB(t *testing.T) {
	e, _ := newTestWorld(t, testLevel())

	npcEntry, ok := components.NPC.First(e.World)
	if !ok {
		t.Fatal("no NPC spawned")
	}

	runTicks(e, 60)

	obj := components.Object.Get(npcEntry)
	feetX := obj.X + obj.W/2
	if feetX <= 300 || feetX > 400 {
		t.Errorf("feet x = %v, want between A and B", feetX)
	}
	if math.Abs(obj.Bottom()-300) > 1e-6 {
		t.Errorf("feet y = %v, want 300", obj.Bottom())
	}
}

func TestSwordHitsNPCOncePerSwing(t *testing.T) {
	level := testLevel()
	level.PlayerSpawns[0] = assets.PlayerSpawn{X: 100, Y: 300, Facing: 1}
	level.NPCs[0] = assets.NPCSpawn{Name: "dummy", A: dmath.Vec2{X: 120, Y: 300}, B: dmath.Vec2{X: 300, Y: 300}}
	e, player := newTestWorld(t, level)

	npcEntry, _ := components.NPC.First(e.World)
	ctrl := components.Player.Get(player).Controller

	ctrl.OnHitboxWindowOpen()
	for i := 0; i < 2; i++ {
		UpdateHitboxes(e)
		UpdateObjects(e)
		UpdateCombat(e)
	}

	npc := components.NPC.Get(npcEntry)
	if npc.Hits != 1 {
		t.Fatalf("hits = %d, want 1 for a single swing", npc.Hits)
	}
	if flash := components.Flash.Get(npcEntry); flash.Remaining != cfg.Combat.HitFlashDuration {
		t.Errorf("flash = %v, want %v", flash.Remaining, cfg.Combat.HitFlashDuration)
	}

	// A new swing may hit again.
	ctrl.OnHitboxWindowClose()
	ctrl.OnHitboxWindowOpen()
	UpdateCombat(e)
	if npc = components.NPC.Get(npcEntry); npc.Hits != 2 {
		t.Errorf("hits = %d, want 2 after a second swing", npc.Hits)
	}
}

func TestAttackAnimationDrivesSword(t *testing.T) {
	e, player := newTestWorld(t, testLevel())
	runTicks(e, 90)

	input := getOrCreateInput(e)
	input.Current[cfg.ActionAttack] = true
	runTicks(e, 1)
	input.Current[cfg.ActionAttack] = false

	ctrl := components.Player.Get(player).Controller
	sword := components.Player.Get(player).Sword
	sawActive := false
	for i := 0; i < 40; i++ {
		runTicks(e, 1)
		if components.Hitbox.Get(sword).Active {
			sawActive = true
		}
	}

	if !sawActive {
		t.Error("sword never opened during the attack")
	}
	if components.Hitbox.Get(sword).Active || ctrl.IsSwordActive() {
		t.Error("sword still open after the attack finished")
	}
	if ctrl.AttackHits() != 1 {
		t.Errorf("attack hit markers = %d, want 1", ctrl.AttackHits())
	}
}

func TestAirborneAttackDoesNothing(t *testing.T) {
	e, player := newTestWorld(t, testLevel())

	input := getOrCreateInput(e)
	input.Current[cfg.ActionAttack] = true
	runTicks(e, 1)
	input.Current[cfg.ActionAttack] = false
	runTicks(e, 30)

	anim := components.Animation.Get(player)
	if anim.CurrentSheet == cfg.Attack {
		t.Error("attack clip played while airborne")
	}
	if components.Player.Get(player).Controller.AttackHits() != 0 {
		t.Error("attack hit marker fired while airborne")
	}
}
