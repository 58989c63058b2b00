package config

// FrameEvent is fired by the animation driver when a clip enters a frame.
type FrameEvent string

const (
	EventEnableSwordHitbox  FrameEvent = "EnableSwordHitbox"
	EventDisableSwordHitbox FrameEvent = "DisableSwordHitbox"
	EventAttackHit          FrameEvent = "AttackHit"
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
	// Once plays the clip a single time and holds the last frame.
	Once   bool
	Events map[int][]FrameEvent
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {First: 0, Last: 5, Step: 1, Speed: 8},
		Running:   {First: 0, Last: 7, Step: 1, Speed: 5},
		Jump:      {First: 0, Last: 2, Step: 1, Speed: 6, Once: true},
		Fall:      {First: 0, Last: 1, Step: 1, Speed: 8},
		WallSlide: {First: 0, Last: 3, Step: 1, Speed: 6},
		Block:     {First: 0, Last: 0, Step: 1, Speed: 10},
		Attack: {
			First: 0, Last: 5, Step: 1, Speed: 4, Once: true,
			Events: map[int][]FrameEvent{
				2: {EventEnableSwordHitbox},
				3: {EventAttackHit},
				4: {EventDisableSwordHitbox},
			},
		},
	},
	"npc": {
		NPCIdle: {First: 0, Last: 3, Step: 1, Speed: 10},
		NPCWalk: {First: 0, Last: 5, Step: 1, Speed: 6},
	},
}
