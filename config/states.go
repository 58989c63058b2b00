package config

// StateID names an animation clip.
type StateID int

const (
	StateNone StateID = iota

	// Player clips
	Idle
	Running
	Jump
	Fall
	WallSlide
	Attack
	Block

	// NPC clips
	NPCIdle
	NPCWalk
)

var StateToFileName = map[StateID]string{
	Idle:      "idle",
	Running:   "running",
	Jump:      "jump",
	Fall:      "fall",
	WallSlide: "wall_slide",
	Attack:    "attack",
	Block:     "block",
	NPCIdle:   "npc_idle",
	NPCWalk:   "npc_walk",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
