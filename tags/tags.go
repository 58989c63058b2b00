package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	NPC              = donburi.NewTag().SetName("NPC")
	Ground           = donburi.NewTag().SetName("Ground")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Probe            = donburi.NewTag().SetName("Probe")
	Hitbox           = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvGround   = "ground"
	ResolvWall     = "wall"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvNPC      = "NPC"
	ResolvProbe    = "probe"
	ResolvHitbox   = "hitbox"
)
