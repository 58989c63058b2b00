package locomotion

// State is the player's locomotion state.
type State int

const (
	Grounded State = iota
	Airborne
	WallSliding
	WallJumping
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case WallSliding:
		return "wall_sliding"
	case WallJumping:
		return "wall_jumping"
	}
	return "unknown"
}

// Event reports something the controller did during a tick or callback.
type Event int

const (
	EventGroundJump Event = iota
	EventWallJump
	EventWallJumpEnd
	EventAttack
	EventAttackIgnored
	EventBlockStart
	EventBlockEnd
	EventHitboxOpen
	EventHitboxClose
	EventAttackHit
)

func (e Event) String() string {
	switch e {
	case EventGroundJump:
		return "ground jump"
	case EventWallJump:
		return "wall jump"
	case EventWallJumpEnd:
		return "wall jump lockout over"
	case EventAttack:
		return "attack triggered"
	case EventAttackIgnored:
		return "attack ignored (airborne)"
	case EventBlockStart:
		return "block on"
	case EventBlockEnd:
		return "block off"
	case EventHitboxOpen:
		return "sword hitbox enabled"
	case EventHitboxClose:
		return "sword hitbox disabled"
	case EventAttackHit:
		return "attack hit frame reached"
	}
	return "unknown"
}

// Animation channel names written by the controller.
const (
	ParamSpeed       = "Speed"
	ParamGrounded    = "isGrounded"
	ParamWallSliding = "isWallSliding"
	ParamYVelocity   = "yVelocity"
	ParamBlocking    = "isBlocking"
	TriggerJump      = "Jump"
	TriggerAttack    = "Attack"
)
