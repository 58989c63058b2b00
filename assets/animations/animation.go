package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the clip by one tick and reports whether a different
// frame was entered.
func (a *Animation) Update() bool {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return false
	}

	a.frameCounter = a.SpeedInTps
	next := a.frame + a.Step
	if next > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			return false
		}
		// loop back to the beginning
		next = a.First
	}
	changed := next != a.frame
	a.frame = next
	return changed
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a clip that freezes on completion has reached
// its end.
func (a *Animation) Finished() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
