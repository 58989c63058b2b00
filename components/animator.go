package components

import "github.com/yohamta/donburi"

// AnimatorData collects named animation parameters. Triggers stay set
// until the animation graph consumes them.
type AnimatorData struct {
	Bools    map[string]bool
	Floats   map[string]float64
	Triggers map[string]bool
}

func NewAnimatorData() *AnimatorData {
	return &AnimatorData{
		Bools:    make(map[string]bool),
		Floats:   make(map[string]float64),
		Triggers: make(map[string]bool),
	}
}

func (a *AnimatorData) SetBool(name string, v bool)     { a.Bools[name] = v }
func (a *AnimatorData) SetFloat(name string, v float64) { a.Floats[name] = v }
func (a *AnimatorData) SetTrigger(name string)          { a.Triggers[name] = true }

// ConsumeTrigger reports whether the trigger was set and clears it.
func (a *AnimatorData) ConsumeTrigger(name string) bool {
	if !a.Triggers[name] {
		return false
	}
	delete(a.Triggers, name)
	return true
}

var Animator = donburi.NewComponentType[AnimatorData]()
