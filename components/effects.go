package components

import "github.com/yohamta/donburi"

// FlashData tints an entity white for Remaining seconds.
type FlashData struct {
	Remaining float64
	Duration  float64
}

// Amount is the flash strength from 0 to 1.
func (f *FlashData) Amount() float64 {
	if f.Remaining <= 0 || f.Duration <= 0 {
		return 0
	}
	return f.Remaining / f.Duration
}

var Flash = donburi.NewComponentType[FlashData]()
