package animations

import "testing"

func TestAnimationAdvancesAfterSpeedTicks(t *testing.T) {
	a := NewAnimation(0, 2, 1, 2)

	// Speed 2 means the frame changes on the third tick.
	var changes []int
	for tick := 0; tick < 9; tick++ {
		if a.Update() {
			changes = append(changes, a.Frame())
		}
	}
	want := []int{1, 2, 0}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("changes = %v, want %v", changes, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0)
	a.FreezeOnComplete = true

	if !a.Update() || a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
	if a.Update() {
		t.Fatal("frozen clip reported a frame change")
	}
	if a.Frame() != 1 || !a.Finished() {
		t.Fatalf("frame=%d finished=%v", a.Frame(), a.Finished())
	}

	a.Restart()
	if a.Frame() != 0 || a.Finished() {
		t.Fatalf("after restart frame=%d finished=%v", a.Frame(), a.Finished())
	}
}
