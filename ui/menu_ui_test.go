package ui

import (
	"testing"

	"github.com/automoto/wallblade/components"
)

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		option   components.MainMenuOption
		selected bool
		want     string
	}{
		{components.MainMenuPlay, false, "Play"},
		{components.MainMenuPlay, true, "> Play <"},
		{components.MainMenuQuit, true, "> Quit <"},
	}
	for _, tt := range tests {
		if got := optionLabel(tt.option, tt.selected); got != tt.want {
			t.Errorf("optionLabel(%v, %t) = %q, want %q", tt.option, tt.selected, got, tt.want)
		}
	}
}
