package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuSettings
	MainMenuQuit
)

func (o MainMenuOption) String() string {
	switch o {
	case MainMenuPlay:
		return "Play"
	case MainMenuSettings:
		return "Settings"
	case MainMenuQuit:
		return "Quit"
	}
	return ""
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // Current selection index in VisibleOptions
	VisibleOptions []MainMenuOption // Options to display
	Status         string           // Last message shown under the buttons
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
