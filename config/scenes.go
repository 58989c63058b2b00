package config

// Scene names accepted by the game's scene loader.
const (
	SceneMenu  = "Menu"
	SceneWorld = "World"
)
