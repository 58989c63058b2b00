package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var embeddedTuning []byte

// Tuning groups the values that can be changed without rebuilding.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Probe   ProbeConfig   `yaml:"probe"`
	Patrol  PatrolConfig  `yaml:"patrol"`
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
	Camera  CameraConfig  `yaml:"camera"`
}

// TuningVersion increments every time ApplyTuning replaces the globals.
// Systems compare it against the version they last saw.
var TuningVersion int

// CurrentTuning snapshots the global tunables.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Probe:   Probe,
		Patrol:  Patrol,
		Physics: Physics,
		Combat:  Combat,
		Camera:  Camera,
	}
}

// ParseTuning overlays the YAML document on base. Keys missing from the
// document keep their base value; unknown keys are an error.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	switch {
	case t.Player.Speed < 0, t.Player.JumpForce < 0, t.Player.WallSlideSpeed < 0:
		return errors.New("tuning: player speeds must not be negative")
	case t.Player.WallJumpForceX < 0, t.Player.WallJumpForceY < 0:
		return errors.New("tuning: wall jump force must not be negative")
	case t.Player.WallJumpDuration <= 0:
		return fmt.Errorf("tuning: wall_jump_duration must be positive, got %v", t.Player.WallJumpDuration)
	case t.Player.CollisionWidth <= 0, t.Player.CollisionHeight <= 0:
		return errors.New("tuning: player collision box must be positive")
	case t.Probe.Radius <= 0:
		return fmt.Errorf("tuning: probe radius must be positive, got %v", t.Probe.Radius)
	case t.Patrol.Speed <= 0:
		return fmt.Errorf("tuning: patrol speed must be positive, got %v", t.Patrol.Speed)
	case t.Patrol.WaitTime < 0, t.Patrol.ReachDistance < 0:
		return errors.New("tuning: patrol wait_time and reach_distance must not be negative")
	case t.Patrol.CollisionWidth <= 0, t.Patrol.CollisionHeight <= 0:
		return errors.New("tuning: patrol collision box must be positive")
	case t.Physics.Gravity < 0, t.Physics.MaxFallSpeed <= 0:
		return errors.New("tuning: gravity must not be negative and max_fall_speed must be positive")
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("tuning: cell_size must be positive, got %d", t.Physics.CellSize)
	case t.Camera.FollowSmoothing <= 0 || t.Camera.FollowSmoothing > 1:
		return fmt.Errorf("tuning: follow_smoothing must be in (0, 1], got %v", t.Camera.FollowSmoothing)
	}
	return nil
}

// ApplyTuning replaces the global tunables.
func ApplyTuning(t Tuning) {
	Player = t.Player
	Probe = t.Probe
	Patrol = t.Patrol
	Physics = t.Physics
	Combat = t.Combat
	Camera = t.Camera
	TuningVersion++
}

// LoadTuning applies the tuning file at path, or the embedded tuning when
// path is empty.
func LoadTuning(path string) error {
	data := embeddedTuning
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return err
		}
	}

	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return err
	}
	ApplyTuning(t)
	return nil
}
