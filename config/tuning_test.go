package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	got, err := ParseTuning(embeddedTuning, CurrentTuning())
	if err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}
	if got != CurrentTuning() {
		t.Errorf("embedded tuning drifted from init defaults:\n got  %+v\n want %+v", got, CurrentTuning())
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  string
		validate func(t *testing.T, got Tuning)
	}{
		{
			name:    "partial overlay keeps other values",
			content: "player:\n  speed: 200\npatrol:\n  wait_time: 0.5\n",
			validate: func(t *testing.T, got Tuning) {
				if got.Player.Speed != 200 {
					t.Errorf("Player.Speed = %v, want 200", got.Player.Speed)
				}
				if got.Player.JumpForce != Player.JumpForce {
					t.Errorf("Player.JumpForce = %v, want unchanged %v", got.Player.JumpForce, Player.JumpForce)
				}
				if got.Patrol.WaitTime != 0.5 {
					t.Errorf("Patrol.WaitTime = %v, want 0.5", got.Patrol.WaitTime)
				}
			},
		},
		{
			name:    "empty document",
			content: "",
			validate: func(t *testing.T, got Tuning) {
				if got != CurrentTuning() {
					t.Errorf("empty document changed tuning: %+v", got)
				}
			},
		},
		{
			name:    "unknown key",
			content: "player:\n  sped: 10\n",
			wantErr: "sped",
		},
		{
			name:    "zero wall jump duration",
			content: "player:\n  wall_jump_duration: 0\n",
			wantErr: "wall_jump_duration",
		},
		{
			name:    "zero patrol speed",
			content: "patrol:\n  speed: 0\n",
			wantErr: "patrol speed",
		},
		{
			name:    "smoothing out of range",
			content: "camera:\n  follow_smoothing: 2\n",
			wantErr: "follow_smoothing",
		},
		{
			name:    "malformed yaml",
			content: "player: [",
			wantErr: "parse tuning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := CurrentTuning()
			got, err := ParseTuning([]byte(tt.content), base)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error %q does not mention %q", err, tt.wantErr)
				}
				if got != base {
					t.Fatal("failed parse must return the base tuning")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, got)
		})
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(func() { ApplyTuning(saved) })

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	version := TuningVersion
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if Physics.Gravity != 900 {
		t.Errorf("Physics.Gravity = %v, want 900", Physics.Gravity)
	}
	if TuningVersion != version+1 {
		t.Errorf("TuningVersion = %d, want %d", TuningVersion, version+1)
	}

	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if Physics.Gravity != 900 {
		t.Error("failed load must not change the globals")
	}
}
