package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundWallJump
	SoundSwing
	SoundHit
	SoundBlock
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone describes a synthesized blip. Frequency sweeps linearly from
// StartHz to EndHz over Duration seconds.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Square   bool
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {StartHz: 320, EndHz: 640, Duration: 0.08},
			SoundWallJump:     {StartHz: 420, EndHz: 880, Duration: 0.10},
			SoundSwing:        {StartHz: 900, EndHz: 300, Duration: 0.06, Square: true},
			SoundHit:          {StartHz: 180, EndHz: 90, Duration: 0.12, Square: true},
			SoundBlock:        {StartHz: 220, EndHz: 220, Duration: 0.05, Square: true},
			SoundMenuNavigate: {StartHz: 660, EndHz: 660, Duration: 0.03},
			SoundMenuSelect:   {StartHz: 520, EndHz: 1040, Duration: 0.07},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:          1.5,
			SoundMenuNavigate: 0.6,
		},
	}
}
