package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/automoto/wallblade/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles synthesizing and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders and decodes a sound effect without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}

	data := SynthesizeWAV(tone, l.context.SampleRate())
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode sound %d: %w", id, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded sound %d: %w", id, err)
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeWAV renders a tone as a mono 16-bit PCM WAV file. The volume
// ramps out over the last quarter to avoid a click at the end.
func SynthesizeWAV(t config.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n < 0 {
		n = 0
	}

	var buf bytes.Buffer
	dataSize := uint32(n * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)

	phase := 0.0
	fadeStart := n * 3 / 4
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := math.Sin(phase)
		if t.Square {
			if s >= 0 {
				s = 1
			} else {
				s = -1
			}
		}

		amp := 0.3
		if i > fadeStart {
			amp *= float64(n-i) / float64(n-fadeStart)
		}
		_ = binary.Write(&buf, binary.LittleEndian, int16(s*amp*math.MaxInt16))
	}
	return buf.Bytes()
}
