package game

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-doom/model"
)

const sampleRate = 44100

type sound int

const (
	soundShot sound = iota
	soundHit
	soundHurt
	soundPickup
)

// Sounds plays short generated effects for simulation events.
type Sounds struct {
	enabled bool
	volume  float64
	ctx     *audio.Context
	clips   map[sound][]byte
}

func NewSounds(enabled bool, volume float64, log logrus.FieldLogger) *Sounds {
	s := &Sounds{enabled: enabled, volume: volume}
	if !enabled {
		return s
	}
	s.ctx = audio.NewContext(sampleRate)
	log.WithFields(logrus.Fields{"sample_rate": sampleRate, "volume": volume}).Debug("audio enabled")
	rng := rand.New(rand.NewPCG(1, 2))
	s.clips = map[sound][]byte{
		soundShot:   synth(0.12, func(t float64) float64 { return (rng.Float64()*2 - 1) * math.Exp(-t*30) }),
		soundHit:    synth(0.08, func(t float64) float64 { return square(220, t) * math.Exp(-t*40) }),
		soundHurt:   synth(0.2, func(t float64) float64 { return square(110-200*t, t) * math.Exp(-t*12) }),
		soundPickup: synth(0.15, func(t float64) float64 { return math.Sin(2*math.Pi*(660+2000*t)*t) * 0.6 }),
	}
	return s
}

// Handle plays the sound for each event that has one.
func (s *Sounds) Handle(events []model.Event) {
	for _, e := range events {
		switch e.Kind {
		case model.EventShot:
			s.play(soundShot)
		case model.EventHit:
			s.play(soundHit)
		case model.EventHurt:
			s.play(soundHurt)
		case model.EventPickup:
			s.play(soundPickup)
		}
	}
}

func (s *Sounds) play(id sound) {
	if !s.enabled {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.clips[id])
	p.SetVolume(s.volume)
	p.Play()
}

func square(freq, t float64) float64 {
	if math.Sin(2*math.Pi*freq*t) >= 0 {
		return 0.5
	}
	return -0.5
}

// synth renders seconds of wave into 16-bit little endian stereo PCM.
func synth(seconds float64, wave func(t float64) float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := max(-1, min(1, wave(float64(i)/sampleRate)))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
