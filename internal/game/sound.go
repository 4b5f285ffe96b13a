package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipFreq      = 380
	chimeLowFreq  = 523
	chimeHighFreq = 784
)

// sounds plays short generated tones for evasion and success feedback. A nil
// or failed-init receiver stays silent, so audio trouble never breaks the
// game itself.
type sounds struct {
	ready bool
}

func newSounds() (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return &sounds{}, err
	}
	return &sounds{ready: true}, nil
}

func (s *sounds) play(freqs []int, d time.Duration) {
	if s == nil || !s.ready {
		return
	}
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SinTone(sampleRate, f)
		if err != nil {
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(d), tone))
	}
	speaker.Play(beep.Seq(parts...))
}

func (s *sounds) blip() {
	s.play([]int{blipFreq}, 40*time.Millisecond)
}

func (s *sounds) chime() {
	s.play([]int{chimeLowFreq, chimeHighFreq}, 180*time.Millisecond)
}
