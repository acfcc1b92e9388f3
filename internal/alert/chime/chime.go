// Package chime plays the burst signal on the local audio device. It is
// kept apart from package alert so that only binaries that play sound link
// the native audio backend.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/fireworks/internal/alert"
)

// SampleRate is the speaker's output rate.
const SampleRate = beep.SampleRate(44100)

// Tone is one beep of the chime.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones is the two-tone signal played when a firework bursts.
var Tones = []Tone{
	{Freq: 900, Duration: 80 * time.Millisecond},
	{Freq: 1300, Duration: 120 * time.Millisecond},
}

// New builds a streamer that plays tones back to back.
func New(sr beep.SampleRate, tones []Tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("chime: %.0f Hz tone: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(t.Duration), sine))
	}
	return beep.Seq(parts...), nil
}

// Speaker plays Tones on the default audio device. Playback is
// asynchronous, so the frame loop keeps its pace.
type Speaker struct {
	sr beep.SampleRate
}

// NewSpeaker initializes the audio device. Callers fall back to alert.Noop
// when it fails, e.g. on machines without a sound card.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("chime: init speaker: %w", err)
	}
	return &Speaker{sr: SampleRate}, nil
}

// Alert implements alert.Emitter.
func (s *Speaker) Alert() {
	chime, err := New(s.sr, Tones)
	if err != nil {
		return
	}
	speaker.Play(chime)
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

var _ alert.Emitter = (*Speaker)(nil)
