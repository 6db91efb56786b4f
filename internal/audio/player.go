package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues through the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewPlayer initializes the speaker and returns a ready player. The music
// loop starts paused; call SetMusic to start it.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	p.music = &beep.Ctrl{Streamer: musicLoop(sampleRate), Paused: true}
	p.mixer.Add(p.music)
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// PlayHit plays the food-eaten blip over whatever is playing.
func (p *Player) PlayHit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(hitSound(sampleRate))
	speaker.Unlock()
}

// SetMusic resumes or pauses the background loop where it left off.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.music.Paused = !on
	speaker.Unlock()
}

// Close stops all sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
