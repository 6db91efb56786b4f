// Package audio plays the game's sound cues: a short blip when food is eaten
// and a looping background tune that the player can toggle.
package audio

// Sink receives sound cues from the host. Implementations must be safe to
// call from the UI goroutine and must never block it.
type Sink interface {
	// PlayHit plays the food-eaten blip.
	PlayHit()
	// SetMusic starts or pauses the background loop.
	SetMusic(on bool)
	// Close stops all sound.
	Close()
}

// Nop is a Sink that plays nothing. SSH sessions and --mute use it.
type Nop struct{}

func (Nop) PlayHit()      {}
func (Nop) SetMusic(bool) {}
func (Nop) Close()        {}

var (
	_ Sink = Nop{}
	_ Sink = (*Player)(nil)
)
