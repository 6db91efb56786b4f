package snake

// EventKind identifies what happened during an update.
type EventKind int

const (
	EventFoodEaten    EventKind = iota // the snake ate; Score is the new score
	EventMusicToggled                  // the music flag flipped; MusicOn is the new value
	EventGameOver                      // the snake hit itself; Score and Length are final
	EventRestarted                     // a fresh round started
	EventQuit                          // the player asked to leave
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventMusicToggled:
		return "music_toggled"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a notification for the host: sound cues, score saving, exiting.
type Event struct {
	Kind    EventKind
	Score   int
	Length  int
	MusicOn bool
}
