package snake

import "math/rand"

// maxRespawnAttempts bounds the search for a free cell when food is told to
// avoid the snake. A nearly full board falls back to the last candidate.
const maxRespawnAttempts = 64

// Food is the single food item on the board.
type Food struct {
	Pos Position
}

// Respawn moves the food to a random cell. It may land on the snake unless
// avoid is non-nil, in which case occupied cells are retried a bounded number
// of times.
func (f *Food) Respawn(board Board, rng *rand.Rand, avoid *Snake) {
	pos := board.RandomPosition(rng)
	if avoid != nil {
		for i := 1; i < maxRespawnAttempts && avoid.Occupies(pos); i++ {
			pos = board.RandomPosition(rng)
		}
	}
	f.Pos = pos
}
