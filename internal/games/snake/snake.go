package snake

// Ate is the outcome of one snake advance.
type Ate int

const (
	AteNone Ate = iota // moved onto an empty cell
	AteFood            // moved onto the food cell and grew
	AteSelf            // moved onto one of its own body segments
)

func (a Ate) String() string {
	switch a {
	case AteNone:
		return "none"
	case AteFood:
		return "food"
	case AteSelf:
		return "self"
	default:
		return "unknown"
	}
}

// TurnDecision is what RequestTurn did with a requested direction.
type TurnDecision int

const (
	TurnReject TurnDecision = iota
	TurnApply
	TurnQueue
)

func (t TurnDecision) String() string {
	switch t {
	case TurnApply:
		return "apply"
	case TurnQueue:
		return "queue"
	default:
		return "reject"
	}
}

// DecideTurn applies the turn-acceptance policy.
//
// current is the direction the next advance will use and lastApplied the
// direction the previous advance used. When they differ a turn is already in
// flight this tick, so a further turn is buffered rather than applied, which
// lets two quick presses (e.g. up then left while moving right) both land
// without ever reversing into the neck.
func DecideTurn(newDir, current, lastApplied Direction) TurnDecision {
	if current != lastApplied && newDir.Inverse() != current {
		return TurnQueue
	}
	if newDir.Inverse() != lastApplied {
		return TurnApply
	}
	return TurnReject
}

// Snake is the player's snake. It tracks its own head, body and heading and
// knows nothing about game state; the Game decides when it moves.
type Snake struct {
	board   Board
	head    Segment
	body    *Body
	dir     Direction
	lastDir Direction

	pending    Direction
	hasPending bool

	score int
}

// NewSnake creates a snake with its head at pos, facing right, and a single
// body segment on the cell to its left.
func NewSnake(board Board, pos Position) *Snake {
	body := NewBody(defaultBodyCapacity)
	body.PushFront(Segment{Pos: board.Move(pos, DirLeft)})
	return &Snake{
		board:   board,
		head:    Segment{Pos: pos},
		body:    body,
		dir:     DirRight,
		lastDir: DirRight,
	}
}

// Advance moves the snake one cell and reports what the new head hit.
// Self-collision takes precedence over food. The tail is only dropped when
// nothing was eaten, so eating grows the snake by exactly one segment.
func (s *Snake) Advance(food Position) Ate {
	if s.lastDir == s.dir && s.hasPending {
		s.dir = s.pending
		s.hasPending = false
	}

	next := s.board.Move(s.head.Pos, s.dir)
	s.body.PushFront(s.head)
	s.head = Segment{Pos: next}

	ate := AteNone
	switch {
	case s.body.Contains(next):
		ate = AteSelf
	case next == food:
		ate = AteFood
	}

	if ate == AteNone {
		s.body.PopBack()
	}
	s.lastDir = s.dir
	return ate
}

// RequestTurn asks the snake to change heading. Rejected requests are silent
// no-ops.
func (s *Snake) RequestTurn(d Direction) TurnDecision {
	decision := DecideTurn(d, s.dir, s.lastDir)
	switch decision {
	case TurnQueue:
		s.pending = d
		s.hasPending = true
	case TurnApply:
		s.dir = d
	}
	return decision
}

// Head returns the head position.
func (s *Snake) Head() Position { return s.head.Pos }

// Len returns the number of occupied cells, head included.
func (s *Snake) Len() int { return s.body.Len() + 1 }

// Direction returns the heading the next advance will use.
func (s *Snake) Direction() Direction { return s.dir }

// LastDirection returns the heading used by the previous advance.
func (s *Snake) LastDirection() Direction { return s.lastDir }

// Pending returns the buffered turn, if any.
func (s *Snake) Pending() (Direction, bool) { return s.pending, s.hasPending }

// Score returns the number of food items eaten.
func (s *Snake) Score() int { return s.score }

// AddScore increases the score by n.
func (s *Snake) AddScore(n int) { s.score += n }

// Body exposes the body deque (head excluded).
func (s *Snake) Body() *Body { return s.body }

// Segments returns every occupied cell, head first and tail last.
func (s *Snake) Segments() []Position {
	out := make([]Position, 0, s.Len())
	out = append(out, s.head.Pos)
	s.body.Each(func(_ int, seg Segment) bool {
		out = append(out, seg.Pos)
		return true
	})
	return out
}

// Occupies reports whether the head or any body segment is at pos.
func (s *Snake) Occupies(pos Position) bool {
	return s.head.Pos == pos || s.body.Contains(pos)
}
