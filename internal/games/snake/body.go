package snake

// Segment is one occupied cell of the snake.
type Segment struct {
	Pos Position
}

const defaultBodyCapacity = 16

// Body is a double-ended queue of segments backed by a ring buffer.
// Index 0 is the segment directly behind the head; the last index is the tail.
// PushFront and PopBack are O(1) amortized.
type Body struct {
	buf  []Segment
	head int // index of the front element in buf
	n    int
}

// NewBody creates an empty body with room for capacity segments before it
// has to grow.
func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = defaultBodyCapacity
	}
	return &Body{buf: make([]Segment, capacity)}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// PushFront inserts seg in front of the current first segment.
func (b *Body) PushFront(seg Segment) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = seg
	b.n++
}

// PopBack removes and returns the tail segment.
// It returns false when the body is empty.
func (b *Body) PopBack() (Segment, bool) {
	if b.n == 0 {
		return Segment{}, false
	}
	idx := (b.head + b.n - 1) % len(b.buf)
	seg := b.buf[idx]
	b.buf[idx] = Segment{}
	b.n--
	return seg, true
}

// At returns the segment at index i, counted from the front.
// It panics if i is out of range, like a slice index would.
func (b *Body) At(i int) Segment {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.buf[(b.head+i)%len(b.buf)]
}

// Each calls fn for every segment from front to tail. Iteration stops early
// when fn returns false.
func (b *Body) Each(fn func(i int, seg Segment) bool) {
	for i := 0; i < b.n; i++ {
		if !fn(i, b.buf[(b.head+i)%len(b.buf)]) {
			return
		}
	}
}

// Contains reports whether any segment occupies pos.
func (b *Body) Contains(pos Position) bool {
	found := false
	b.Each(func(_ int, seg Segment) bool {
		if seg.Pos == pos {
			found = true
			return false
		}
		return true
	})
	return found
}

func (b *Body) grow() {
	next := make([]Segment, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.buf[(b.head+i)%len(b.buf)]
	}
	b.buf = next
	b.head = 0
}
