package ectofx

// Trail is a bounded FIFO of recent positions. Pushing onto a full trail
// drops the oldest point. The backing array is allocated once.
type Trail struct {
	points []Vec2
	head   int
	count  int
}

// NewTrail creates a trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Vec2, capacity)}
}

// Push appends p, evicting the oldest point when the trail is full.
func (t *Trail) Push(p Vec2) {
	idx := (t.head + t.count) % len(t.points)
	if t.count == len(t.points) {
		t.points[t.head] = p
		t.head = (t.head + 1) % len(t.points)
		return
	}
	t.points[idx] = p
	t.count++
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the maximum number of stored points.
func (t *Trail) Cap() int {
	return len(t.points)
}

// AppendTo appends the points oldest-first to buf and returns it.
func (t *Trail) AppendTo(buf []Vec2) []Vec2 {
	for i := 0; i < t.count; i++ {
		buf = append(buf, t.points[(t.head+i)%len(t.points)])
	}
	return buf
}
