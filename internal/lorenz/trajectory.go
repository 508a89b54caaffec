package lorenz

// Trajectory is a circular buffer of phase-space points. Once full, new
// points overwrite the oldest so the tail of the attractor fades away.
type Trajectory struct {
	buf   []Point
	pos   int
	count int
}

// NewTrajectory creates an empty trajectory with the given capacity.
func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		buf: make([]Point, capacity),
	}
}

// Push adds a point to the trajectory.
func (t *Trajectory) Push(p Point) {
	t.buf[t.pos] = p
	t.pos = (t.pos + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Points returns the stored points in chronological order, oldest first.
func (t *Trajectory) Points() []Point {
	if t.count == 0 {
		return nil
	}
	result := make([]Point, t.count)
	if t.count < len(t.buf) {
		copy(result, t.buf[:t.count])
	} else {
		start := t.pos
		n := copy(result, t.buf[start:])
		copy(result[n:], t.buf[:start])
	}
	return result
}

// Head returns the most recent point, or a zero point if empty.
func (t *Trajectory) Head() Point {
	if t.count == 0 {
		return Point{}
	}
	idx := (t.pos - 1 + len(t.buf)) % len(t.buf)
	return t.buf[idx]
}

// Len returns the number of stored points.
func (t *Trajectory) Len() int {
	return t.count
}

// Cap returns the trajectory capacity.
func (t *Trajectory) Cap() int {
	return len(t.buf)
}

// Resize changes the capacity, keeping the most recent points that fit.
func (t *Trajectory) Resize(capacity int) {
	if capacity <= 0 || capacity == len(t.buf) {
		return
	}
	pts := t.Points()
	if len(pts) > capacity {
		pts = pts[len(pts)-capacity:]
	}
	t.buf = make([]Point, capacity)
	t.pos = 0
	t.count = 0
	for _, p := range pts {
		t.Push(p)
	}
}

// Reset drops all stored points without reallocating.
func (t *Trajectory) Reset() {
	t.pos = 0
	t.count = 0
}
