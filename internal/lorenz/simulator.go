package lorenz

import (
	"math"
	"sync"
)

// initialPosition off the attractor; the trajectory falls onto it within
// a few dozen steps.
var initialPosition = Point{X: 1, Y: 1, Z: 1}

// Simulator owns the integration state, the trajectory buffer and the
// projection rotation angle. Safe for concurrent use: the wake tick and
// the render tick arrive on different schedules.
type Simulator struct {
	mu         sync.Mutex
	pos        Point
	trajectory *Trajectory
	rotation   float64
	rotSpeed   float64
}

// NewSimulator creates a simulator with the given trajectory capacity and
// per-update rotation in radians.
func NewSimulator(maxPoints int, rotationSpeed float64) *Simulator {
	return &Simulator{
		pos:        initialPosition,
		trajectory: NewTrajectory(maxPoints),
		rotSpeed:   rotationSpeed,
	}
}

// Advance integrates n steps, appending each to the trajectory, then
// rotates the projection by one increment.
func (s *Simulator) Advance(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		s.pos = rk4Step(s.pos, Dt)
		s.trajectory.Push(s.pos)
	}
	s.rotation = math.Mod(s.rotation+s.rotSpeed, 2*math.Pi)
}

// Snapshot returns a copy of the trajectory points, the head point and
// the current rotation angle.
func (s *Simulator) Snapshot() ([]Point, Point, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trajectory.Points(), s.trajectory.Head(), s.rotation
}

// Rotation returns the current projection angle in radians.
func (s *Simulator) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// SetRotationSpeed changes the per-update rotation increment.
func (s *Simulator) SetRotationSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotSpeed = speed
}

// RotationSpeed returns the per-update rotation increment.
func (s *Simulator) RotationSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotSpeed
}

// SetCapacity resizes the trajectory buffer, keeping the newest points.
func (s *Simulator) SetCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trajectory.Resize(n)
}

// PointCount returns the number of stored trajectory points.
func (s *Simulator) PointCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trajectory.Len()
}

// Capacity returns the trajectory buffer capacity.
func (s *Simulator) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trajectory.Cap()
}

// Reset restarts the simulation from the initial position with an empty
// trajectory. Rotation is preserved so the face does not snap.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = initialPosition
	s.trajectory.Reset()
}
