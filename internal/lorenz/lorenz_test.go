package lorenz

import (
	"math"
	"testing"
)

func TestDerivativeKnownValues(t *testing.T) {
	// At (1, 1, 1): dx = 10*(1-1) = 0, dy = 1*(28-1)-1 = 26, dz = 1*1 - 8/3.
	d := derivative(Point{X: 1, Y: 1, Z: 1})
	if math.Abs(d.X) > 1e-12 {
		t.Errorf("dx = %g, want 0", d.X)
	}
	if math.Abs(d.Y-26) > 1e-12 {
		t.Errorf("dy = %g, want 26", d.Y)
	}
	if math.Abs(d.Z-(1-Beta)) > 1e-12 {
		t.Errorf("dz = %g, want %g", d.Z, 1-Beta)
	}
}

func TestOriginIsFixedPoint(t *testing.T) {
	p := rk4Step(Point{}, Dt)
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		t.Errorf("origin moved to (%g, %g, %g)", p.X, p.Y, p.Z)
	}
}

func TestTrajectoryStaysBounded(t *testing.T) {
	// The attractor lives well inside |x|,|y| < 30, 0 < z < 55. Integrate
	// a few thousand steps and check the orbit never escapes.
	p := Point{X: 1, Y: 1, Z: 1}
	for i := 0; i < 5000; i++ {
		p = rk4Step(p, Dt)
		if math.Abs(p.X) > 100 || math.Abs(p.Y) > 100 || math.Abs(p.Z) > 100 {
			t.Fatalf("orbit escaped at step %d: (%g, %g, %g)", i, p.X, p.Y, p.Z)
		}
	}
}

func TestSensitivityToInitialConditions(t *testing.T) {
	a := Point{X: 1, Y: 1, Z: 1}
	b := Point{X: 1 + 1e-8, Y: 1, Z: 1}
	for i := 0; i < 2000; i++ {
		a = rk4Step(a, Dt)
		b = rk4Step(b, Dt)
	}
	sep := math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) + math.Abs(a.Z-b.Z)
	if sep < 1.0 {
		t.Errorf("nearby orbits separated by only %g after 2000 steps, expected chaotic divergence", sep)
	}
}

func TestTrajectoryRing(t *testing.T) {
	tr := NewTrajectory(3)
	if tr.Len() != 0 || tr.Points() != nil {
		t.Fatal("new trajectory not empty")
	}

	tr.Push(Point{X: 1})
	tr.Push(Point{X: 2})
	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
	if tr.Head().X != 2 {
		t.Errorf("Head.X = %g, want 2", tr.Head().X)
	}

	tr.Push(Point{X: 3})
	tr.Push(Point{X: 4}) // overwrites oldest

	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(pts))
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if pts[i].X != w {
			t.Errorf("Points[%d].X = %g, want %g", i, pts[i].X, w)
		}
	}

	tr.Reset()
	if tr.Len() != 0 || tr.Cap() != 3 {
		t.Errorf("after Reset: Len = %d, Cap = %d, want 0, 3", tr.Len(), tr.Cap())
	}
}

func TestTrajectoryResize(t *testing.T) {
	tr := NewTrajectory(4)
	for i := 1; i <= 4; i++ {
		tr.Push(Point{X: float64(i)})
	}

	// Shrinking keeps the newest points.
	tr.Resize(2)
	if tr.Cap() != 2 {
		t.Fatalf("Cap = %d, want 2", tr.Cap())
	}
	pts := tr.Points()
	if len(pts) != 2 || pts[0].X != 3 || pts[1].X != 4 {
		t.Errorf("Points after shrink = %v, want [{3} {4}]", pts)
	}

	// Growing keeps everything and raises the ceiling.
	tr.Resize(5)
	tr.Push(Point{X: 5})
	pts = tr.Points()
	if len(pts) != 3 || pts[0].X != 3 || pts[2].X != 5 {
		t.Errorf("Points after grow = %v, want [{3} {4} {5}]", pts)
	}

	// No-op sizes leave the buffer alone.
	tr.Resize(0)
	tr.Resize(5)
	if tr.Cap() != 5 || tr.Len() != 3 {
		t.Errorf("Cap, Len = %d, %d, want 5, 3", tr.Cap(), tr.Len())
	}
}

func TestSimulatorSetCapacity(t *testing.T) {
	sim := NewSimulator(500, 0.05)
	sim.Advance(100)
	head := sim.trajectory.Head()

	sim.SetCapacity(50)
	if got := sim.Capacity(); got != 50 {
		t.Errorf("Capacity = %d, want 50", got)
	}
	if got := sim.PointCount(); got != 50 {
		t.Errorf("PointCount = %d, want 50", got)
	}
	if sim.trajectory.Head() != head {
		t.Error("resize dropped the newest point")
	}
}

func TestSimulatorAdvance(t *testing.T) {
	sim := NewSimulator(500, 0.05)

	sim.Advance(5)
	if got := sim.PointCount(); got != 5 {
		t.Errorf("PointCount = %d, want 5", got)
	}
	if math.Abs(sim.Rotation()-0.05) > 1e-12 {
		t.Errorf("Rotation = %g, want 0.05", sim.Rotation())
	}

	// Capacity is a hard ceiling.
	for i := 0; i < 200; i++ {
		sim.Advance(5)
	}
	if got := sim.PointCount(); got != 500 {
		t.Errorf("PointCount after overflow = %d, want 500", got)
	}
}

func TestSimulatorRotationWraps(t *testing.T) {
	sim := NewSimulator(10, 1.0)
	for i := 0; i < 10; i++ {
		sim.Advance(1)
	}
	r := sim.Rotation()
	if r < 0 || r >= 2*math.Pi {
		t.Errorf("Rotation = %g, want wrapped into [0, 2π)", r)
	}
}

func TestSimulatorReset(t *testing.T) {
	sim := NewSimulator(100, 0.05)
	sim.Advance(50)
	rot := sim.Rotation()

	sim.Reset()
	if sim.PointCount() != 0 {
		t.Errorf("PointCount after Reset = %d, want 0", sim.PointCount())
	}
	if sim.Rotation() != rot {
		t.Errorf("Reset changed rotation: %g -> %g", rot, sim.Rotation())
	}

	// Restarts from the canonical initial position: identical first step.
	sim.Advance(1)
	fresh := NewSimulator(100, 0.05)
	fresh.Advance(1)
	if sim.trajectory.Head() != fresh.trajectory.Head() {
		t.Error("post-Reset trajectory differs from a fresh simulator")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	sim := NewSimulator(10, 0.05)
	sim.Advance(3)

	pts, head, _ := sim.Snapshot()
	if len(pts) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(pts))
	}
	if pts[len(pts)-1] != head {
		t.Error("head does not match last snapshot point")
	}

	pts[0] = Point{X: 999}
	again, _, _ := sim.Snapshot()
	if again[0].X == 999 {
		t.Error("snapshot shares backing storage with the simulator")
	}
}
