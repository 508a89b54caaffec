// Package lorenz integrates the Lorenz system and keeps a bounded
// trajectory for the watch face renderer.
package lorenz

// Classic chaotic parameter set.
const (
	Sigma = 10.0
	Rho   = 28.0
	Beta  = 8.0 / 3.0
	Dt    = 0.05
)

// Point is a position in the system's phase space.
type Point struct {
	X, Y, Z float64
}

// derivative evaluates the Lorenz equations at p.
func derivative(p Point) Point {
	return Point{
		X: Sigma * (p.Y - p.X),
		Y: p.X*(Rho-p.Z) - p.Y,
		Z: p.X*p.Y - Beta*p.Z,
	}
}

// rk4Step advances p by one Runge-Kutta 4th order step of size dt.
func rk4Step(p Point, dt float64) Point {
	k1 := derivative(p)
	k2 := derivative(p.add(k1.scale(dt / 2)))
	k3 := derivative(p.add(k2.scale(dt / 2)))
	k4 := derivative(p.add(k3.scale(dt)))

	sum := k1.add(k2.scale(2)).add(k3.scale(2)).add(k4)
	return p.add(sum.scale(dt / 6))
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point) scale(f float64) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}
