package constellation

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vector3 is a position in a body-centered inertial frame.
// Walker positions are in km, Flower positions are in meters.
type Vector3 [3]float64

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns s * v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the inner product.
func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Norm returns the euclidean norm.
func (v Vector3) Norm() float64 {
	return floats.Norm(v[:], 2)
}

// EqualWithinAbs returns whether all components are within tol of each other.
func (v Vector3) EqualWithinAbs(o Vector3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbs(v[i], o[i], tol) {
			return false
		}
	}
	return true
}

// PolarToCartesian returns the Cartesian coordinates of the provided radius, polar angle
// and azimuth (both in radians), using the physics convention.
func PolarToCartesian(r, polar, azimuth float64) Vector3 {
	sθ, cθ := math.Sincos(polar)
	sφ, cφ := math.Sincos(azimuth)
	return Vector3{r * sθ * cφ, r * sθ * sφ, r * cθ}
}

// Spherical2Cartesian returns the provided spherical coordinates vector in Cartesian.
func Spherical2Cartesian(a Vector3) Vector3 {
	return PolarToCartesian(a[0], a[1], a[2])
}

// Cartesian2Spherical returns the provided Cartesian coordinates vector in spherical.
func Cartesian2Spherical(a Vector3) Vector3 {
	n := a.Norm()
	if n == 0 {
		return Vector3{}
	}
	return Vector3{n, math.Acos(a[2] / n), math.Atan2(a[1], a[0])}
}

// deg2rad is the only place where parameter angles leave degrees.
func deg2rad(a float64) float64 {
	return unit.AngleFromDeg(a).Rad()
}

// circle returns n points of the circle of radius r in the plane spanned by the two
// provided axes, for t in [0, 2π).
func circle(r float64, n int, u, w Axis) []Vector3 {
	if n <= 0 {
		return nil
	}
	pts := make([]Vector3, n)
	for k := range pts {
		s, c := math.Sincos(sample(k, n))
		var p Vector3
		p[u-1] = r * c
		p[w-1] = r * s
		pts[k] = p
	}
	return pts
}

// sample returns the k-th of n evenly spaced angles in [0, 2π).
func sample(k, n int) float64 {
	return 2 * math.Pi * float64(k) / float64(n)
}
