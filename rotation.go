package constellation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Axis is one of the three principal axes of the body-centered inertial frame.
type Axis uint8

const (
	// AxisX is the first axis, pointing towards the reference direction.
	AxisX Axis = iota + 1
	// AxisY completes the right-handed equatorial plane.
	AxisY
	// AxisZ is the polar axis.
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		panic(fmt.Errorf("unknown axis %d", uint8(a)))
	}
}

// frame returns the frame rotation matrix about this axis.
func (a Axis) frame(x float64) *mat.Dense {
	switch a {
	case AxisX:
		return R1(x)
	case AxisY:
		return R2(x)
	case AxisZ:
		return R3(x)
	default:
		panic(fmt.Errorf("unknown axis %d", uint8(a)))
	}
}

// Rotate rotates the point p by θ radians about the provided axis.
// This is an active right-handed rotation, i.e. about z the point (x, y, z) becomes
// (x cosθ - y sinθ, x sinθ + y cosθ, z). It is the frame rotation by -θ.
func Rotate(p Vector3, θ float64, axis Axis) Vector3 {
	return MxV33(axis.frame(-θ), p)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v Vector3) Vector3 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return Vector3{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}
