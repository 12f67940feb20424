package constellation

import (
	"math"
)

const (
	km2m = 1e3
)

// GenerateFlower computes the satellite positions and orbit ellipses of a Flower constellation.
// Positions are in meters, like the semi-major axis. Each ellipse is discretized with the
// provided number of samples.
func GenerateFlower(p FlowerParams, bodies Bodies, samples int) (*Layout, error) {
	if err := p.Validate(bodies); err != nil {
		return nil, err
	}
	bodyRadius, _ := bodies.Radius(p.Focus)
	a := p.SemiMajor
	b := a * math.Sqrt(1-p.Eccentricity*p.Eccentricity)
	f := (p.Altitude + bodyRadius) * km2m
	disp := a - f
	i := deg2rad(p.Inclination)
	rBody := bodyRadius * km2m

	rings := p.NumOrbits
	if p.NumSatellites < rings {
		rings = p.NumSatellites
	}

	l := &Layout{
		Pattern:   PatternFlower,
		Positions: make([]Vector3, p.NumSatellites),
		ReferenceCircles: [][]Vector3{
			circle(rBody, samples, AxisX, AxisY),
			circle(rBody, samples, AxisX, AxisZ),
			circle(rBody, samples, AxisY, AxisZ),
		},
		PlaneCurves:     make([][]Vector3, rings),
		Reference:       Vector3{rBody, 0, 0},
		OccludingRadius: rBody,
		Unit:            "m",
	}
	l.Target = Rotate(l.Reference, p.RevisitTime*2*math.Pi, AxisZ)

	// Orbit outlines.
	for idy := 0; idy < rings; idy++ {
		Ω := deg2rad(p.RAAN[idy])
		var curve []Vector3
		if samples > 0 {
			curve = make([]Vector3, samples)
		}
		for k := range curve {
			pt := ellipsePoint(disp, a, b, sample(k, samples))
			pt = Rotate(pt, Ω, AxisZ)
			curve[k] = Rotate(pt, i, AxisX)
		}
		l.PlaneCurves[idy] = curve
	}

	// Satellites.
	for idy := 0; idy < p.NumSatellites; idy++ {
		pos := ellipsePoint(disp, a, b, deg2rad(p.TrueAnomaly[idy]+180))
		pos = Rotate(pos, deg2rad(p.RAAN[idy]), AxisZ)
		l.Positions[idy] = Rotate(pos, i, AxisX)
	}
	return l, nil
}

// ellipsePoint returns the point of the displaced ellipse at the parameter t.
func ellipsePoint(disp, a, b, t float64) Vector3 {
	s, c := math.Sincos(t)
	return Vector3{disp + a*c, b * s, 0}
}
