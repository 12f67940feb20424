package constellation

import (
	"math"
)

const (
	secondsPerDay = 24 * 60 * 60
)

// Layout is the snapshot geometry of a constellation, before any visibility evaluation.
type Layout struct {
	Pattern          Pattern
	Positions        []Vector3   // one per satellite, in satellite index order
	PlaneCurves      [][]Vector3 // one discretized ring or ellipse per plotted orbital plane
	ReferenceCircles [][]Vector3 // equatorial (and meridian) guide circles
	Reference        Vector3     // target point before the revisit rotation
	Target           Vector3     // target point after the revisit rotation
	OccludingRadius  float64     // physical radius of the focus body, in the layout's unit
	Unit             string
}

// GenerateWalker computes the satellite positions and plane rings of a Walker constellation.
// Positions are in km. Each ring is discretized with the provided number of samples.
func GenerateWalker(p WalkerParams, bodies Bodies, samples int) (*Layout, error) {
	if err := p.Validate(bodies); err != nil {
		return nil, err
	}
	bodyRadius, _ := bodies.Radius(p.Focus)
	r := p.Altitude + bodyRadius
	i := deg2rad(p.Inclination)

	planeRange := 360.0
	if math.Mod(p.Inclination, 90) == 0 {
		// Polar and equatorial planes repeat after half a turn.
		planeRange = 180
	}

	l := &Layout{
		Pattern:          PatternWalker,
		Positions:        make([]Vector3, 0, p.NumSatellites()),
		PlaneCurves:      make([][]Vector3, p.NumPlanes),
		ReferenceCircles: [][]Vector3{circle(r, samples, AxisX, AxisY)},
		Reference:        Vector3{r, 0, 0},
		OccludingRadius:  bodyRadius,
		Unit:             "km",
	}
	l.Target = Rotate(l.Reference, (p.RevisitTime/secondsPerDay)*2*math.Pi, AxisZ)

	for idy := 0; idy < p.NumPlanes; idy++ {
		ang := deg2rad(float64(idy) * planeRange / float64(p.NumPlanes))
		ring := circle(r, samples, AxisX, AxisY)
		for k, pt := range ring {
			ring[k] = Rotate(Rotate(pt, i, AxisX), ang, AxisZ)
		}
		l.PlaneCurves[idy] = ring
	}

	for idy := 0; idy < p.NumPlanes; idy++ {
		for idz := 0; idz < p.SatsPerPlane; idz++ {
			ctr := idz + idy*p.SatsPerPlane
			pos := PolarToCartesian(r, math.Pi/2, deg2rad(p.PerigeePositions[ctr]+p.TrueAnomaly[ctr]))
			pos = Rotate(pos, i, AxisX)
			pos = Rotate(pos, deg2rad(p.RAAN[ctr]), AxisZ)
			l.Positions = append(l.Positions, pos)
		}
	}
	return l, nil
}
