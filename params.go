package constellation

import (
	"fmt"
	"math"
)

// Pattern identifies a constellation geometry.
type Pattern string

const (
	// PatternWalker is circular orbits over evenly spaced planes.
	PatternWalker Pattern = "walker"
	// PatternFlower is elliptical orbits placed by RAAN offsets and true anomalies.
	PatternFlower Pattern = "flower"
)

// WalkerParams defines a Walker constellation. Angles are in degrees.
type WalkerParams struct {
	Altitude         float64 // km above the focus body
	Inclination      float64
	Focus            string
	NumPlanes        int
	SatsPerPlane     int
	RAAN             []float64 // per satellite
	PerigeePositions []float64 // per satellite argument of perigee
	TrueAnomaly      []float64 // per satellite
	RevisitTime      float64   // seconds
}

// NumSatellites returns the total number of satellites.
func (p WalkerParams) NumSatellites() int {
	return p.NumPlanes * p.SatsPerPlane
}

// Validate checks the parameters against the provided body table.
func (p WalkerParams) Validate(bodies Bodies) error {
	radius, err := bodies.Radius(p.Focus)
	if err != nil {
		return err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return invalid("focus", "radius of %s must be strictly positive, got %f km", p.Focus, radius)
	}
	if math.IsNaN(p.Altitude) || math.IsInf(p.Altitude, 0) {
		return invalid("altitude", "must be finite, got %f", p.Altitude)
	}
	if math.IsNaN(p.Inclination) || math.IsInf(p.Inclination, 0) {
		return invalid("inclination", "must be finite, got %f", p.Inclination)
	}
	if r := p.Altitude + radius; r <= 0 {
		return invalid("altitude", "orbital radius %f km must be strictly positive", r)
	}
	if p.NumPlanes < 0 {
		return inconsistent("num_planes", "must not be negative, got %d", p.NumPlanes)
	}
	if p.SatsPerPlane < 0 {
		return inconsistent("sats_per_plane", "must not be negative, got %d", p.SatsPerPlane)
	}
	n := p.NumSatellites()
	for _, arr := range []struct {
		name string
		vals []float64
	}{{"raan", p.RAAN}, {"perigee_positions", p.PerigeePositions}, {"true_anomaly", p.TrueAnomaly}} {
		if len(arr.vals) != n {
			return inconsistent(arr.name, "has %d entries but %d planes of %d satellites require %d", len(arr.vals), p.NumPlanes, p.SatsPerPlane, n)
		}
	}
	return nil
}

func (p WalkerParams) String() string {
	return fmt.Sprintf("Walker %.1f°:%d/%d @ %.1f km around %s", p.Inclination, p.NumSatellites(), p.NumPlanes, p.Altitude, p.Focus)
}

// NewWalkerDelta returns the parameters of an i:T/P/F Walker delta constellation.
// Plane p has a RAAN of p*360/P and slot s in plane p has a true anomaly of s*360/S + p*F*360/T.
func NewWalkerDelta(altitude, inclination float64, focus string, planes, satsPerPlane, phasing int, revisitTime float64) WalkerParams {
	p := WalkerParams{
		Altitude:     altitude,
		Inclination:  inclination,
		Focus:        focus,
		NumPlanes:    planes,
		SatsPerPlane: satsPerPlane,
		RevisitTime:  revisitTime,
	}
	total := planes * satsPerPlane
	if total <= 0 {
		return p
	}
	p.RAAN = make([]float64, total)
	p.PerigeePositions = make([]float64, total)
	p.TrueAnomaly = make([]float64, total)
	for idy := 0; idy < planes; idy++ {
		for idz := 0; idz < satsPerPlane; idz++ {
			ctr := idz + idy*satsPerPlane
			p.RAAN[ctr] = float64(idy) * 360 / float64(planes)
			p.TrueAnomaly[ctr] = math.Mod(float64(idz)*360/float64(satsPerPlane)+float64(idy*phasing)*360/float64(total), 360)
		}
	}
	return p
}

// FlowerParams defines a Flower constellation. Angles are in degrees.
type FlowerParams struct {
	Altitude      float64 // km above the focus body
	Inclination   float64
	Focus         string
	SemiMajor     float64 // meters
	Eccentricity  float64
	NumOrbits     int
	NumSatellites int
	RAAN          []float64 // per satellite
	TrueAnomaly   []float64 // per satellite
	RevisitTime   float64   // fraction of a full cycle
}

// Validate checks the parameters against the provided body table.
func (p FlowerParams) Validate(bodies Bodies) error {
	radius, err := bodies.Radius(p.Focus)
	if err != nil {
		return err
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return invalid("focus", "radius of %s must be strictly positive, got %f km", p.Focus, radius)
	}
	if math.IsNaN(p.SemiMajor) || math.IsInf(p.SemiMajor, 0) || p.SemiMajor <= 0 {
		return invalid("semi_major", "must be strictly positive, got %f", p.SemiMajor)
	}
	if math.IsNaN(p.Eccentricity) || p.Eccentricity < 0 || p.Eccentricity >= 1 {
		return invalid("eccentricity", "must be in [0, 1) for an elliptical orbit, got %f", p.Eccentricity)
	}
	if math.IsNaN(p.Inclination) || math.IsInf(p.Inclination, 0) {
		return invalid("inclination", "must be finite, got %f", p.Inclination)
	}
	if f := p.Altitude + radius; math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return invalid("altitude", "focal distance %f km must be strictly positive", f)
	}
	if p.NumOrbits < 0 {
		return inconsistent("num_orbits", "must not be negative, got %d", p.NumOrbits)
	}
	if p.NumSatellites < 0 {
		return inconsistent("num_satellites", "must not be negative, got %d", p.NumSatellites)
	}
	if len(p.RAAN) != p.NumSatellites {
		return inconsistent("raan", "has %d entries for %d satellites", len(p.RAAN), p.NumSatellites)
	}
	if len(p.TrueAnomaly) != p.NumSatellites {
		return inconsistent("true_anomaly", "has %d entries for %d satellites", len(p.TrueAnomaly), p.NumSatellites)
	}
	return nil
}

func (p FlowerParams) String() string {
	return fmt.Sprintf("Flower %d sats/%d orbits a=%.1f m e=%.4f i=%.1f° around %s", p.NumSatellites, p.NumOrbits, p.SemiMajor, p.Eccentricity, p.Inclination, p.Focus)
}

// Params holds exactly one constellation definition.
type Params struct {
	Walker *WalkerParams
	Flower *FlowerParams
}

// Pattern returns which constellation is defined.
func (p Params) Pattern() (Pattern, error) {
	switch {
	case p.Walker != nil && p.Flower != nil:
		return "", inconsistent("params", "both a Walker and a Flower constellation are defined")
	case p.Walker != nil:
		return PatternWalker, nil
	case p.Flower != nil:
		return PatternFlower, nil
	default:
		return "", inconsistent("params", "neither a Walker nor a Flower constellation is defined")
	}
}
