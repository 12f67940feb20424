package constellation

import (
	"errors"
	"strings"
	"testing"
)

func fieldOf(t *testing.T, err error) string {
	var perr *ParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParameterError, got %v", err)
	}
	return perr.Field
}

func TestWalkerDelta(t *testing.T) {
	p := NewWalkerDelta(629, 53, "earth", 2, 3, 1, 0)
	if err := p.Validate(DefaultBodies()); err != nil {
		t.Fatal(err)
	}
	expRAAN := []float64{0, 0, 0, 180, 180, 180}
	expTA := []float64{0, 120, 240, 60, 180, 300}
	for i := range expRAAN {
		if p.RAAN[i] != expRAAN[i] || p.TrueAnomaly[i] != expTA[i] || p.PerigeePositions[i] != 0 {
			t.Fatalf("satellite %d: raan=%f ta=%f perigee=%f", i, p.RAAN[i], p.TrueAnomaly[i], p.PerigeePositions[i])
		}
	}
	empty := NewWalkerDelta(629, 53, "earth", 0, 3, 1, 0)
	if empty.NumSatellites() != 0 || empty.RAAN != nil {
		t.Fatal("expected an empty constellation")
	}
	if err := empty.Validate(DefaultBodies()); err != nil {
		t.Fatalf("an empty constellation is valid: %s", err)
	}
}

func TestWalkerValidate(t *testing.T) {
	bodies := DefaultBodies()
	p := NewWalkerDelta(629, 53, "earth", 2, 2, 0, 0)
	p.PerigeePositions = p.PerigeePositions[:3]
	err := p.Validate(bodies)
	if !errors.Is(err, ErrInconsistentParameters) || fieldOf(t, err) != "perigee_positions" {
		t.Fatalf("expected an inconsistent perigee_positions, got %v", err)
	}
	if !strings.Contains(err.Error(), "perigee_positions") {
		t.Fatalf("error does not name the field: %s", err)
	}

	p = NewWalkerDelta(-7000, 53, "earth", 1, 1, 0, 0)
	if err = p.Validate(bodies); !errors.Is(err, ErrInvalidGeometry) || fieldOf(t, err) != "altitude" {
		t.Fatalf("expected an invalid altitude, got %v", err)
	}

	p = NewWalkerDelta(629, 53, "vulcan", 1, 1, 0, 0)
	if err = p.Validate(bodies); fieldOf(t, err) != "focus" {
		t.Fatalf("expected an unknown focus, got %v", err)
	}

	p = WalkerParams{Altitude: 629, Focus: "earth", NumPlanes: -1, SatsPerPlane: 2}
	if err = p.Validate(bodies); fieldOf(t, err) != "num_planes" {
		t.Fatalf("expected a negative plane count, got %v", err)
	}
}

func validFlower() FlowerParams {
	return FlowerParams{
		Altitude:      629,
		Inclination:   63.4,
		Focus:         "earth",
		SemiMajor:     26560e3,
		Eccentricity:  0.7,
		NumOrbits:     3,
		NumSatellites: 3,
		RAAN:          []float64{0, 120, 240},
		TrueAnomaly:   []float64{0, 90, 180},
		RevisitTime:   0.5,
	}
}

func TestFlowerValidate(t *testing.T) {
	bodies := DefaultBodies()
	if err := validFlower().Validate(bodies); err != nil {
		t.Fatal(err)
	}
	for field, mutate := range map[string]func(*FlowerParams){
		"eccentricity": func(p *FlowerParams) { p.Eccentricity = 1 },
		"semi_major":   func(p *FlowerParams) { p.SemiMajor = 0 },
		"altitude":     func(p *FlowerParams) { p.Altitude = -6371 },
	} {
		p := validFlower()
		mutate(&p)
		err := p.Validate(bodies)
		if !errors.Is(err, ErrInvalidGeometry) || fieldOf(t, err) != field {
			t.Fatalf("expected an invalid %s, got %v", field, err)
		}
	}
	p := validFlower()
	p.Eccentricity = -0.1
	if err := p.Validate(bodies); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("a negative eccentricity must be rejected, got %v", err)
	}
	p = validFlower()
	p.TrueAnomaly = p.TrueAnomaly[:2]
	if err := p.Validate(bodies); !errors.Is(err, ErrInconsistentParameters) || fieldOf(t, err) != "true_anomaly" {
		t.Fatalf("expected an inconsistent true_anomaly, got %v", err)
	}
	p = validFlower()
	p.RAAN = append(p.RAAN, 10)
	if err := p.Validate(bodies); fieldOf(t, err) != "raan" {
		t.Fatalf("expected an inconsistent raan, got %v", err)
	}
}

func TestParamsPattern(t *testing.T) {
	w := NewWalkerDelta(629, 53, "earth", 1, 1, 0, 0)
	f := validFlower()
	if pat, err := (Params{Walker: &w}).Pattern(); err != nil || pat != PatternWalker {
		t.Fatalf("got %s, %v", pat, err)
	}
	if pat, err := (Params{Flower: &f}).Pattern(); err != nil || pat != PatternFlower {
		t.Fatalf("got %s, %v", pat, err)
	}
	if _, err := (Params{}).Pattern(); !errors.Is(err, ErrInconsistentParameters) {
		t.Fatalf("expected an error for no constellation, got %v", err)
	}
	if _, err := (Params{Walker: &w, Flower: &f}).Pattern(); !errors.Is(err, ErrInconsistentParameters) {
		t.Fatalf("expected an error for two constellations, got %v", err)
	}
}

func TestValidateFocusRadius(t *testing.T) {
	for _, radius := range []float64{0, -6371} {
		bodies := DefaultBodies().With(CelestialObject{"Flat", radius})
		w := NewWalkerDelta(629, 53, "flat", 1, 2, 0, 0)
		if err := w.Validate(bodies); !errors.Is(err, ErrInvalidGeometry) || fieldOf(t, err) != "focus" {
			t.Fatalf("radius %f: expected an invalid walker focus, got %v", radius, err)
		}
		f := validFlower()
		f.Focus = "flat"
		f.Altitude = 7000
		if err := f.Validate(bodies); !errors.Is(err, ErrInvalidGeometry) || fieldOf(t, err) != "focus" {
			t.Fatalf("radius %f: expected an invalid flower focus, got %v", radius, err)
		}
	}
}
