package constellation

import (
	"errors"
	"testing"
)

func TestDefaultBodies(t *testing.T) {
	bodies := DefaultBodies()
	if len(bodies) != 11 {
		t.Fatalf("expected 11 bodies, got %d: %v", len(bodies), bodies.Names())
	}
	for name, exp := range map[string]float64{"Earth": 6371, "earth": 6371, " MARS ": 3390, "sol": 695508, "luna": 1737} {
		r, err := bodies.Radius(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if r != exp {
			t.Fatalf("%s radius = %f, expected %f", name, r, exp)
		}
	}
}

func TestUnknownBody(t *testing.T) {
	_, err := DefaultBodies().Lookup("Vesta")
	if !errors.Is(err, ErrInconsistentParameters) {
		t.Fatalf("expected inconsistent parameters, got %v", err)
	}
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Field != "focus" {
		t.Fatalf("expected the focus field to be named: %v", err)
	}
}

func TestBodiesWith(t *testing.T) {
	base := DefaultBodies()
	ext := base.With(CelestialObject{"Ceres", 473}, CelestialObject{"Earth", 6378.1363})
	if r, _ := ext.Radius("ceres"); r != 473 {
		t.Fatal("ceres not added")
	}
	if r, _ := ext.Radius("earth"); r != 6378.1363 {
		t.Fatal("earth not replaced")
	}
	if _, err := base.Lookup("ceres"); err == nil {
		t.Fatal("original table was modified")
	}
	if r, _ := base.Radius("earth"); r != 6371 {
		t.Fatal("original earth was modified")
	}
}
