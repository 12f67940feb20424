package constellation

import (
	"sort"
	"strings"
)

// CelestialObject defines the central body a constellation orbits.
// Radius is the mean radius in kilometers.
type CelestialObject struct {
	Name   string
	Radius float64
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Bodies maps a lower case body name to its definition.
// It is treated as immutable once built: use With to derive a new table.
type Bodies map[string]CelestialObject

/* Definitions */

// Earth is home.
var Earth = CelestialObject{"Earth", 6371}

// Luna is the Moon.
var Luna = CelestialObject{"Luna", 1737}

// Mercury is hot.
var Mercury = CelestialObject{"Mercury", 2440}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6052}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3390}

// Sol is our closest star.
var Sol = CelestialObject{"Sol", 695508}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 69911}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 58232}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 25362}

// Neptune is windy.
var Neptune = CelestialObject{"Neptune", 24622}

// Pluto is not a planet and had that down ranking coming.
var Pluto = CelestialObject{"Pluto", 1188}

// DefaultBodies returns a fresh table of the built-in bodies.
func DefaultBodies() Bodies {
	b := make(Bodies, 11)
	for _, o := range []CelestialObject{Earth, Luna, Mercury, Venus, Mars, Sol, Jupiter, Saturn, Uranus, Neptune, Pluto} {
		b[strings.ToLower(o.Name)] = o
	}
	return b
}

// With returns a copy of the table with the provided objects added or replaced.
func (b Bodies) With(objects ...CelestialObject) Bodies {
	n := make(Bodies, len(b)+len(objects))
	for k, o := range b {
		n[k] = o
	}
	for _, o := range objects {
		n[strings.ToLower(o.Name)] = o
	}
	return n
}

// Lookup returns the object from its name (case insensitive).
func (b Bodies) Lookup(name string) (CelestialObject, error) {
	o, ok := b[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CelestialObject{}, inconsistent("focus", "undefined body '%s'", name)
	}
	return o, nil
}

// Radius returns the radius in km of the named body.
func (b Bodies) Radius(name string) (float64, error) {
	o, err := b.Lookup(name)
	if err != nil {
		return 0, err
	}
	return o.Radius, nil
}

// Names returns the sorted body names.
func (b Bodies) Names() []string {
	names := make([]string, 0, len(b))
	for k := range b {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
