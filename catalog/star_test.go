package catalog

import (
	"math"
	"testing"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/star"
)

func testDynamics(jdTT float64) *Dynamics {
	coords := coordinates.New(jdTT, coordinates.Location{LatDeg: 0, LonDeg: 0, AltKm: 0})
	return NewDynamics(coords, nil)
}

func TestComputeStarEphemerisNoMotionIsUnitDirection(t *testing.T) {
	o := NewObject(TypeStar)
	o.Star = &StarData{
		Engine: star.Star{RAHours: 6.0, DecDeg: 20.0, ParallaxMas: 379.2},
		VMag:   -1.46,
	}

	dyn := testDynamics(2451545.0)
	dyn.Coords.Flags = coordinates.Flags{}

	if err := o.computeStarEphemeris(dyn); err != nil {
		t.Fatalf("computeStarEphemeris: %v", err)
	}

	r := o.Direction.Magnitude()
	if math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Direction is not a unit vector: |r| = %v", r)
	}
	if o.Magnitude != -1.46 {
		t.Errorf("Magnitude with all flags off should equal catalog VMag, got %v", o.Magnitude)
	}
}

func TestComputeStarEphemerisMagnitudeUnchangedWithoutParallax(t *testing.T) {
	o := NewObject(TypeStar)
	o.Star = &StarData{
		Engine: star.Star{RAHours: 10.0, DecDeg: -5.0, ParallaxMas: 100.0},
		VMag:   3.5,
	}

	dyn := testDynamics(2451545.0 + 3650)
	dyn.Coords.Flags.ApplyParallax = false

	if err := o.computeStarEphemeris(dyn); err != nil {
		t.Fatalf("computeStarEphemeris: %v", err)
	}
	// Distance from the origin is unchanged without parallax or proper
	// motion, so the magnitude term should vanish.
	if math.Abs(o.Magnitude-3.5) > 1e-9 {
		t.Errorf("Magnitude = %v, want 3.5 (no distance change)", o.Magnitude)
	}
}

func TestComputeStarEphemerisMissingDataErrors(t *testing.T) {
	o := NewObject(TypeStar)
	if err := o.computeStarEphemeris(testDynamics(2451545.0)); err == nil {
		t.Error("expected error for a Star Object with nil StarData")
	}
}
