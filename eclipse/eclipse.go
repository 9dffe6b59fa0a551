// Package eclipse provides lunar eclipse detection and characterization.
//
// It finds times when the Moon enters Earth's shadow, classifies eclipses as
// penumbral, partial, or total, and computes eclipse magnitudes. Uses the
// Danjon enlargement correction (2% atmospheric enlargement of Earth's shadow).
package eclipse

import (
	"math"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/eventfinder"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

const (
	// Eclipse type constants returned in LunarEclipse.Kind.
	Penumbral = 1 // Moon enters penumbra only
	Partial   = 2 // Moon partially enters umbra
	Total     = 3 // Moon fully within umbra

	// Physical constants.
	sunRadiusKm   = 695700.0
	earthRadiusKm = 6371.0
	moonRadiusKm  = 1737.4

	// Danjon enlargement factor: atmospheric refraction enlarges
	// Earth's shadow by ~2%.
	danjonFactor = 1.02
)

// LunarEclipse describes a lunar eclipse event.
type LunarEclipse struct {
	// T is the TDB Julian date of maximum eclipse (closest approach of
	// Moon center to shadow axis).
	T float64

	// Kind is the eclipse type: Penumbral (1), Partial (2), or Total (3).
	Kind int

	// UmbralMag is the umbral magnitude: fraction of Moon's diameter
	// immersed in the umbral shadow. Negative means Moon does not reach umbra.
	UmbralMag float64

	// PenumbralMag is the penumbral magnitude: fraction of Moon's diameter
	// immersed in the penumbral shadow.
	PenumbralMag float64

	// ClosestApproachKm is the minimum distance from Moon center to the
	// shadow axis, in km.
	ClosestApproachKm float64

	// UmbralRadiusKm is the umbral shadow radius at the Moon's distance, in km.
	// Includes Danjon enlargement.
	UmbralRadiusKm float64

	// PenumbralRadiusKm is the penumbral shadow radius at the Moon's distance, in km.
	// Includes Danjon enlargement.
	PenumbralRadiusKm float64
}

// shadowAxis returns the unit vector along Earth's shadow axis (anti-solar,
// pointing away from the Sun) and the Earth-Sun distance in km.
func shadowAxis(sunKm vector.Vector) (axis vector.Vector, sunDist float64) {
	sunDist = sunKm.Magnitude()
	return sunKm.Scale(-1.0 / sunDist), sunDist
}

// shadowGeometry computes the Moon's perpendicular distance from the shadow
// axis and the Danjon-enlarged umbral/penumbral shadow radii at the Moon's
// distance along that axis, given geocentric Sun and Moon positions in km.
func shadowGeometry(sunKm, moonKm vector.Vector) (sep, rUmbra, rPenumbra float64) {
	axis, sunDist := shadowAxis(sunKm)

	dAlong := moonKm.Dot(axis)
	sep = moonKm.Sub(axis.Scale(dAlong)).Magnitude()

	rUmbra = (earthRadiusKm - dAlong*(sunRadiusKm-earthRadiusKm)/sunDist) * danjonFactor
	rPenumbra = (earthRadiusKm + dAlong*(sunRadiusKm+earthRadiusKm)/sunDist) * danjonFactor
	return
}

// shadowSeparationKm is an eventfinder.Func: the perpendicular distance (km)
// from the Moon's center to Earth's shadow axis. obj1 is the Moon, obj2 the
// Sun, both already positioned by the caller's dyn.
func shadowSeparationKm(dyn *catalog.Dynamics, moon, sun *catalog.Object) float64 {
	sunKm := sun.Direction.Scale(sun.Distance * units.AUToKm)
	moonKm := moon.Direction.Scale(moon.Distance * units.AUToKm)
	sep, _, _ := shadowGeometry(sunKm, moonKm)
	return sep
}

// FindLunarEclipses finds all lunar eclipses in the given TDB Julian date
// range. dyn drives moon and sun's ephemerides; moon and sun must already be
// configured (e.g. moon.Planet set to the ELP/MPP02 engine, sun to its DE
// engine) the way catalog objects normally are before a search.
//
// The algorithm:
//  1. Find approximate full moon times via the moon-phase search
//  2. Refine each to the exact time of minimum Moon-shadow separation
//  3. Compute shadow geometry and classify eclipse type
//
// Returns eclipses sorted by time. Only events where the Moon at least
// partially enters the penumbra are returned.
func FindLunarEclipses(dyn *catalog.Dynamics, moon, sun *catalog.Object, startJD, endJD float64) []LunarEclipse {
	phases := eventfinder.MoonPhases(dyn, moon, sun, startJD, endJD)

	var eclipses []LunarEclipse
	for _, ph := range phases {
		if ph.Value != eventfinder.FullMoon {
			continue
		}

		window := 1.5 // days
		minima := eventfinder.FindEvents(dyn, moon, sun, ph.JD-window, ph.JD+window, 0.02, true, math.Inf(1), shadowSeparationKm, 1)
		if len(minima) == 0 {
			continue
		}

		ecl := classifyEclipse(dyn, moon, sun, minima[0].JD)
		if ecl.Kind > 0 {
			eclipses = append(eclipses, ecl)
		}
	}

	return eclipses
}

// classifyEclipse computes the full eclipse geometry at a given time and
// returns a LunarEclipse if the Moon is at least partially in the penumbra.
func classifyEclipse(dyn *catalog.Dynamics, moon, sun *catalog.Object, tdbJD float64) LunarEclipse {
	dyn.Coords.SetTime(tdbJD)
	_ = dyn.SetObserverState()
	_ = sun.ComputeEphemeris(dyn)
	_ = moon.ComputeEphemeris(dyn)

	sunKm := sun.Direction.Scale(sun.Distance * units.AUToKm)
	moonKm := moon.Direction.Scale(moon.Distance * units.AUToKm)
	sep, rUmbra, rPenumbra := shadowGeometry(sunKm, moonKm)

	// Eclipse magnitudes.
	umbralMag := (rUmbra + moonRadiusKm - sep) / (2.0 * moonRadiusKm)
	penumbralMag := (rPenumbra + moonRadiusKm - sep) / (2.0 * moonRadiusKm)

	ecl := LunarEclipse{
		T:                 tdbJD,
		UmbralMag:         umbralMag,
		PenumbralMag:      penumbralMag,
		ClosestApproachKm: sep,
		UmbralRadiusKm:    rUmbra,
		PenumbralRadiusKm: rPenumbra,
	}

	switch {
	case umbralMag >= 1.0:
		ecl.Kind = Total
	case umbralMag > 0:
		ecl.Kind = Partial
	case penumbralMag > 0:
		ecl.Kind = Penumbral
	default:
		ecl.Kind = 0 // not an eclipse
	}

	return ecl
}
