package catalog

import (
	"math"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/star"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// cAUPerDay is the speed of light in AU/day, kept local to this package in
// the same style every other ephemeris-adjacent package in the module
// defines its own copy rather than importing a shared physical-constants
// package.
const cAUPerDay = 299792.458 * 86400.0 / units.AUToKm

// StarData holds a single star's catalog attributes and its astrometric
// propagation engine (spec §3 "Star"): J2000 position/velocity derived
// from RA, Dec, parallax, proper motion, and radial velocity.
type StarData struct {
	Engine star.Star

	VMag         float64
	BMag         float64
	SpectralType string
}

// computeStarEphemeris implements spec §4.7's Star rule: propagate the
// J2000 position by velocity × Δyears (if the motion flag is set), then
// subtract the observer's heliocentric position (if the parallax flag is
// set), renormalize, and apply aberration (if that flag is set).
// Magnitude is adjusted by 5·log10(delta), delta being the ratio of
// current to J2000 distance.
func (o *Object) computeStarEphemeris(dyn *Dynamics) error {
	if o.Star == nil {
		return errNoEphemerisData
	}
	s := &o.Star.Engine

	j2000Dist := s.DistanceAU()

	var pos vector.Vector
	if dyn.Coords.Flags.ApplyProperMotion {
		pos = s.PositionAU(dyn.Coords.JDTDB())
	} else {
		pos = s.PositionAtEpoch()
	}

	astrometric := pos
	if dyn.Coords.Flags.ApplyParallax {
		astrometric = pos.Sub(dyn.Coords.ObsPos)
	}
	newDist := astrometric.Magnitude()

	apparent := astrometric
	if dyn.Coords.Flags.ApplyAberration && newDist > 0 {
		posKm := astrometric.Scale(units.AUToKm)
		velKmPerDay := dyn.Coords.ObsVel.Scale(units.AUToKm)
		lightTimeDays := newDist / cAUPerDay
		apparent = coordinates.Aberration(posKm, velKmPerDay, lightTimeDays).Scale(1.0 / units.AUToKm)
	}

	unit, _ := apparent.Normalize()

	// Double-star offset is angular (arcseconds on the sky), so it is
	// applied as a small-angle perturbation to the primary's apparent
	// unit direction rather than mixed into the AU-scale position above.
	if o.Double != nil && o.Double.Orbit != nil {
		unit, _ = unit.Add(o.Double.offsetAU(dyn.Coords.JDTDB())).Normalize()
	}

	o.Direction = unit
	o.Distance = newDist

	if j2000Dist > 0 && newDist > 0 {
		o.Magnitude = o.Star.VMag + 5*math.Log10(newDist/j2000Dist)
	} else {
		o.Magnitude = o.Star.VMag
	}

	return nil
}
