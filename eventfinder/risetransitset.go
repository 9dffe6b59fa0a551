package eventfinder

import (
	"math"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// EventKind selects which point in an overhead pass riseTransitSet
// computes (spec §4.8): rising, upper transit, or setting.
type EventKind int

const (
	Rise    EventKind = -1
	Transit EventKind = 0
	Set     EventKind = 1
)

// siderealPerSolarDays is the ratio of a mean solar day to a sidereal
// day (the Earth's sidereal rotation rate), used to convert an hour-angle
// deficit into elapsed solar time.
const siderealPerSolarDays = 1.00273790935

// semiDiurnalArc returns the hour angle (radians) at which an object of
// declination dec, seen from latitude lat, reaches altitude alt. Returns
// 0 if the object never rises above alt, π if it never sets below it.
func semiDiurnalArc(lat, dec, alt units.Angle) units.Angle {
	cosha := (math.Sin(alt.Radians()) - math.Sin(dec.Radians())*math.Sin(lat.Radians())) /
		(math.Cos(dec.Radians()) * math.Cos(lat.Radians()))
	switch {
	case cosha >= 1.0:
		return units.NewAngle(0)
	case cosha <= -1.0:
		return units.NewAngle(math.Pi)
	default:
		return units.NewAngle(math.Acos(cosha))
	}
}

// RiseTransitSetClosedForm computes the time (TDB Julian date, within
// half a day of jd) an object at fixed (ra, dec) rises, transits, or sets
// at altitude alt for an observer at (lonDeg, latDeg) — spec §4.8's
// closed form for stars. Returns -Inf if the object never rises above
// alt, +Inf if it never sets below it (for kind != Transit).
func RiseTransitSetClosedForm(jd float64, ra, dec units.Angle, kind EventKind, lonDeg, latDeg float64, alt units.Angle, gast units.Angle) float64 {
	lat := units.AngleFromDegrees(latDeg)
	ha := semiDiurnalArc(lat, dec, alt)

	if ha.Radians() == math.Pi && kind != Transit {
		return math.Inf(1)
	}
	if ha.Radians() == 0 {
		return math.Inf(-1)
	}

	lst := units.AngleFromDegrees(gast.Degrees() + lonDeg)
	theta := units.NewAngle(ra.Radians() - lst.Radians() + float64(kind)*ha.Radians()).ModPi()

	return jd + theta.Radians()/(2*math.Pi)/siderealPerSolarDays
}

// RiseTransitSetSearch iteratively refines the rise/transit/set time of a
// moving object near jd (spec §4.8: "iterate t ← riseTransitSet(t, ...)
// ... until |Δt| < 1 sec or 10 iterations"). obj's ephemeris and dyn's
// time are left at the converged instant; the caller is responsible for
// restoring them if needed.
func RiseTransitSetSearch(dyn *catalog.Dynamics, obj *catalog.Object, jd float64, kind EventKind, altRad float64) float64 {
	alt := units.NewAngle(altRad)
	t := jd
	const precision = 1.0 / 86400.0

	for i := 0; i < 10; i++ {
		last := t
		dyn.Coords.SetTime(t)
		_ = dyn.SetObserverState()
		_ = obj.ComputeEphemeris(dyn)

		equ := dyn.Coords.Transform(coordinates.Fundamental, coordinates.EquatorialOfDate, obj.Direction)
		sph := vector.FromVector(equ)
		ra, dec := units.NewAngle(sph.Lon), units.NewAngle(sph.Lat)

		loc := dyn.Coords.Location()
		t = RiseTransitSetClosedForm(t, ra, dec, kind, loc.LonDeg, loc.LatDeg, alt, dyn.Coords.GAST())

		if math.IsInf(t, 0) || math.Abs(t-last) <= precision {
			break
		}
	}
	return t
}
