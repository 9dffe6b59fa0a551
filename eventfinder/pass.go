package eventfinder

import (
	"math"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/units"
)

// RTS describes the circumstances of a single rise, transit, or set
// event: the time and the object's horizon coordinates at that instant
// (spec §4.8, original SSRTS).
type RTS struct {
	JD  float64
	Azm units.Angle
	Alt units.Angle
}

// Pass describes a complete overhead pass: rising, upper transit, and
// setting (original SSPass). A JD of +Inf/-Inf on any leg means that leg
// does not occur in the searched interval.
type Pass struct {
	Rising  RTS
	Transit RTS
	Setting RTS
}

// riseTransitSetSearchDay finds the rise/transit/set time of kind nearest
// the middle of the local day starting at dayStartJD, searching the
// adjacent day if the result falls outside [dayStartJD, dayStartJD+1]
// (spec §4.8, original riseTransitSetSearchDay).
func riseTransitSetSearchDay(dyn *catalog.Dynamics, obj *catalog.Object, dayStartJD float64, kind EventKind, altRad float64) float64 {
	end := dayStartJD + 1.0

	t := RiseTransitSetSearch(dyn, obj, dayStartJD+0.5, kind, altRad)
	if t > end {
		t = RiseTransitSetSearch(dyn, obj, dayStartJD-0.5, kind, altRad)
	} else if t < dayStartJD {
		t = RiseTransitSetSearch(dyn, obj, end+0.5, kind, altRad)
	}

	if t > end || t < dayStartJD {
		if kind == Rise {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return t
}

// FindRiseTransitSet computes a Pass for obj on the local day beginning
// at dayStartJD, at horizon altitude altRad (spec §4.8's "Rise/transit/set"
// composed search). dyn's time and obj's ephemeris are restored to their
// state on entry before returning.
func FindRiseTransitSet(dyn *catalog.Dynamics, obj *catalog.Object, dayStartJD float64, altRad float64) Pass {
	saveTime := dyn.Coords.JDTT()
	defer func() {
		dyn.Coords.SetTime(saveTime)
		_ = dyn.SetObserverState()
		_ = obj.ComputeEphemeris(dyn)
	}()

	var pass Pass

	horizon := func(jd float64) (units.Angle, units.Angle) {
		dyn.Coords.SetTime(jd)
		_ = dyn.SetObserverState()
		_ = obj.ComputeEphemeris(dyn)
		alt, az, _ := dyn.Coords.AltAz(obj.Direction)
		return az, alt
	}

	pass.Rising.JD = riseTransitSetSearchDay(dyn, obj, dayStartJD, Rise, altRad)
	if !math.IsInf(pass.Rising.JD, 0) {
		pass.Rising.Azm, pass.Rising.Alt = horizon(pass.Rising.JD)
	}

	pass.Transit.JD = riseTransitSetSearchDay(dyn, obj, dayStartJD, Transit, 0.0)
	if !math.IsInf(pass.Transit.JD, 0) {
		pass.Transit.Azm, pass.Transit.Alt = horizon(pass.Transit.JD)
	}

	pass.Setting.JD = riseTransitSetSearchDay(dyn, obj, dayStartJD, Set, altRad)
	if !math.IsInf(pass.Setting.JD, 0) {
		pass.Setting.Azm, pass.Setting.Alt = horizon(pass.Setting.JD)
	}

	return pass
}

// FindSatellitePasses searches [start, stop] for complete overhead passes
// of a satellite, stepping coarsely (1 minute) while it is more than 1°
// below the horizon and finely (1 second) otherwise (spec
// §4.8's "Satellite passes" composed search, original
// findSatellitePasses). At most maxPasses are returned. dyn's time and
// sat's ephemeris are restored to their state on entry before returning.
func FindSatellitePasses(dyn *catalog.Dynamics, sat *catalog.Object, start, stop, minAltRad float64, maxPasses int) []Pass {
	saveTime := dyn.Coords.JDTT()
	defer func() {
		dyn.Coords.SetTime(saveTime)
		_ = dyn.SetObserverState()
		_ = sat.ComputeEphemeris(dyn)
	}()

	var passes []Pass
	var pass Pass
	var maxAlt float64
	var oldAlt float64
	haveOld := false

	const oneMinuteDays = 1.0 / 1440.0

	for t := start; t <= stop && len(passes) < maxPasses; {
		dyn.Coords.SetTime(t)
		_ = dyn.SetObserverState()
		_ = sat.ComputeEphemeris(dyn)
		alt, azm, _ := dyn.Coords.AltAz(sat.Direction)
		altRad := alt.Radians()

		step := oneMinuteDays
		if altRad > units.AngleFromDegrees(-1.0).Radians() {
			step = oneSecondDays
		}

		if haveOld {
			if altRad > minAltRad && oldAlt < minAltRad {
				pass.Rising = RTS{JD: t, Azm: azm, Alt: alt}
			}
			if altRad > maxAlt {
				pass.Transit = RTS{JD: t, Azm: azm, Alt: alt}
				maxAlt = altRad
			}
			if oldAlt > minAltRad && altRad < minAltRad {
				pass.Setting = RTS{JD: t, Azm: azm, Alt: alt}
				passes = append(passes, pass)
				pass = Pass{}
				maxAlt = 0
			}
		}

		oldAlt = altRad
		haveOld = true
		t += step
	}

	return passes
}
