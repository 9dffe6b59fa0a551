package eventfinder

import (
	"math"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/units"
)

// Season values returned by Seasons (original SSEvent's quadrant
// convention via Sun ecliptic longitude / 90°).
const (
	SpringEquinox  = 0
	SummerSolstice = 1
	AutumnEquinox  = 2
	WinterSolstice = 3
)

// Moon phase values returned by MoonPhases (original SSEvent::kNewMoon
// and friends, expressed as the Moon-Sun elongation quadrant).
const (
	NewMoon      = 0
	FirstQuarter = 1
	FullMoon     = 2
	LastQuarter  = 3
)

// Twilight level values returned by Twilight.
const (
	Night                = 0
	AstronomicalTwilight = 1
	NauticalTwilight     = 2
	CivilTwilight        = 3
	Daylight             = 4
)

// sunAltitudeThreshold is the standard altitude for sunrise/sunset
// (radians): -50 arcminutes, the Sun's disk radius plus refraction.
var sunAltitudeThreshold = units.AngleFromDegrees(-50.0 / 60.0).Radians()

// refractionThreshold is the standard altitude for a point object's
// rising/setting (radians): -34 arcminutes of atmospheric refraction.
var refractionThreshold = units.AngleFromDegrees(-34.0 / 60.0).Radians()

// FindConjunctions locates times sun and planet reach minimum angular
// separation (spec §4.8, original findConjunctions).
func FindConjunctions(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop float64, maxEvents int) []Event {
	return FindEvents(dyn, obj1, obj2, start, stop, 1.0, true, math.Inf(1), ObjectSeparation, maxEvents)
}

// FindOppositions locates times obj1 and obj2 reach maximum angular
// separation (spec §4.8, original findOppositions).
func FindOppositions(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop float64, maxEvents int) []Event {
	return FindEvents(dyn, obj1, obj2, start, stop, 1.0, false, 0.0, ObjectSeparation, maxEvents)
}

// FindNearestDistances locates times obj1 and obj2 are physically closest
// (spec §4.8, original findNearestDistances).
func FindNearestDistances(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop float64, maxEvents int) []Event {
	return FindEvents(dyn, obj1, obj2, start, stop, 1.0, true, math.Inf(1), ObjectDistance, maxEvents)
}

// FindFarthestDistances locates times obj1 and obj2 are physically
// farthest apart (spec §4.8, original findFarthestDistances).
func FindFarthestDistances(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop float64, maxEvents int) []Event {
	return FindEvents(dyn, obj1, obj2, start, stop, 1.0, false, 0.0, ObjectDistance, maxEvents)
}

// Seasons finds equinoxes and solstices in [start, stop], returning one
// Event per crossing with Value holding the quadrant (SpringEquinox ...
// WinterSolstice) the Sun's ecliptic longitude just entered (spec §4.8's
// "Moon phases" sibling for the Sun; grounded on teacher almanac.Seasons,
// generalized from a raw SPK reader to a Dynamics/Object pair).
func Seasons(dyn *catalog.Dynamics, sun *catalog.Object, start, stop float64) []Event {
	return quadrantEvents(dyn, sun, nil, start, stop, 15.0, 365.25)
}

// MoonPhases finds new moons, first quarters, full moons, and last
// quarters in [start, stop], returning one Event per crossing with Value
// holding the phase (NewMoon ... LastQuarter) (spec §4.8's "Moon phases"
// composed search; grounded on teacher almanac.MoonPhases).
func MoonPhases(dyn *catalog.Dynamics, moon, sun *catalog.Object, start, stop float64) []Event {
	return quadrantEvents(dyn, moon, sun, start, stop, 1.0, 29.5)
}

// longitudeDeg is obj1's ecliptic longitude (obj2 nil) or obj1 minus
// obj2's longitude difference (obj2 non-nil), in degrees [0, 360).
func longitudeDeg(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, jd float64) float64 {
	dyn.Coords.SetTime(jd)
	_ = dyn.SetObserverState()
	_ = obj1.ComputeEphemeris(dyn)
	if obj2 != nil {
		_ = obj2.ComputeEphemeris(dyn)
		return units.NewAngle(EclipticLongitudeDifference(dyn, obj1, obj2)).Degrees()
	}
	return units.NewAngle(EclipticLongitude(dyn, obj1, nil)).Mod2Pi().Degrees()
}

// quadrantEvents coarse-scans (obj1, obj2)'s longitude at stepDays and, on
// every 90° quadrant boundary crossing, refines the exact time with
// nextPhase (periodDays drives its Newton step). Shared by Seasons (obj2
// nil) and MoonPhases (obj2 the Sun).
func quadrantEvents(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop, stepDays, periodDays float64) []Event {
	var events []Event
	lastQuadrant := int(math.Floor(longitudeDeg(dyn, obj1, obj2, start) / 90.0))

	for t := start + stepDays; t <= stop; t += stepDays {
		lon := longitudeDeg(dyn, obj1, obj2, t)
		q := int(math.Floor(lon / 90.0))
		if q != lastQuadrant {
			targetRad := float64(((q%4)+4)%4) * math.Pi / 2.0
			// Start from the sample before the crossing: nextPhase searches
			// forward, so starting at t would find the next period's crossing.
			jd := nextPhase(dyn, obj1, obj2, t-stepDays, targetRad, periodDays)
			events = append(events, Event{JD: jd, Value: float64(((q % 4) + 4) % 4)})
			lastQuadrant = q
		}
	}
	return events
}

// nextPhase refines, by Newton iteration on the longitude difference
// (obj1 minus obj2, or obj1 alone when obj2 is nil), the first Julian
// date at or after jd at which that difference equals targetRad: the
// first step always moves forward in time (spec §4.8:
// "iterate on ecliptic longitude difference ... convergence at < 1
// minute"; original SSEvent::nextMoonPhase, generalized to cover Seasons'
// single-object case too).
func nextPhase(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, jd, targetRad, periodDays float64) float64 {
	t := jd
	const oneMinuteDays = 1.0 / 1440.0

	for i := 0; i < 10; i++ {
		dyn.Coords.SetTime(t)
		_ = dyn.SetObserverState()
		_ = obj1.ComputeEphemeris(dyn)
		lon1 := EclipticLongitude(dyn, obj1, nil)
		lon2 := 0.0
		if obj2 != nil {
			_ = obj2.ComputeEphemeris(dyn)
			lon2 = EclipticLongitude(dyn, obj2, nil)
		}

		dellon := units.NewAngle(lon1 - lon2 - targetRad).ModPi().Radians()
		if i == 0 && dellon > 0.0 {
			dellon -= 2 * math.Pi
		}

		deltime := dellon / (2 * math.Pi / periodDays)
		t -= deltime
		if math.Abs(deltime) <= oneMinuteDays {
			break
		}
	}
	return t
}

// NextMoonPhase finds the first Julian date at or after jd at which the Moon
// reaches the given phase angle (original SSEvent::nextMoonPhase).
// phaseRad is one of 0 (new), π/2 (first quarter), π (full), 3π/2 (last
// quarter).
func NextMoonPhase(dyn *catalog.Dynamics, moon, sun *catalog.Object, jd, phaseRad float64) float64 {
	return nextPhase(dyn, moon, sun, jd, phaseRad, 29.5)
}

// NextSeason finds the first Julian date at or after jd at which the Sun's ecliptic
// longitude reaches targetRad (0 spring, π/2 summer, π autumn, 3π/2
// winter), the single-object analogue of NextMoonPhase.
func NextSeason(dyn *catalog.Dynamics, sun *catalog.Object, jd, targetRad float64) float64 {
	return nextPhase(dyn, sun, nil, jd, targetRad, 365.25)
}

// SunriseSunset finds sunrise and sunset times in [start, stop] for an
// observer whose location is set on dyn.Coords (spec §4.8; grounded on
// teacher almanac.SunriseSunset). Unlike Risings/Settings, which use a
// point object's refraction-only horizon, sunAltitudeThreshold also backs
// out the Sun's apparent disk radius. Sunrises and sunsets are returned
// together, sorted by time.
func SunriseSunset(dyn *catalog.Dynamics, sun *catalog.Object, start, stop float64) []Event {
	rises := FindEqualityEvents(dyn, sun, nil, start, stop, 0.01, true, sunAltitudeThreshold, ObjectAltitude, 1<<30)
	sets := FindEqualityEvents(dyn, sun, nil, start, stop, 0.01, false, sunAltitudeThreshold, ObjectAltitude, 1<<30)
	return mergeByTime(rises, sets)
}

// Twilight finds every crossing of the civil, nautical, and astronomical
// dusk/dawn altitude thresholds in [start, stop], in both directions
// (spec §4.8; grounded on teacher almanac.Twilight).
func Twilight(dyn *catalog.Dynamics, sun *catalog.Object, start, stop float64) []Event {
	thresholds := []float64{
		units.AngleFromDegrees(-18.0).Radians(),
		units.AngleFromDegrees(-12.0).Radians(),
		units.AngleFromDegrees(-6.0).Radians(),
	}
	var events []Event
	for _, th := range thresholds {
		rising := FindEqualityEvents(dyn, sun, nil, start, stop, 0.01, true, th, ObjectAltitude, 1<<30)
		falling := FindEqualityEvents(dyn, sun, nil, start, stop, 0.01, false, th, ObjectAltitude, 1<<30)
		events = mergeByTime(events, mergeByTime(rising, falling))
	}
	return events
}

// Risings finds times obj's altitude crosses refractionThreshold from
// below — the object rising above the horizon (spec §4.8; grounded on
// teacher almanac.Risings).
func Risings(dyn *catalog.Dynamics, obj *catalog.Object, start, stop float64) []Event {
	return FindEqualityEvents(dyn, obj, nil, start, stop, 0.01, true, refractionThreshold, ObjectAltitude, 1<<30)
}

// Settings finds times obj's altitude crosses refractionThreshold from
// above — the object setting below the horizon (spec §4.8; grounded on
// teacher almanac.Settings).
func Settings(dyn *catalog.Dynamics, obj *catalog.Object, start, stop float64) []Event {
	return FindEqualityEvents(dyn, obj, nil, start, stop, 0.01, false, refractionThreshold, ObjectAltitude, 1<<30)
}

// mergeByTime merges two time-sorted Event slices (each FindEqualityEvents
// call already returns events in increasing time order) into one sorted
// slice via a standard merge step.
func mergeByTime(a, b []Event) []Event {
	out := make([]Event, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].JD <= b[j].JD {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
