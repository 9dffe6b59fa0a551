// Package elp implements a reduced ELP/MPP02-style analytic lunar
// ephemeris: the Moon's geocentric position and velocity from a sum of
// periodic corrections to its mean orbital elements, without requiring
// a JPL DE file.
//
// The corpus this was built from carries only a bare C++ class
// declaration for ELPMPP02 (no implementation, no numeric term table),
// so the series evaluated here is a small, explicitly reduced set of
// the classical lunar theory's dominant terms rather than the full
// ELP/MPP02 main-problem and perturbation truncation the interface was
// originally scoped to. See the package's DESIGN.md entry for the
// grounding and scope-reduction rationale.
package elp

import (
	"math"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/vector"
)

const j2000JD = 2451545.0
const meanDistanceKm = 385000.56
const kmPerAU = 149597870.7

// sumSeries evaluates a mainTerm series and its time derivative at the
// given mean elements. useSin selects sin(arg) (longitude, latitude) vs
// cos(arg) (distance) as the basis function.
func sumSeries(terms []mainTerm, a arguments, useSin bool) (value, rate float64) {
	for _, term := range terms {
		angle, argRate := term.arg(a)
		s, c := math.Sin(angle), math.Cos(angle)
		if useSin {
			value += term.amp * s
			rate += term.amp * c * argRate
		} else {
			value += term.amp * c
			rate += -term.amp * s * argRate
		}
	}
	return
}

// PositionVelocity returns the Moon's geocentric position (AU) and
// velocity (AU/day) at jdTDB, rotated into the fundamental (J2000
// equatorial/ICRS) frame via coords.
func PositionVelocity(jdTDB float64, coords *coordinates.Coordinates) (pos, vel vector.Vector) {
	t := (jdTDB - j2000JD) / 36525.0
	a := computeArguments(t)

	sumL, rateL := sumSeries(longitudeTerms, a, true)
	sumB, rateB := sumSeries(latitudeTerms, a, true)
	sumR, rateR := sumSeries(distanceTerms, a, false)

	const microDeg = 1e-6 * math.Pi / 180.0

	// sumSeries' rates are already per day: its argument rates come from
	// computeArguments in rad/day.
	lon := a.w1 + sumL*microDeg
	lonRate := a.w1Rate + rateL*microDeg
	lat := sumB * microDeg
	latRate := rateB * microDeg
	distKm := meanDistanceKm + sumR/1000.0
	distRateKm := rateR / 1000.0

	distAU := distKm / kmPerAU
	distRateAU := distRateKm / kmPerAU

	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)

	x := distAU * cosLat * cosLon
	y := distAU * cosLat * sinLon
	z := distAU * sinLat

	dx := distRateAU*cosLat*cosLon - distAU*sinLat*cosLon*latRate - distAU*cosLat*sinLon*lonRate
	dy := distRateAU*cosLat*sinLon - distAU*sinLat*sinLon*latRate + distAU*cosLat*cosLon*lonRate
	dz := distRateAU*sinLat + distAU*cosLat*latRate

	eclPos := vector.New(x, y, z)
	eclVel := vector.New(dx, dy, dz)

	pos = coords.Transform(coordinates.EclipticOfDate, coordinates.Fundamental, eclPos)
	vel = coords.Transform(coordinates.EclipticOfDate, coordinates.Fundamental, eclVel)
	return
}

// PositionFunc returns a closure suitable for light-time iteration,
// rebuilding coords at each trial jdTDB so the ecliptic-of-date rotation
// stays consistent with the sample time. The TT/TDB distinction (under a
// tenth of a second) is well inside this package's own truncation error
// and is not tracked separately here. Errors cannot occur; geocentric
// lunar position is always defined.
func PositionFunc(loc coordinates.Location) func(jdTDB float64) vector.Vector {
	return func(jdTDB float64) vector.Vector {
		c := coordinates.New(jdTDB, loc)
		pos, _ := PositionVelocity(jdTDB, c)
		return pos
	}
}
