// Package coordinates implements the observer-centric reference frame
// machinery of the core: precession, nutation, frame bias, sidereal time,
// aberration, light deflection, refraction, and the geodetic/topocentric
// geometry needed to turn a heliocentric position into an apparent
// direction for a ground-based observer (spec §4.3).
//
// A Coordinates value is built for a given instant and observer location;
// setting either recomputes the five cached rotation matrices that move
// between the fundamental (ICRS) frame and equatorial-of-date,
// ecliptic-of-date, horizon, and galactic frames. Transform composes
// those matrices (or their transposes) to move a vector between any two
// of them.
package coordinates

import (
	"github.com/arcturuslab/skycore/timescale"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// Frame identifies one of the reference frames Coordinates knows how to
// transform between.
type Frame int

const (
	// Fundamental is the ICRS: X toward the J2000 vernal equinox, Z toward
	// the J2000 north celestial pole.
	Fundamental Frame = iota
	// MeanOfDate is the fundamental frame precessed (but not nutated) to
	// the current epoch.
	MeanOfDate
	// EquatorialOfDate is the fundamental frame precessed and nutated to
	// the current epoch (the true equator and equinox of date).
	EquatorialOfDate
	// EclipticOfDate has its X/Y plane in Earth's orbital plane of date.
	EclipticOfDate
	// Horizon is the local topocentric frame: X north, Y east, Z zenith.
	Horizon
	// Galactic is a fixed rotation from the fundamental frame: X toward
	// the galactic center, Z toward the north galactic pole.
	Galactic
	// B1950 is the mean equator and equinox of B1950.0 (FK4).
	B1950

	numFrames
)

// Location is a ground observer's position: geodetic longitude/latitude in
// degrees and height above the WGS84 ellipsoid in kilometers.
type Location struct {
	Name   string
	LatDeg float64
	LonDeg float64
	AltKm  float64
}

// Flags are the four apparent-place toggles from spec §6, all defaulting
// to true for a normal visual ephemeris.
type Flags struct {
	ApplyParallax    bool
	ApplyProperMotion bool
	ApplyAberration  bool
	ApplyLightTime   bool
}

// DefaultFlags returns the spec's default configuration: everything on.
func DefaultFlags() Flags {
	return Flags{ApplyParallax: true, ApplyProperMotion: true, ApplyAberration: true, ApplyLightTime: true}
}

// Coordinates holds the observer's time and location, plus the
// derived/cached quantities used to transform between reference frames
// and to compute an apparent direction to a target.
type Coordinates struct {
	Flags Flags

	jdTT  float64
	jdTDB float64
	jdUT1 float64
	loc   Location

	t float64 // Julian centuries TDB from J2000

	meanObliquity units.Angle
	trueObliquity units.Angle
	dPsi, dEps    units.Angle
	gast          units.Angle

	// icrsTo[f] rotates a vector from the fundamental (ICRS) frame into
	// frame f. The inverse transform is the matrix transpose.
	icrsTo [numFrames]vector.Matrix

	// icrsToITRF rotates from ICRS into the Earth-fixed (ITRF) frame; kept
	// separately from icrsTo since ITRF isn't a Frame callers transform
	// between directly, only a step on the way to Horizon and to the
	// observer's geocentric position.
	icrsToITRF vector.Matrix

	// ObsPos and ObsVel are the observer's heliocentric position (AU) and
	// velocity (AU/day) in the fundamental frame, supplied by the caller
	// (normally: Earth's barycentric/heliocentric state from an ephemeris,
	// offset by the geocentric observer vector). ApparentDirection uses
	// these for parallax and aberration.
	ObsPos, ObsVel vector.Vector
}

// New builds a Coordinates for the given TT Julian date and observer
// location, with the default (all-on) configuration flags.
func New(jdTT float64, loc Location) *Coordinates {
	c := &Coordinates{Flags: DefaultFlags(), loc: loc}
	c.SetTime(jdTT)
	return c
}

// SetTime updates the instant (TT Julian date) and recomputes every
// cached matrix and angle that depends on time.
func (c *Coordinates) SetTime(jdTT float64) {
	c.jdTT = jdTT
	c.jdTDB = jdTT + timescale.TDBMinusTT(jdTT)/timescale.SecPerDay
	c.jdUT1 = timescale.TTToUT1(jdTT)
	c.t = (jdTT - j2000JD) / 36525.0
	c.recompute()
}

// SetLocation updates the observer's geodetic location and recomputes the
// horizon matrix (the only frame that depends on it).
func (c *Coordinates) SetLocation(loc Location) {
	c.loc = loc
	c.recomputeHorizon()
}

// Location returns the observer's current geodetic location.
func (c *Coordinates) Location() Location { return c.loc }

// JDTT, JDTDB, and JDUT1 return the current instant on each time scale.
func (c *Coordinates) JDTT() float64  { return c.jdTT }
func (c *Coordinates) JDTDB() float64 { return c.jdTDB }
func (c *Coordinates) JDUT1() float64 { return c.jdUT1 }

// GAST returns Greenwich Apparent Sidereal Time for the current instant.
func (c *Coordinates) GAST() units.Angle { return c.gast }

// MeanObliquity and TrueObliquity return the obliquity of the ecliptic of
// date (mean, and including the nutation-in-obliquity term).
func (c *Coordinates) MeanObliquity() units.Angle { return c.meanObliquity }
func (c *Coordinates) TrueObliquity() units.Angle { return c.trueObliquity }

// NutationAngles returns the current nutation in longitude and obliquity.
func (c *Coordinates) NutationAngles() (dPsi, dEps units.Angle) { return c.dPsi, c.dEps }

func (c *Coordinates) recompute() {
	l, lp, f, d, om := fundamentalArgs(c.t)
	dPsiRad, dEpsRad := nutationAngles(l, lp, f, d, om, c.t)
	c.dPsi = units.NewAngle(dPsiRad)
	c.dEps = units.NewAngle(dEpsRad)
	c.meanObliquity = units.NewAngle(meanObliquity(c.t))
	c.trueObliquity = c.meanObliquity.Add(c.dEps)

	bias := icrsToJ2000Matrix()
	j2000ToMean := precessionMatrix(c.t) // forward: J2000 -> mean-of-date
	meanToTrue := nutationMatrix(c.dPsi.Radians(), c.dEps.Radians(), c.meanObliquity.Radians())

	icrsToMean := j2000ToMean.Mul(bias)
	icrsToTrue := meanToTrue.Mul(icrsToMean)

	gmst := gmstDeg(c.jdUT1)
	eqeqDeg := c.dPsi.Radians() * cos(c.meanObliquity.Radians()) * rad2deg
	c.gast = units.AngleFromDegrees(modDeg(gmst + eqeqDeg))

	eclMat := vector.RotationX(c.meanObliquity.Radians())

	c.icrsTo[Fundamental] = vector.Identity()
	c.icrsTo[MeanOfDate] = icrsToMean
	c.icrsTo[EquatorialOfDate] = icrsToTrue
	c.icrsTo[EclipticOfDate] = eclMat.Mul(icrsToMean)
	c.icrsTo[Galactic] = galacticMatrix
	c.icrsTo[B1950] = b1950Matrix

	c.recomputeHorizon()
}

func (c *Coordinates) recomputeHorizon() {
	lat := c.loc.LatDeg * deg2rad
	lon := c.loc.LonDeg * deg2rad
	sinLat, cosLat := sincos(lat)

	// ICRS -> ITRF: Earth-rotation (GAST) applied on top of equatorial-of-date.
	earthRotation := vector.RotationZ(c.gast.Radians())
	c.icrsToITRF = earthRotation.Mul(c.icrsTo[EquatorialOfDate])

	// ITRF -> local North-East-Up: Rz(lon) then the lat-dependent matrix
	// below (equivalent to Ry(lat) with its first and third rows swapped,
	// which rotates the zenith onto +Z and north onto +X).
	latMat := vector.Matrix{
		{-sinLat, 0, cosLat},
		{0, 1, 0},
		{cosLat, 0, sinLat},
	}
	horizonFromITRF := latMat.Mul(vector.RotationZ(lon))

	c.icrsTo[Horizon] = horizonFromITRF.Mul(c.icrsToITRF)
}

// Transform converts v from frame `from` into frame `to`.
func (c *Coordinates) Transform(from, to Frame, v vector.Vector) vector.Vector {
	if from == to {
		return v
	}
	inICRS := c.icrsTo[from].Transpose().Apply(v)
	return c.icrsTo[to].Apply(inICRS)
}
