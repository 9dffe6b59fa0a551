package catalog

import (
	"math"

	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// DoubleStarData holds the component and (optional) binary-orbit fields
// of a double star (spec §3 "DoubleStar").
type DoubleStarData struct {
	ComponentLabel   string  // e.g. "AB"
	MagnitudeDelta   float64 // secondary minus primary magnitude
	SeparationArcsec float64
	PositionAngleDeg float64
	PAEpochYear      float64

	// Orbit is nil for double stars known only by a single separation/PA
	// measurement. When present, it overrides SeparationArcsec and
	// PositionAngleDeg with a value computed at the current time.
	Orbit *BinaryOrbit
}

// BinaryOrbit is a visual binary's apparent orbit: Keplerian elements
// referenced to the tangent plane of the fundamental equatorial frame
// (spec §3 "DoubleStar": "orbits are stored referenced to the fundamental
// equatorial frame but may be constructed from sky-plane-referenced
// elements via a rotation"). Unlike orbit.Elements, PeriapsisArcsec and
// the resulting offset are angular (arcseconds), not physical (AU):
// visual binary elements describe the secondary's position on the sky,
// not its distance, so there is no ecliptic/equatorial frame conversion
// to apply.
type BinaryOrbit struct {
	EpochJD          float64     // T0: epoch of MeanAnomaly
	PeriapsisArcsec  float64     // a(1-e), angular periapsis distance
	Eccentricity     float64     // 0 <= e < 1
	Inclination      units.Angle // i, relative to the plane of the sky
	ArgPeriapsis     units.Angle // ω, in the orbital plane
	PositionAngleAsc units.Angle // Ω, position angle of the ascending node
	MeanAnomaly      units.Angle // M at EpochJD
	PeriodDays       float64
}

// tangentOffsetRadians returns the secondary's offset from the primary, in radians
// on the tangent plane resolved into an (X north, Y east, Z toward
// primary) frame, so it can be added directly to the primary's unit
// direction vector and renormalized.
func (b *BinaryOrbit) tangentOffsetRadians(jdTDB float64) vector.Vector {
	e := b.Eccentricity
	n := 2 * math.Pi / b.PeriodDays
	M := b.MeanAnomaly.Radians() + n*(jdTDB-b.EpochJD)
	nu := solveBinaryKepler(M, e)

	p := b.PeriapsisArcsec * (1 + e)
	r := p / (1 + e*math.Cos(nu)) // arcsec

	// Thiele-Innes style projection: rotate the (r, nu) polar position in
	// the orbital plane by argument of periapsis, inclination, and
	// position angle of the ascending node onto the sky's (north, east)
	// axes.
	theta := nu + b.ArgPeriapsis.Radians()
	xOrb := r * math.Cos(theta)
	yOrb := r * math.Sin(theta) * math.Cos(b.Inclination.Radians())

	pa := b.PositionAngleAsc.Radians()
	north := xOrb*math.Cos(pa) - yOrb*math.Sin(pa)
	east := xOrb*math.Sin(pa) + yOrb*math.Cos(pa)

	arcsecToRad := math.Pi / (180.0 * 3600.0)
	return vector.New(north*arcsecToRad, east*arcsecToRad, 0)
}

// offsetAU is a thin alias kept for readability at the call site in
// star.go: the quantity is angular (radians), applied as a small-angle
// tangent-plane perturbation to the primary's AU-scale heliocentric
// vector, which is valid to the precision this model targets.
func (d *DoubleStarData) offsetAU(jdTDB float64) vector.Vector {
	if d.Orbit == nil {
		return vector.Zero
	}
	return d.Orbit.tangentOffsetRadians(jdTDB)
}

// solveBinaryKepler solves Kepler's equation for an elliptic visual binary
// orbit, mirroring orbit.Elements' own Newton-Raphson solver.
func solveBinaryKepler(M, e float64) (nu float64) {
	M = units.NewAngle(M).ModPi().Radians()

	E := M
	for iter := 0; iter < 50; iter++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - M
		fp := 1.0 - e*cosE
		dE := -f / fp
		E += dE
		if math.Abs(dE) < 1e-15 {
			break
		}
	}
	sinE, cosE := math.Sincos(E)
	return math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e)
}

// VariableData holds a variable star's light-curve parameters (spec §3
// "VariableStar").
type VariableData struct {
	VarType    string // GCVS variability type code
	MagMax     float64
	MagMin     float64
	PeriodDays float64
	EpochJD    float64
}
