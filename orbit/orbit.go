// Package orbit propagates Keplerian orbital elements to heliocentric
// position and velocity, and extracts osculating elements back out of a
// state vector (spec §3 "Orbit", §4.1, §4.7).
//
// Elements are carried in the J2000 ecliptic frame, matching the
// convention used by the Minor Planet Center and JPL; PositionVelocityAU
// returns vectors in the equatorial (ICRF) frame used by the rest of the
// core.
package orbit

import (
	"math"

	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

const (
	// GMSunAU3D2 is the gravitational parameter of the Sun in AU³/day².
	// Equal to the square of the Gaussian gravitational constant k.
	GMSunAU3D2 = 2.9591220828559115e-4

	// J2000 mean obliquity: 84381.448 arcseconds (Lieske 1979).
	obliquitySin = 0.3977771559319137062
	obliquityCos = 0.9174820620691818140
)

// Elements represents a Keplerian orbit defined by classical osculating
// elements (spec §3 "Orbit"): epoch, periapsis distance, eccentricity,
// inclination, argument of periapsis, longitude of ascending node, mean
// anomaly at epoch, and mean motion.
type Elements struct {
	EpochJD         float64     // t: TDB Julian date the elements are valid at
	PeriapsisAU     float64     // q: periapsis distance in AU
	Eccentricity    float64     // e: 0 ≤ e < 1 elliptic, e = 1 parabolic, e > 1 hyperbolic
	Inclination     units.Angle // i
	ArgPeriapsis    units.Angle // w (ω)
	LongAscNode     units.Angle // n... spec calls this "n" but that collides with mean motion; field name is unambiguous
	MeanAnomaly     units.Angle // m: mean anomaly at EpochJD
	MeanMotion      units.Angle // mm: mean motion, radians/day (0 = derive from PeriapsisAU/Eccentricity)
	PeriapsisTimeJD float64     // if non-zero, overrides MeanAnomaly/EpochJD
	GM              float64     // gravitational parameter, AU³/day² (0 = Sun)

	ready bool
	mu    float64
	a     float64 // semi-major axis, AU (Inf for parabolic)
	q     float64
	e     float64
	p     float64 // semi-latus rectum, AU
	n     float64 // mean motion, rad/day
	rot   vector.Matrix
}

func (el *Elements) init() {
	if el.ready {
		return
	}
	el.ready = true

	el.mu = el.GM
	if el.mu == 0 {
		el.mu = GMSunAU3D2
	}
	el.e = el.Eccentricity
	el.q = el.PeriapsisAU

	switch {
	case el.e < 1.0:
		el.a = el.q / (1.0 - el.e)
		el.p = el.a * (1.0 - el.e*el.e)
	case el.e == 1.0:
		el.a = math.Inf(1)
		el.p = 2.0 * el.q
	default:
		el.a = el.q / (1.0 - el.e)
		el.p = el.a * (1.0 - el.e*el.e)
	}

	el.n = el.MeanMotion.Radians()
	if el.n == 0 && el.e < 1.0 && el.a > 0 {
		el.n = math.Sqrt(el.mu / (el.a * el.a * el.a))
	}

	i := el.Inclination.Radians()
	node := el.LongAscNode.Radians()
	w := el.ArgPeriapsis.Radians()

	// Rotation from perifocal (PQW) frame to J2000 ecliptic: columns of
	// R are the P, Q, W unit vectors. R = Rz(-Ω)·Rx(-i)·Rz(-ω).
	el.rot = vector.RotationZ(-node).
		Mul(vector.RotationX(-i)).
		Mul(vector.RotationZ(-w))
}

// meanAnomalyAt returns the mean anomaly (elliptic) or time-since-periapsis
// in days (parabolic/hyperbolic, handled by the respective solver) at jd.
func (el *Elements) meanAnomalyAt(jd float64) float64 {
	if el.PeriapsisTimeJD != 0 {
		dt := jd - el.PeriapsisTimeJD
		if el.e < 1.0 {
			return el.n * dt
		}
		return dt
	}
	dt := jd - el.EpochJD
	if el.e < 1.0 {
		return el.MeanAnomaly.Radians() + el.n*dt
	}
	return dt
}

// PositionVelocityAU returns heliocentric position (AU) and velocity
// (AU/day) in the equatorial J2000 (ICRF) frame at the given TDB Julian
// date.
func (el *Elements) PositionVelocityAU(tdbJD float64) (pos, vel vector.Vector) {
	el.init()

	M := el.meanAnomalyAt(tdbJD)

	var nu float64
	switch {
	case el.e < 1.0:
		nu = solveElliptic(M, el.e)
	case el.e == 1.0:
		nu = solveParabolic(M, el.mu, el.q)
	default:
		nu = solveHyperbolic(M, el.mu, el.e, el.q)
	}

	r := el.p / (1.0 + el.e*math.Cos(nu))
	h := math.Sqrt(el.mu * el.p)
	sinNu, cosNu := math.Sincos(nu)

	posPQW := vector.New(r*cosNu, r*sinNu, 0)
	velPQW := vector.New(
		(el.mu/h)*-sinNu,
		(el.mu/h)*(el.e+cosNu),
		0,
	)

	posEcl := el.rot.Apply(posPQW)
	velEcl := el.rot.Apply(velPQW)

	return eclipticToEquatorial(posEcl), eclipticToEquatorial(velEcl)
}

// PositionAU returns heliocentric position only; a convenience wrapper
// around PositionVelocityAU for callers that don't need velocity.
func (el *Elements) PositionAU(tdbJD float64) vector.Vector {
	pos, _ := el.PositionVelocityAU(tdbJD)
	return pos
}

func eclipticToEquatorial(v vector.Vector) vector.Vector {
	return vector.New(
		v.X,
		obliquityCos*v.Y-obliquitySin*v.Z,
		obliquitySin*v.Y+obliquityCos*v.Z,
	)
}

// solveElliptic solves Kepler's equation M = E - e·sin(E) by Newton-Raphson
// and returns the true anomaly in radians; radius is recovered by the
// caller from the semi-latus rectum (r = p/(1+e·cos ν)), which holds
// uniformly across all three conic branches.
func solveElliptic(M, e float64) (nu float64) {
	M = units.NewAngle(M).ModPi().Radians()

	E := M
	if e > 0.8 {
		if M >= 0 {
			E = math.Pi
		} else {
			E = -math.Pi
		}
	}
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

// solveParabolic solves Barker's equation for a parabolic orbit (e = 1);
// dt is days since periapsis passage.
func solveParabolic(dt, mu, q float64) (nu float64) {
	W := 3.0 * math.Sqrt(mu/(2.0*q*q*q)) * dt
	Y := math.Cbrt(W + math.Sqrt(W*W+1))
	D := Y - 1.0/Y
	return 2.0 * math.Atan(D)
}

// solveHyperbolic solves M = e·sinh(H) - H by Newton-Raphson; dt is days
// since periapsis passage.
func solveHyperbolic(dt, mu, e, q float64) (nu float64) {
	a := q / (1.0 - e) // negative for hyperbolic orbits
	absA := math.Abs(a)
	M := math.Sqrt(mu/(absA*absA*absA)) * dt

	H := M
	for iter := 0; iter < 50; iter++ {
		sinhH := math.Sinh(H)
		coshH := math.Cosh(H)
		f := e*sinhH - H - M
		fp := e*coshH - 1.0
		dH := -f / fp
		H += dH
		if math.Abs(dH) < 1e-15 {
			break
		}
	}
	return 2.0 * math.Atan(math.Sqrt((e+1.0)/(e-1.0))*math.Tanh(H/2.0))
}
