package orbit

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

// OsculatingReport holds the full set of derived quantities
// ElementsFromStateVector extracts from a state vector — useful for
// display or for re-propagating an orbit after a tracking gap (spec §9
// design note on state-vector round-tripping).
//
// Based on Bate, Mueller & White, "Fundamentals of Astrodynamics"
// (1971), §2.4.
type OsculatingReport struct {
	SemiMajorAxisKm     float64
	SemiMinorAxisKm     float64
	SemiLatusRectumKm   float64
	Eccentricity        float64
	InclinationDeg      float64
	LongAscNodeDeg      float64
	ArgPeriapsisDeg     float64
	TrueAnomalyDeg      float64
	EccentricAnomalyDeg float64
	MeanAnomalyDeg      float64
	MeanMotionDegPerDay float64
	PeriapsisDistanceKm float64
	ApoapsisDistanceKm  float64
	PeriodDays          float64
	TrueLongitudeDeg    float64
	MeanLongitudeDeg    float64
	LongPeriapsisDeg    float64
	ArgLatitudeDeg      float64
	PeriapsisTimeDays   float64
}

const (
	twoPi     = 2 * math.Pi
	rad2deg   = 180.0 / math.Pi
	secPerDay = 86400.0
)

// ElementsFromStateVector computes osculating Keplerian orbital elements
// from a heliocentric position and velocity state vector.
//
// posKm is position in km, velKmPerSec is velocity in km/s. muKm3s2 is
// the gravitational parameter GM in km³/s² (e.g. 132712440041.94 for the
// Sun).
func ElementsFromStateVector(posKm, velKmPerSec vector.Vector, muKm3s2 float64) OsculatingReport {
	r := posKm.Magnitude()
	v := velKmPerSec.Magnitude()

	hVec := posKm.Cross(velKmPerSec)
	h := hVec.Magnitude()

	rdv := posKm.Dot(velKmPerSec)
	v2 := v * v
	factor := v2 - muKm3s2/r
	eVec := vector.New(
		(factor*posKm.X-rdv*velKmPerSec.X)/muKm3s2,
		(factor*posKm.Y-rdv*velKmPerSec.Y)/muKm3s2,
		(factor*posKm.Z-rdv*velKmPerSec.Z)/muKm3s2,
	)
	e := eVec.Magnitude()

	nVec := vector.New(-hVec.Y, hVec.X, 0)
	n := nVec.Magnitude()

	p := h * h / muKm3s2

	inc := math.Acos(clamp(hVec.Z/h, -1, 1))

	var omega float64
	if n > 1e-15 {
		omega = math.Atan2(hVec.X, -hVec.Y)
		if omega < 0 {
			omega += twoPi
		}
	}

	nu := trueAnomaly(eVec, e, nVec, n, posKm, velKmPerSec, r, rdv)
	w := argPeriapsis(eVec, e, nVec, n, posKm, velKmPerSec, hVec)

	var a float64
	e2 := e * e
	if math.Abs(e-1.0) < 1e-15 {
		a = math.Inf(1)
	} else {
		a = p / (1.0 - e2)
	}

	var b float64
	if e < 1.0 {
		b = p / math.Sqrt(1.0-e2)
	} else if e > 1.0 {
		b = p * math.Sqrt(e2-1.0) / (1.0 - e2)
		if b < 0 {
			b = -b
		}
	}

	E := eccentricAnomaly(nu, e)
	M := meanAnomaly(E, e)

	var nMot float64
	absA := math.Abs(a)
	if absA > 0 && !math.IsInf(absA, 0) {
		nMot = math.Sqrt(muKm3s2 / (absA * absA * absA))
	}

	var q, Q float64
	if math.Abs(e-1.0) < 1e-15 {
		q = p / 2.0
	} else {
		q = p * (1.0 - e) / (1.0 - e2)
	}
	if e < 1.0 {
		Q = p * (1.0 + e) / (1.0 - e2)
	} else {
		Q = math.Inf(1)
	}

	var period float64
	if a > 0 && !math.IsInf(a, 0) {
		period = twoPi * math.Sqrt(a*a*a/muKm3s2) / secPerDay
	} else {
		period = math.Inf(1)
	}

	var tPeri float64
	if nMot > 1e-20 {
		tPeri = M / nMot / secPerDay
	}

	trueLon := modTwoPi(omega + w + nu)
	meanLon := modTwoPi(omega + w + M)
	longPeri := modTwoPi(omega + w)
	argLat := modTwoPi(w + nu)

	return OsculatingReport{
		SemiMajorAxisKm:     a,
		SemiMinorAxisKm:     b,
		SemiLatusRectumKm:   p,
		Eccentricity:        e,
		InclinationDeg:      inc * rad2deg,
		LongAscNodeDeg:      omega * rad2deg,
		ArgPeriapsisDeg:     w * rad2deg,
		TrueAnomalyDeg:      nu * rad2deg,
		EccentricAnomalyDeg: E * rad2deg,
		MeanAnomalyDeg:      M * rad2deg,
		MeanMotionDegPerDay: nMot * rad2deg * secPerDay,
		PeriapsisDistanceKm: q,
		ApoapsisDistanceKm:  Q,
		PeriodDays:          period,
		TrueLongitudeDeg:    trueLon * rad2deg,
		MeanLongitudeDeg:    meanLon * rad2deg,
		LongPeriapsisDeg:    longPeri * rad2deg,
		ArgLatitudeDeg:      argLat * rad2deg,
		PeriapsisTimeDays:   tPeri,
	}
}

func trueAnomaly(eVec vector.Vector, e float64, nVec vector.Vector, n float64, pos, vel vector.Vector, r, rdv float64) float64 {
	if e > 1e-15 {
		nu := angleBetween(eVec, pos)
		if rdv < 0 {
			nu = twoPi - nu
		}
		if e > 1.0-1e-15 {
			nu = normPi(nu)
		}
		return nu
	}
	if n < 1e-15 {
		nu := math.Acos(clamp(pos.X/r, -1, 1))
		if vel.X > 0 {
			nu = twoPi - nu
		}
		return nu
	}
	nu := angleBetween(nVec, pos)
	if pos.Z < 0 {
		nu = twoPi - nu
	}
	return nu
}

func argPeriapsis(eVec vector.Vector, e float64, nVec vector.Vector, n float64, pos, vel, hVec vector.Vector) float64 {
	if e < 1e-15 {
		return 0
	}
	if n > 1e-15 {
		w := angleBetween(nVec, eVec)
		if eVec.Z < 0 {
			w = twoPi - w
		}
		return w
	}
	w := math.Atan2(eVec.Y, eVec.X)
	if w < 0 {
		w += twoPi
	}
	if pos.Cross(vel).Z < 0 {
		w = twoPi - w
	}
	return w
}

func eccentricAnomaly(nu, e float64) float64 {
	if e < 1.0 {
		E := 2.0 * math.Atan(math.Sqrt((1.0-e)/(1.0+e))*math.Tan(nu/2.0))
		if E < 0 {
			E += twoPi
		}
		return E
	}
	if e > 1.0 {
		tanNu2 := math.Tan(nu / 2.0)
		ratio := tanNu2 / math.Sqrt((e+1.0)/(e-1.0))
		E := 2.0 * math.Atanh(ratio)
		return normPi(E)
	}
	return 0
}

func meanAnomaly(E, e float64) float64 {
	if e < 1.0 {
		M := E - e*math.Sin(E)
		return modTwoPi(M)
	}
	if e > 1.0 {
		M := e*math.Sinh(E) - E
		return normPi(M)
	}
	return 0
}

func angleBetween(u, v vector.Vector) float64 {
	uMag := u.Magnitude()
	vMag := v.Magnitude()
	if uMag == 0 || vMag == 0 {
		return 0
	}
	// Kahan's numerically stable formula for the angle between two vectors.
	a := u.Scale(vMag)
	b := v.Scale(uMag)
	diff := a.Sub(b)
	sum := a.Add(b)
	return 2.0 * math.Atan2(diff.Magnitude(), sum.Magnitude())
}

func normPi(angle float64) float64 {
	a := math.Mod(angle+math.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a - math.Pi
}

func modTwoPi(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
