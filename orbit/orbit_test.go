package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// Earth's approximate osculating elements at J2000, for a sanity check
// against the known ~1 AU distance and ~365.25 day period.
func earthLikeElements() *Elements {
	return &Elements{
		EpochJD:      2451545.0,
		PeriapsisAU:  0.98329,
		Eccentricity: 0.0167,
		Inclination:  units.AngleFromDegrees(0.00005),
		ArgPeriapsis: units.AngleFromDegrees(102.94719),
		LongAscNode:  units.AngleFromDegrees(-11.26064),
		MeanAnomaly:  units.AngleFromDegrees(357.51716),
	}
}

func TestPositionVelocityAU_EarthDistance(t *testing.T) {
	el := earthLikeElements()
	pos, _ := el.PositionVelocityAU(2451545.0)
	assert.InDelta(t, 1.0, pos.Magnitude(), 0.02)
}

func TestPositionVelocityAU_PeriodicOverOneYear(t *testing.T) {
	el := earthLikeElements()
	p0, _ := el.PositionVelocityAU(2451545.0)
	p1, _ := el.PositionVelocityAU(2451545.0 + 365.25636)
	assert.InDelta(t, p0.X, p1.X, 0.02)
	assert.InDelta(t, p0.Y, p1.Y, 0.02)
}

func TestPositionVelocityAU_VelocityMagnitudeVisViva(t *testing.T) {
	el := earthLikeElements()
	el.init()
	_, vel := el.PositionVelocityAU(2451545.0)
	pos, _ := el.PositionVelocityAU(2451545.0)
	r := pos.Magnitude()
	// vis-viva: v² = mu(2/r - 1/a)
	expectedV2 := el.mu * (2.0/r - 1.0/el.a)
	assert.InDelta(t, expectedV2, vel.Magnitude()*vel.Magnitude(), 1e-7)
}

func TestSolveEllipticCircularOrbit(t *testing.T) {
	nu := solveElliptic(1.234, 0.0)
	assert.InDelta(t, 1.234, units.NewAngle(nu).Mod2Pi().Radians(), 1e-9)
}

func TestSolveEllipticHighEccentricity(t *testing.T) {
	e := 0.95
	for _, M := range []float64{0.01, 0.5, math.Pi - 0.01, -1.0} {
		nu := solveElliptic(M, e)
		// Kepler's equation is self-consistent: recompute E from nu and
		// verify M = E - e sin E up to the Newton-Raphson tolerance.
		cosNu, sinNu := math.Cos(nu), math.Sin(nu)
		E := math.Atan2(math.Sqrt(1-e*e)*sinNu, e+cosNu)
		gotM := E - e*math.Sin(E)
		gotM = units.NewAngle(gotM).ModPi().Radians()
		wantM := units.NewAngle(M).ModPi().Radians()
		assert.InDelta(t, wantM, gotM, 1e-8)
	}
}

func TestElementsFromStateVectorRoundTrip(t *testing.T) {
	const muSunKm3s2 = 132712440041.94

	el := earthLikeElements()
	posAU, velAUPerDay := el.PositionVelocityAU(2451545.0)

	// PositionVelocityAU returns an equatorial state; rotate it back into
	// the ecliptic frame the elements are given in before extracting.
	toEcliptic := func(v vector.Vector) vector.Vector {
		return vector.New(v.X, obliquityCos*v.Y+obliquitySin*v.Z, -obliquitySin*v.Y+obliquityCos*v.Z)
	}

	const auKm = 149597870.7
	posKm := toEcliptic(posAU).Scale(auKm)
	velKmPerSec := toEcliptic(velAUPerDay).Scale(auKm / 86400.0)

	report := ElementsFromStateVector(posKm, velKmPerSec, muSunKm3s2)

	assert.InDelta(t, el.Eccentricity, report.Eccentricity, 1e-6)
	assert.InDelta(t, el.Inclination.Degrees(), report.InclinationDeg, 1e-3)
	wantPeriapsisKm := el.PeriapsisAU * auKm
	assert.InDelta(t, wantPeriapsisKm, report.PeriapsisDistanceKm, wantPeriapsisKm*1e-3)
}

func TestElementsFromStateVectorCircularEquatorial(t *testing.T) {
	const mu = 398600.4418 // Earth, km^3/s^2
	r := 7000.0
	v := math.Sqrt(mu / r)
	pos := vector.New(r, 0, 0)
	vel := vector.New(0, v, 0)

	report := ElementsFromStateVector(pos, vel, mu)
	assert.InDelta(t, 0.0, report.Eccentricity, 1e-9)
	assert.InDelta(t, 0.0, report.InclinationDeg, 1e-9)
	assert.InDelta(t, r, report.SemiMajorAxisKm, 1e-6)
}

func TestParabolicBranchFinite(t *testing.T) {
	el := &Elements{
		EpochJD:         2451545.0,
		PeriapsisAU:     1.0,
		Eccentricity:    1.0,
		PeriapsisTimeJD: 2451545.0,
	}
	pos, _ := el.PositionVelocityAU(2451545.0 + 5.0)
	assert.False(t, math.IsNaN(pos.Magnitude()))
	assert.Greater(t, pos.Magnitude(), 0.0)
}

func TestHyperbolicBranchFinite(t *testing.T) {
	el := &Elements{
		EpochJD:         2451545.0,
		PeriapsisAU:     1.0,
		Eccentricity:    1.5,
		PeriapsisTimeJD: 2451545.0,
	}
	pos, _ := el.PositionVelocityAU(2451545.0 + 5.0)
	assert.False(t, math.IsNaN(pos.Magnitude()))
	assert.Greater(t, pos.Magnitude(), el.PeriapsisAU)
}
