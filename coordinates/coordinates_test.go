package coordinates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcturuslab/skycore/vector"
)

func TestTransformFundamentalIdentity(t *testing.T) {
	c := New(j2000JD, Location{LatDeg: 40, LonDeg: -74})
	v := vector.New(1, 2, 3)
	got := c.Transform(Fundamental, Fundamental, v)
	assert.Equal(t, v, got)
}

func TestTransformRoundTrip(t *testing.T) {
	c := New(2460000.5, Location{LatDeg: 51.5, LonDeg: -0.13, AltKm: 0.02})
	v := vector.New(0.3, 0.7, 0.2)
	for _, f := range []Frame{MeanOfDate, EquatorialOfDate, EclipticOfDate, Horizon, Galactic, B1950} {
		toF := c.Transform(Fundamental, f, v)
		back := c.Transform(f, Fundamental, toF)
		assert.InDelta(t, v.X, back.X, 1e-9, "frame %d", f)
		assert.InDelta(t, v.Y, back.Y, 1e-9, "frame %d", f)
		assert.InDelta(t, v.Z, back.Z, 1e-9, "frame %d", f)
	}
}

func TestTransformPreservesMagnitude(t *testing.T) {
	c := New(2451545.0, Location{})
	v := vector.New(1.2, -3.4, 0.9)
	for _, f := range []Frame{MeanOfDate, EquatorialOfDate, EclipticOfDate, Horizon, Galactic, B1950} {
		got := c.Transform(Fundamental, f, v)
		assert.InDelta(t, v.Magnitude(), got.Magnitude(), 1e-9, "frame %d", f)
	}
}

func TestMeanObliquityNearJ2000(t *testing.T) {
	c := New(j2000JD, Location{})
	// IAU 1980 mean obliquity at J2000 is 84381.448 arcsec = 23.439...deg.
	assert.InDelta(t, 23.4392911, c.MeanObliquity().Degrees(), 1e-6)
}

func TestNutationAnglesAreSmall(t *testing.T) {
	c := New(2460000.5, Location{})
	dPsi, dEps := c.NutationAngles()
	// Nutation amplitudes are at most ~17/9 arcsec.
	assert.Less(t, math.Abs(dPsi.Arcseconds()), 20.0)
	assert.Less(t, math.Abs(dEps.Arcseconds()), 10.0)
}

func TestGASTNearGMSTWithinArcseconds(t *testing.T) {
	c := New(2460000.5, Location{})
	diff := c.GAST().Degrees() - c.GMST()
	// GAST = GMST + equation of equinoxes = dPsi*cos(obliquity), which is
	// at most a few tens of arcseconds (dPsi tops out around 17 arcsec).
	assert.Less(t, math.Abs(diff)*3600.0, 20.0)
}

func TestAltAzZenithForOverheadObject(t *testing.T) {
	c := New(2451545.0, Location{LatDeg: 0, LonDeg: 0})
	// A vector straight up at the observer's ITRF position should read ~90° altitude.
	ecef := GeodeticToECEF(0, 0, 1_000_000.0)
	icrs := c.icrsToITRF.Transpose().Apply(ecef)
	alt, _, _ := c.AltAz(icrs)
	assert.InDelta(t, 90.0, alt.Degrees(), 1e-6)
}

func TestRefractionZeroOutsideRange(t *testing.T) {
	assert.Equal(t, 0.0, Refraction(-5, 10, 1010))
	assert.Equal(t, 0.0, Refraction(90, 10, 1010))
}

func TestRefractionRoundTrip(t *testing.T) {
	trueAlt := 10.0
	apparent := ApplyRefraction(trueAlt, 10, 1010)
	back := RemoveRefraction(apparent, 10, 1010)
	assert.InDelta(t, trueAlt, back, 1e-4)
}

func TestGeodeticECEFRoundTrip(t *testing.T) {
	latDeg, lonDeg, heightKm := 37.4, -122.1, 0.05
	v := GeodeticToECEF(latDeg, lonDeg, heightKm)
	gotLat, gotLon, gotH := ECEFToGeodetic(v)
	assert.InDelta(t, latDeg, gotLat, 1e-9)
	assert.InDelta(t, lonDeg, gotLon, 1e-9)
	assert.InDelta(t, heightKm, gotH, 1e-6)
}

func TestAberrationNoMotionIsIdentity(t *testing.T) {
	pos := vector.New(1e8, 0, 0)
	zero := vector.New(0, 0, 0)
	got := Aberration(pos, zero, 500.0)
	assert.Equal(t, pos, got)
}

func TestIsSunlitNoShadowBehindEarth(t *testing.T) {
	sat := vector.New(7000, 0, 0)
	sun := vector.New(1.5e8, 0, 0)
	assert.True(t, IsSunlit(sat, sun))
}

func TestIsSunlitInShadow(t *testing.T) {
	sat := vector.New(-7000, 0, 0)
	sun := vector.New(1.5e8, 0, 0)
	assert.False(t, IsSunlit(sat, sun))
}

func TestFractionIlluminatedFullAndNew(t *testing.T) {
	assert.InDelta(t, 1.0, FractionIlluminated(0), 1e-12)
	assert.InDelta(t, 0.0, FractionIlluminated(180), 1e-12)
	assert.InDelta(t, 0.5, FractionIlluminated(90), 1e-12)
}

func TestApparentDirectionNoFlagsMatchesStatic(t *testing.T) {
	c := New(2451545.0, Location{})
	c.Flags = Flags{}
	target := vector.New(1.5, 0, 0)
	dir, dist := c.ApparentDirection(func(jd float64) vector.Vector { return target })
	assert.InDelta(t, 1.5, dist, 1e-12)
	unit, _ := target.Normalize()
	assert.InDelta(t, unit.X, dir.X, 1e-12)
}
