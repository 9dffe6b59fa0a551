package eventfinder

import (
	"math"
	"testing"

	"github.com/arcturuslab/skycore/units"
)

func TestSemiDiurnalArcEquatorialObjectFromEquator(t *testing.T) {
	lat := units.AngleFromDegrees(0)
	dec := units.AngleFromDegrees(0)
	alt := units.AngleFromDegrees(0)
	ha := semiDiurnalArc(lat, dec, alt)
	if math.Abs(ha.Radians()-math.Pi/2) > 1e-9 {
		t.Errorf("semiDiurnalArc = %v rad, want pi/2 (6h semidiurnal arc)", ha.Radians())
	}
}

func TestSemiDiurnalArcNeverRises(t *testing.T) {
	lat := units.AngleFromDegrees(85)
	dec := units.AngleFromDegrees(-80)
	alt := units.AngleFromDegrees(0)
	ha := semiDiurnalArc(lat, dec, alt)
	if ha.Radians() != 0 {
		t.Errorf("semiDiurnalArc = %v, want 0 (never rises)", ha.Radians())
	}
}

func TestSemiDiurnalArcNeverSets(t *testing.T) {
	lat := units.AngleFromDegrees(85)
	dec := units.AngleFromDegrees(80)
	alt := units.AngleFromDegrees(0)
	ha := semiDiurnalArc(lat, dec, alt)
	if math.Abs(ha.Radians()-math.Pi) > 1e-9 {
		t.Errorf("semiDiurnalArc = %v, want pi (never sets)", ha.Radians())
	}
}

func TestRiseTransitSetClosedFormNeverRisesIsNegInf(t *testing.T) {
	jd := RiseTransitSetClosedForm(2451545.0, units.AngleFromDegrees(0), units.AngleFromDegrees(-80),
		Rise, 0, 85, units.AngleFromDegrees(0), units.AngleFromDegrees(0))
	if !math.IsInf(jd, -1) {
		t.Errorf("RiseTransitSetClosedForm = %v, want -Inf", jd)
	}
}

func TestRiseTransitSetClosedFormNeverSetsIsPosInf(t *testing.T) {
	jd := RiseTransitSetClosedForm(2451545.0, units.AngleFromDegrees(0), units.AngleFromDegrees(80),
		Set, 0, 85, units.AngleFromDegrees(0), units.AngleFromDegrees(0))
	if !math.IsInf(jd, 1) {
		t.Errorf("RiseTransitSetClosedForm = %v, want +Inf", jd)
	}
}

func TestRiseTransitSetClosedFormTransitAtLocalMeridian(t *testing.T) {
	// When RA equals the local sidereal time, the object is already on
	// the meridian: a transit search should return essentially jd itself.
	jd := 2451545.0
	gast := units.AngleFromDegrees(30)
	ra := units.AngleFromDegrees(30)
	dec := units.AngleFromDegrees(10)
	result := RiseTransitSetClosedForm(jd, ra, dec, Transit, 0, 45, units.AngleFromDegrees(0), gast)
	if math.Abs(result-jd) > 1.0/86400.0 {
		t.Errorf("RiseTransitSetClosedForm(Transit) = %v, want close to %v", result, jd)
	}
}
