package elp

import "math"

const arcsec2rad = math.Pi / (180.0 * 3600.0)
const deg2rad = math.Pi / 180.0
const turn2rad = 2.0 * math.Pi / 1296000.0 // arcsec per full turn, same unit ELP publishes its polynomials in

// arguments holds the four Delaunay-type mean elements ELPMPP02 expresses
// every term as an integer combination of, plus the Moon's mean
// longitude (needed to turn the series' longitude correction into an
// absolute ecliptic longitude), evaluated at T Julian centuries from
// J2000 TDB, along with their rates in radians/day.
//
// Polynomials are Chapront & Francou's ELP/MPP02 mean-element fit
// (the same family of quantities teacher lunarnodes.go's MeanLunarNodes
// uses Meeus's coefficients for); coefficients are in arcseconds.
type arguments struct {
	d, dRate   float64 // mean elongation of the Moon from the Sun
	l, lRate   float64 // mean anomaly of the Moon
	lp, lpRate float64 // mean anomaly of the Sun
	f, fRate   float64 // mean argument of latitude (distance from ascending node)
	w1, w1Rate float64 // Moon's mean longitude of date
}

// derivTerm computes i*c*T^(i-1), the i-th term's contribution to the
// derivative of a polynomial in T. Handled as an exact analytic case for
// i==0 rather than relying on T^(i-1)/T, which is undefined at T==0.
func derivTerm(i int, c, t float64) float64 {
	if i == 0 {
		return 0
	}
	return float64(i) * c * math.Pow(t, float64(i-1))
}

// polyValue and polyRate evaluate an arcsecond polynomial and its
// derivative (arcsec/century) at T independently; used in place of the
// combined poly() helper to keep the zero-T derivative case exact.
func polyValue(t float64, coeffs []float64) float64 {
	v := 0.0
	tpow := 1.0
	for _, c := range coeffs {
		v += c * tpow
		tpow *= t
	}
	return v
}

func polyRate(t float64, coeffs []float64) float64 {
	r := 0.0
	for i, c := range coeffs {
		r += derivTerm(i, c, t)
	}
	return r
}

// computeArguments evaluates the mean elements at T Julian centuries TDB
// from J2000.
func computeArguments(t float64) arguments {
	// Coefficients in arcseconds; T^0..T^4. Source: Chapront & Francou
	// (2003) ELP/MPP02 mean elements, the polynomial family also behind
	// teacher lunarnodes.go's node formula (there expressed in degrees
	// for Meeus's simpler node-only series; these are ELP's own fit).
	dCoef := []float64{1072260.70369, 1602961601.4603, -6.8084, 0.006239, -0.00003169}
	lCoef := []float64{485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470}
	lpCoef := []float64{1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149}
	fCoef := []float64{335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417}
	w1Coef := []float64{785939.95571, 1732559343.73604, -5.8883, 0.006604, -0.00003169}

	a := arguments{}
	a.d = polyValue(t, dCoef) * arcsec2rad
	a.dRate = polyRate(t, dCoef) * arcsec2rad / 36525.0
	a.l = polyValue(t, lCoef) * arcsec2rad
	a.lRate = polyRate(t, lCoef) * arcsec2rad / 36525.0
	a.lp = polyValue(t, lpCoef) * arcsec2rad
	a.lpRate = polyRate(t, lpCoef) * arcsec2rad / 36525.0
	a.f = polyValue(t, fCoef) * arcsec2rad
	a.fRate = polyRate(t, fCoef) * arcsec2rad / 36525.0
	a.w1 = polyValue(t, w1Coef) * arcsec2rad
	a.w1Rate = polyRate(t, w1Coef) * arcsec2rad / 36525.0
	return a
}
