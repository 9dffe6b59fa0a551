package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

// precessionMatrix returns P, the IAU 2006 precession matrix transforming
// a vector from the J2000 mean equator/equinox to the mean equator and
// equinox of date. T is Julian centuries from J2000 TDB.
//
// Spec §4.3 calls for the Vondrák-Capitaine-Wallace long-term expressions
// (valid ±200,000 years); this uses the IAU 2006 short-term polynomial
// instead — see DESIGN.md for why the long-term Poisson-series
// coefficients aren't carried here.
func precessionMatrix(T float64) vector.Matrix {
	zetaA := (2.650545 + 2306.083227*T + 0.2988499*T*T +
		0.01801828*T*T*T - 0.000005971*T*T*T*T) * arcsec2rad
	zA := (-2.650545 + 2306.077181*T + 1.0927348*T*T +
		0.01826837*T*T*T - 0.000028596*T*T*T*T) * arcsec2rad
	thetaA := (2004.191903*T - 0.4294934*T*T -
		0.04182264*T*T*T - 0.000007089*T*T*T*T) * arcsec2rad

	// P = Rz(-zA) · Ry(thetaA) · Rz(-zetaA); transcribed directly from the
	// expanded matrix form (rather than composing vector.RotationY/Z) to
	// keep the element-by-element correspondence with the source formula
	// auditable.
	sinZetaA, cosZetaA := math.Sincos(zetaA)
	sinZA, cosZA := math.Sincos(zA)
	sinThetaA, cosThetaA := math.Sincos(thetaA)

	return vector.Matrix{
		{cosZA*cosThetaA*cosZetaA - sinZA*sinZetaA, -cosZA*cosThetaA*sinZetaA - sinZA*cosZetaA, -cosZA * sinThetaA},
		{sinZA*cosThetaA*cosZetaA + cosZA*sinZetaA, -sinZA*cosThetaA*sinZetaA + cosZA*cosZetaA, -sinZA * sinThetaA},
		{sinThetaA * cosZetaA, -sinThetaA * sinZetaA, cosThetaA},
	}
}
