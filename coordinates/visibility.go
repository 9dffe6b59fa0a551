package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

const earthRadiusKm = 6371.0 // mean radius, km

// IsSunlit returns true if a geocentric position (km, ICRS) is illuminated
// by the Sun, via a line-sphere shadow test against a spherical Earth.
func IsSunlit(posKm, sunPosKm vector.Vector) bool {
	toSun := sunPosKm.Sub(posKm)
	earthCenter := posKm.Scale(-1)

	near, far := intersectLineSphere(toSun, earthCenter, earthRadiusKm)
	if math.IsNaN(near) {
		return true
	}

	sunDist := toSun.Magnitude()
	if sunDist == 0 {
		return false
	}
	if far < 0 || near > sunDist {
		return true
	}
	return false
}

// IsBehindEarth returns true if the target is geometrically behind Earth
// as seen from the observer: the line of sight passes through Earth's
// sphere before reaching the target. Both positions are geocentric ICRS
// vectors in km.
func IsBehindEarth(observerPosKm, targetPosKm vector.Vector) bool {
	toTarget := targetPosKm.Sub(observerPosKm)
	earthCenter := observerPosKm.Scale(-1)

	near, _ := intersectLineSphere(toTarget, earthCenter, earthRadiusKm)
	if math.IsNaN(near) {
		return false
	}

	targetDist := toTarget.Magnitude()
	if targetDist == 0 {
		return false
	}
	return near >= 0 && near <= targetDist
}

// intersectLineSphere computes the line-sphere intersection for a line
// from the origin toward direction, against a sphere of the given radius
// centered at center. Returns (near, far) distances along the
// (unit-normalized) direction; NaN if there's no intersection.
func intersectLineSphere(direction, center vector.Vector, radius float64) (near, far float64) {
	unit, lenE := direction.Normalize()
	if lenE == 0 {
		return math.NaN(), math.NaN()
	}

	minusB := 2.0 * unit.Dot(center)
	c := center.Dot(center) - radius*radius
	discriminant := minusB*minusB - 4.0*c
	if discriminant < 0 {
		return math.NaN(), math.NaN()
	}

	dsqrt := math.Sqrt(discriminant)
	near = (minusB - dsqrt) / 2.0
	far = (minusB + dsqrt) / 2.0
	return
}
