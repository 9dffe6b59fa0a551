package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/vector"
)

// WGS84 ellipsoid parameters.
const (
	wgs84A  = 6378.137 // equatorial radius, km
	wgs84F  = 1.0 / 298.257223563
	wgs84E2 = wgs84F * (2.0 - wgs84F)
)

// GeodeticToECEF converts geodetic latitude/longitude (degrees) and height
// above the WGS84 ellipsoid (km) to an Earth-fixed (ITRF) Cartesian
// position in km.
func GeodeticToECEF(latDeg, lonDeg, heightKm float64) vector.Vector {
	lat := latDeg * deg2rad
	lon := lonDeg * deg2rad
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	n := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)
	return vector.New(
		(n+heightKm)*cosLat*cosLon,
		(n+heightKm)*cosLat*sinLon,
		(n*(1.0-wgs84E2)+heightKm)*sinLat,
	)
}

// ECEFToGeodetic converts an ITRF Cartesian position (km) to geodetic
// latitude, longitude (degrees), and height above the WGS84 ellipsoid
// (km), via Bowring's iterative method (converges in 2-3 iterations,
// including the poles and equator).
func ECEFToGeodetic(pos vector.Vector) (latDeg, lonDeg, heightKm float64) {
	x, y, z := pos.X, pos.Y, pos.Z
	lonDeg = math.Atan2(y, x) * rad2deg

	p := math.Sqrt(x*x + y*y)
	if p == 0 {
		if z >= 0 {
			latDeg = 90.0
		} else {
			latDeg = -90.0
		}
		heightKm = math.Abs(z) - wgs84A*(1.0-wgs84F)
		return
	}

	b := wgs84A * (1.0 - wgs84F)
	theta := math.Atan2(z*wgs84A, p*b)
	sinTheta, cosTheta := math.Sincos(theta)

	lat := math.Atan2(
		z+wgs84E2/(1.0-wgs84F)*b*sinTheta*sinTheta*sinTheta,
		p-wgs84E2*wgs84A*cosTheta*cosTheta*cosTheta,
	)

	for range 3 {
		sinLat := math.Sin(lat)
		n := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(z+wgs84E2*n*sinLat, p)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	n := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)

	if math.Abs(cosLat) > 1e-10 {
		heightKm = p/cosLat - n
	} else {
		heightKm = math.Abs(z)/math.Abs(sinLat) - n*(1.0-wgs84E2)
	}
	latDeg = lat * rad2deg
	return
}

// ObserverPositionICRS returns the observer's geocentric position vector
// in km, in the fundamental (ICRS) frame, at the current instant. This is
// the geocentric offset catalog's Dynamics.SetObserverState adds to
// Earth's heliocentric position to form ObsPos.
func (c *Coordinates) ObserverPositionICRS() vector.Vector {
	ecef := GeodeticToECEF(c.loc.LatDeg, c.loc.LonDeg, c.loc.AltKm)
	return c.icrsToITRF.Transpose().Apply(ecef)
}
