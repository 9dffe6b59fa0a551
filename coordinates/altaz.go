package coordinates

import (
	"math"

	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// AltAz converts a geocentric ICRS position vector (km) to altitude,
// azimuth, and distance for the observer's current location and instant.
// Altitude is geometric (no refraction); azimuth is measured 0=North,
// 90=East.
func (c *Coordinates) AltAz(posICRS vector.Vector) (alt, az units.Angle, distKm float64) {
	local := c.Transform(Fundamental, Horizon, posICRS)
	distKm = local.Magnitude()
	rXY := math.Sqrt(local.X*local.X + local.Y*local.Y)
	alt = units.NewAngle(math.Atan2(local.Z, rXY))
	az = units.AngleFromDegrees(modDeg(math.Atan2(local.Y, local.X)*rad2deg + 360.0))
	return
}

// HourAngleDeclination returns the hour angle (westward from the local
// meridian, 0-360°) and declination (true equator of date) of a
// geocentric ICRS position vector.
func (c *Coordinates) HourAngleDeclination(posICRS vector.Vector) (ha, dec units.Angle) {
	posTr := c.Transform(Fundamental, EquatorialOfDate, posICRS)

	r := posTr.Magnitude()
	if r == 0 {
		return units.NewAngle(0), units.NewAngle(0)
	}
	rXY := math.Sqrt(posTr.X*posTr.X + posTr.Y*posTr.Y)
	dec = units.NewAngle(math.Atan2(posTr.Z, rXY))
	raDeg := modDeg(math.Atan2(posTr.Y, posTr.X)*rad2deg + 360.0)

	haDeg := modDeg(c.gast.Degrees() + c.loc.LonDeg - raDeg + 720.0)
	ha = units.AngleFromDegrees(haDeg)
	return
}
