package coordinates

import "github.com/arcturuslab/skycore/vector"

// TEMEToICRS converts a position vector from the True Equator, Mean
// Equinox (TEME) frame — the output frame of SGP4/SDP4 satellite
// propagation — into the fundamental (ICRS) frame at the Coordinates'
// current instant.
//
// TEME uses the true equator of date but a "mean" equinox offset from the
// classical mean equinox by the equation of the equinoxes, so the first
// step undoes that offset with a single Z rotation; what remains is the
// true equator/equinox of date, which Transform already knows how to
// carry back to the fundamental frame via its cached nutation and
// precession matrices.
func (c *Coordinates) TEMEToICRS(posTEME vector.Vector) vector.Vector {
	eqEq := c.dPsi.Radians() * cos(c.meanObliquity.Radians())
	trueOfDate := vector.RotationZ(-eqEq).Apply(posTEME)
	return c.Transform(EquatorialOfDate, Fundamental, trueOfDate)
}
