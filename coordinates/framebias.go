package coordinates

import "github.com/arcturuslab/skycore/vector"

// galacticMatrix rotates ICRS (J2000) into Galactic System II (IAU 1958):
// v_gal = galacticMatrix * v_icrs.
var galacticMatrix = vector.Matrix{
	{-0.054875539395742523, -0.87343710472759606, -0.48383499177002515},
	{0.49410945362774389, -0.44482959429757496, 0.74698224869989183},
	{-0.86766613568337381, -0.19807638961301985, 0.45598379452141991},
}

// b1950Matrix rotates ICRS (J2000) into the mean equator and equinox of
// B1950 (FK4): v_b1950 = b1950Matrix * v_icrs.
var b1950Matrix = vector.Matrix{
	{0.99992570795236291, 0.011178938126427691, 0.0048590038414544293},
	{-0.011178938137770135, 0.9999375133499887, -2.715792625851078e-05},
	{-0.0048590038153592712, -2.7162594714247048e-05, 0.9999881946023742},
}

// icrsToJ2000Matrix returns the frame-bias matrix from ICRS to the
// dynamical mean equator and equinox of J2000 (a few milliarcseconds),
// per IERS Conventions 2003 Chapter 5.
func icrsToJ2000Matrix() vector.Matrix {
	const asec2rad = deg2rad / 3600.0

	xi0 := -0.0166170 * asec2rad
	eta0 := -0.0068192 * asec2rad
	da0 := -0.01460 * asec2rad

	yx := -da0
	zx := xi0
	xy := da0
	zy := eta0
	xz := -xi0
	yz := -eta0

	xx := 1.0 - 0.5*(yx*yx+zx*zx)
	yy := 1.0 - 0.5*(yx*yx+zy*zy)
	zz := 1.0 - 0.5*(zy*zy+zx*zx)

	return vector.Matrix{
		{xx, xy, xz},
		{yx, yy, yz},
		{zx, zy, zz},
	}
}
