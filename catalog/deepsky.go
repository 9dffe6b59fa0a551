package catalog

// DeepSkyData holds a deep-sky object's size and shape fields (spec §3
// "DeepSky"): clusters, nebulae, and galaxies. Direction, Distance, and
// Magnitude live on the enclosing Object and are set once at catalog load
// time from the object's cataloged RA/Dec/magnitude — computeEphemeris is
// a no-op for this type since these objects are fixed in the sky to the
// precision this catalog targets.
type DeepSkyData struct {
	MajorAxisRad     float64 // angular major axis, radians
	MinorAxisRad     float64 // angular minor axis, radians
	PositionAngleRad float64
	GalaxyType       string // morphological type code, e.g. "Sb", "E4"
}
