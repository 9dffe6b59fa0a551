package eventfinder

import (
	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// ObjectDistance is the physical distance in AU between obj1 and obj2,
// grounded on the original's object_distance event function.
func ObjectDistance(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64 {
	pos1 := obj1.Direction.Scale(obj1.Distance)
	pos2 := obj2.Direction.Scale(obj2.Distance)
	return pos1.Distance(pos2)
}

// ObjectSeparation is the angular separation in radians between obj1 and
// obj2's apparent directions, grounded on object_separation.
func ObjectSeparation(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64 {
	return obj1.Direction.SeparationAngle(obj2.Direction)
}

// ObjectAltitude is obj1's altitude above the horizon in radians,
// grounded on object_altitude. obj2 is ignored.
func ObjectAltitude(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64 {
	alt, _, _ := dyn.Coords.AltAz(obj1.Direction)
	return alt.Radians()
}

// EclipticLongitude is obj1's apparent ecliptic longitude of date in
// radians, the basis for season-finding and moon-phase searches. obj2 is
// ignored.
func EclipticLongitude(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64 {
	v := dyn.Coords.Transform(coordinates.Fundamental, coordinates.EclipticOfDate, obj1.Direction)
	return vector.FromVector(v).Lon
}

// EclipticLongitudeDifference is the ecliptic longitude of obj1 minus
// that of obj2, reduced to [0, 2π) — the quantity moon-phase and
// conjunction/opposition searches step through.
func EclipticLongitudeDifference(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64 {
	lon1 := EclipticLongitude(dyn, obj1, nil)
	lon2 := EclipticLongitude(dyn, obj2, nil)
	diff := lon1 - lon2
	return units.NewAngle(diff).Mod2Pi().Radians()
}
