// Package catalog implements the polymorphic astronomical object model
// (spec §3, §4.7): a tagged record covering stars, deep-sky objects, and
// solar-system bodies, each able to compute its own apparent direction,
// distance, and magnitude for a given observer state, and to round-trip
// through a CSV row.
//
// The type hierarchy in the original source uses virtual dispatch and
// multiple inheritance (DoubleVariableStar extends both DoubleStar and
// VariableStar). Here that becomes a single Object struct carrying a type
// tag plus optional substructures, with dispatch on Type replacing virtual
// calls — the representation spec §9's design notes recommend.
package catalog

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/identifier"
	"github.com/arcturuslab/skycore/vector"
)

// Type identifies an Object's concrete kind. Values match the original
// catalog's numeric type codes so CSV type-code round-tripping stays a
// plain table lookup.
type Type int

const (
	TypeNonexistent Type = 0

	TypePlanet     Type = 1
	TypeMoon       Type = 2
	TypeAsteroid   Type = 3
	TypeComet      Type = 4
	TypeSatellite  Type = 5
	TypeSpacecraft Type = 6

	TypeStar               Type = 10
	TypeDoubleStar         Type = 12
	TypeVariableStar       Type = 13
	TypeDoubleVariableStar Type = 14

	TypeOpenCluster     Type = 20
	TypeGlobularCluster Type = 21
	TypeBrightNebula    Type = 22
	TypeDarkNebula      Type = 23
	TypePlanetaryNebula Type = 24
	TypeGalaxy          Type = 25

	TypeConstellation Type = 30
	TypeAsterism      Type = 31
)

// typeCodes is the ordered (Type, two-letter CSV code) table backing Code
// and CodeToType (spec §6's type-code column).
var typeCodes = []struct {
	t    Type
	code string
}{
	{TypeStar, "SS"},
	{TypeDoubleStar, "DS"},
	{TypeVariableStar, "VS"},
	{TypeDoubleVariableStar, "DV"},
	{TypeOpenCluster, "OC"},
	{TypeGlobularCluster, "GC"},
	{TypeBrightNebula, "BN"},
	{TypeDarkNebula, "DN"},
	{TypePlanetaryNebula, "PN"},
	{TypeGalaxy, "GX"},
	{TypeConstellation, "CN"},
	{TypeAsterism, "AM"},
	{TypePlanet, "PL"},
	{TypeMoon, "MN"},
	{TypeAsteroid, "AS"},
	{TypeComet, "CM"},
	{TypeSatellite, "ST"},
	{TypeSpacecraft, "SC"},
}

// Code returns the two-letter CSV type code for t, or "" if t is not a
// recognized, persistable type.
func (t Type) Code() string {
	for _, row := range typeCodes {
		if row.t == t {
			return row.code
		}
	}
	return ""
}

// CodeToType returns the Type for a two-letter CSV type code, or
// TypeNonexistent if code is not recognized.
func CodeToType(code string) Type {
	for _, row := range typeCodes {
		if row.code == code {
			return row.t
		}
	}
	return TypeNonexistent
}

// Object is the polymorphic catalog record (spec §3 "Object"). Exactly one
// of Star, Planet, or DeepSky is populated, selected by Type; Double and
// Variable are additional optional substructures on top of Star, selected
// when Type is TypeDoubleStar, TypeVariableStar, or
// TypeDoubleVariableStar.
type Object struct {
	Type        Type
	Names       []string
	Identifiers []identifier.Identifier

	// Direction is the apparent unit direction in the fundamental frame,
	// Distance is in AU (+Inf if unknown), Magnitude is visual magnitude
	// (+Inf if unknown). All three are populated by ComputeEphemeris.
	Direction vector.Vector
	Distance  float64
	Magnitude float64

	Star     *StarData
	Double   *DoubleStarData
	Variable *VariableData
	DeepSky  *DeepSkyData
	Planet   *PlanetData
}

// NewObject constructs an empty Object of the given type with Distance and
// Magnitude defaulted to "unknown" (+Inf), matching spec §7's convention.
func NewObject(t Type) *Object {
	return &Object{
		Type:      t,
		Distance:  math.Inf(1),
		Magnitude: math.Inf(1),
	}
}

// Position satisfies htm.Locatable: the apparent direction is what the
// HTM mesh files objects by.
func (o *Object) Position() vector.Vector { return o.Direction }

// Mag satisfies htm.Locatable's other half: the magnitude a Mesh buckets
// objects by. Named Mag rather than Magnitude since the field already
// holds that name.
func (o *Object) Mag() float64 { return o.Magnitude }

// GetName returns the i-th name string, or "" if out of range.
func (o *Object) GetName(i int) string {
	if i < 0 || i >= len(o.Names) {
		return ""
	}
	return o.Names[i]
}

// GetIdentifier returns o's identifier in the given catalog, or the zero
// Identifier if it has none there.
func (o *Object) GetIdentifier(cat identifier.Catalog) identifier.Identifier {
	for _, id := range o.Identifiers {
		if id.Catalog() == cat {
			return id
		}
	}
	return identifier.Identifier(0)
}

// AddIdentifier adds ident to o if it is not already present (by exact
// value). Returns false if ident is zero or a duplicate.
func (o *Object) AddIdentifier(ident identifier.Identifier) bool {
	if ident.IsZero() {
		return false
	}
	idents, added := identifier.Add(o.Identifiers, ident)
	o.Identifiers = idents
	return added
}

// ComputeEphemeris updates Direction, Distance, and Magnitude for dyn's
// current time, location, and configuration flags (spec §4.7). Dispatch
// on Type replaces the original's virtual call.
func (o *Object) ComputeEphemeris(dyn *Dynamics) error {
	switch o.Type {
	case TypeStar, TypeDoubleStar, TypeVariableStar, TypeDoubleVariableStar:
		return o.computeStarEphemeris(dyn)
	case TypePlanet, TypeMoon, TypeAsteroid, TypeComet:
		return o.computePlanetEphemeris(dyn)
	case TypeSatellite, TypeSpacecraft:
		return o.computeSatelliteEphemeris(dyn)
	default:
		// Deep-sky objects and constellations are fixed in the galactic
		// frame at essentially infinite distance; nothing to propagate.
		return nil
	}
}

var errNoEphemerisData = errors.New("catalog: object has no ephemeris data for its type")
