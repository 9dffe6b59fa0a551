package catalog

import (
	"github.com/pkg/errors"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/elp"
	"github.com/arcturuslab/skycore/jplde"
	"github.com/arcturuslab/skycore/orbit"
	"github.com/arcturuslab/skycore/satellite"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// PlanetKind selects which of the four propagators (spec §4.7 "Planet")
// an Object's PlanetData uses.
type PlanetKind int

const (
	// PlanetKindDE propagates via an open JPL DE ephemeris, falling back
	// to Elements when the ephemeris is unavailable or out of range.
	PlanetKindDE PlanetKind = iota
	// PlanetKindMoonELP propagates the Moon via the ELP/MPP02 series. ELP
	// never fails, so the apparent position always comes from it;
	// Elements, if supplied, only feeds the stored PositionAU and
	// VelocityAUPerDay.
	PlanetKindMoonELP
	// PlanetKindKepler propagates minor bodies (asteroids, comets) and
	// any major body without DE coverage from osculating elements.
	PlanetKindKepler
	// PlanetKindSatellite propagates an Earth satellite from a two-line
	// element set via SGP4/SDP4.
	PlanetKindSatellite
)

// PlanetData holds a solar-system body's propagation source and its most
// recently computed state (spec §3 "Planet"): identifier selects the
// major-body (DE/ELP), minor-body (Kepler), or Earth-satellite (SGP4/SDP4)
// path.
type PlanetData struct {
	Kind PlanetKind

	// DEBody is the DE reader's body index, used when Kind is
	// PlanetKindDE.
	DEBody jplde.Body

	// Elements is the osculating orbit used when Kind is
	// PlanetKindKepler, and as the DE fallback for PlanetKindDE. For any
	// Kind, a non-nil Elements also supplies the stored PositionAU and
	// VelocityAUPerDay.
	Elements *orbit.Elements

	// Sat is the satellite's TLE-derived propagator, used when Kind is
	// PlanetKindSatellite.
	Sat *satellite.Sat

	// PositionAU and VelocityAUPerDay are the heliocentric state last
	// computed by ComputeEphemeris (populated for the DE/ELP/Kepler
	// paths; left zero for satellites, whose state is geocentric).
	PositionAU       vector.Vector
	VelocityAUPerDay vector.Vector
}

// computePlanetEphemeris implements spec §4.7's Planet dispatch: DE
// reader if open and the date is in range, else Kepler elements; the Moon
// specifically prefers ELP/MPP02. Light-time iteration and aberration are
// applied the same way as any other solar-system body, via
// Coordinates.ApparentDirection.
func (o *Object) computePlanetEphemeris(dyn *Dynamics) error {
	p := o.Planet
	if p == nil {
		return errNoEphemerisData
	}

	if p.Kind == PlanetKindSatellite {
		return o.computeSatelliteEphemeris(dyn)
	}

	posFunc, err := p.positionFunc(dyn)
	if err != nil {
		return err
	}

	direction, distance := dyn.Coords.ApparentDirection(posFunc)
	o.Direction = direction
	o.Distance = distance

	if p.Elements != nil {
		p.PositionAU, p.VelocityAUPerDay = p.Elements.PositionVelocityAU(dyn.Coords.JDTDB())
	} else {
		p.PositionAU = posFunc(dyn.Coords.JDTDB())
	}

	return nil
}

// positionFunc picks the heliocentric-position source for light-time
// iteration, per Kind and DE availability.
func (p *PlanetData) positionFunc(dyn *Dynamics) (coordinates.PositionFunc, error) {
	switch p.Kind {
	case PlanetKindMoonELP:
		// ELP is geocentric; SetObserverState puts Earth's heliocentric
		// position into ObsPos whenever a DE file is open, so add it here.
		geo := elp.PositionFunc(dyn.Coords.Location())
		if dyn.DE == nil {
			return geo, nil
		}
		earth := dyn.DE.PositionFunc(jplde.Earth)
		return func(jdTDB float64) vector.Vector { return earth(jdTDB).Add(geo(jdTDB)) }, nil
	case PlanetKindDE:
		if dyn.DE != nil {
			jd := dyn.Coords.JDTDB()
			if jd >= dyn.DE.StartJED() && jd <= dyn.DE.StopJED() {
				return dyn.DE.PositionFunc(p.DEBody), nil
			}
			dyn.Log.Warn().Int("body", int(p.DEBody)).Float64("jd_tdb", jd).
				Msg("catalog: requested date outside DE ephemeris coverage, falling back to elements")
		}
		if p.Elements != nil {
			if dyn.DE == nil {
				dyn.Log.Warn().Int("body", int(p.DEBody)).
					Msg("catalog: no DE ephemeris open, falling back to elements")
			}
			el := p.Elements
			return func(jdTDB float64) vector.Vector { return el.PositionAU(jdTDB) }, nil
		}
		return nil, errors.New("catalog: planet has no DE coverage and no fallback elements")
	case PlanetKindKepler:
		if p.Elements == nil {
			return nil, errors.New("catalog: Kepler-path planet missing orbital elements")
		}
		el := p.Elements
		return func(jdTDB float64) vector.Vector { return el.PositionAU(jdTDB) }, nil
	default:
		return nil, errors.Errorf("catalog: unknown planet kind %d", p.Kind)
	}
}

// computeSatelliteEphemeris implements the Earth-satellite path: SGP4/SDP4
// propagation to a topocentric direction and distance, bypassing
// ApparentDirection's heliocentric light-time/aberration handling since
// satellite distances are geocentric and light-time is negligible.
func (o *Object) computeSatelliteEphemeris(dyn *Dynamics) error {
	p := o.Planet
	if p == nil || p.Sat == nil {
		return errors.New("catalog: satellite object missing TLE data")
	}

	satICRSKm := satellite.PositionICRS(*p.Sat, dyn.Coords.JDTT())
	topoKm := satICRSKm.Sub(dyn.Coords.ObserverPositionICRS())

	unit, distKm := topoKm.Normalize()
	o.Direction = unit
	o.Distance = distKm / units.AUToKm
	return nil
}
