package catalog

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/jplde"
	"github.com/arcturuslab/skycore/units"
	"github.com/arcturuslab/skycore/vector"
)

// Dynamics bundles an observer's Coordinates transform with the optional
// ephemeris backend used to propagate solar-system bodies, mirroring the
// original SSDynamics parameter threaded through computeEphemeris calls.
// DE may be nil: an Object backed by Kepler elements or an Earth satellite
// never touches it, and Object.computePlanetEphemeris falls back to its
// stored orbital elements when DE is nil or does not cover the requested
// date.
type Dynamics struct {
	Coords *coordinates.Coordinates
	DE     *jplde.Ephemeris

	// Log receives non-fatal diagnostics such as DE-to-Kepler fallbacks
	// and event-search iteration caps. Defaults to a no-op logger.
	Log zerolog.Logger
}

// NewDynamics builds a Dynamics for the given coordinates, optionally
// backed by an open DE ephemeris.
func NewDynamics(coords *coordinates.Coordinates, de *jplde.Ephemeris) *Dynamics {
	return &Dynamics{Coords: coords, DE: de, Log: zerolog.Nop()}
}

// SetLogger attaches l as dyn's diagnostic logger.
func (d *Dynamics) SetLogger(l zerolog.Logger) {
	d.Log = l
}

// SetObserverState populates dyn.Coords.ObsPos and ObsVel (spec §4.3:
// "Observer heliocentric position/velocity are computed by the Earth
// ephemeris and offset by the geocentric observer vector"). ObsVel is the
// Earth's velocity alone; the observer's rotational velocity is not
// added. Without an open DE file the Earth terms are omitted: ObsPos is
// the geocentric observer offset only, which still gives correct
// parallax relative to the Earth's center, and ObsVel is zero, so no
// aberration is applied.
func (d *Dynamics) SetObserverState() error {
	var earthPosAU, earthVelAU = vector.Zero, vector.Zero
	if d.DE != nil {
		var err error
		earthPosAU, earthVelAU, err = d.DE.Compute(jplde.Earth, d.Coords.JDTDB())
		if err != nil {
			return errors.Wrap(err, "catalog: observer state: earth position")
		}
	}

	geocentricKm := d.Coords.ObserverPositionICRS()
	d.Coords.ObsPos = earthPosAU.Add(geocentricKm.Scale(1.0 / units.AUToKm))
	d.Coords.ObsVel = earthVelAU
	return nil
}
