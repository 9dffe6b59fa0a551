// Package jplde reads JPL binary DE ephemeris files (series 200, 403-438)
// and interpolates their Chebyshev coefficient blocks into heliocentric
// body positions and velocities (spec §4.4). The binary layout is the
// classic NASA/JPL "ASCII/binary" DE format: a fixed header record naming
// the file's constants and its Chebyshev coefficient pointer table,
// followed by a record of constant values, followed by one fixed-size
// data record per time step.
//
// The reader caches one data record at a time and evaluates its Chebyshev
// blocks with the Clenshaw recurrence, following the DE file's own record
// layout (no per-segment start/end metadata;
// every record spans the file's fixed step and is split into an
// IPT-given number of equal sub-intervals).
package jplde

import "errors"

// Body identifies a solar system body using the index scheme of Compute's
// public contract: Sun, then Mercury through Pluto, then the Moon.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case Moon:
		return "Moon"
	default:
		return "unknown"
	}
}

// bodyRow maps a public Body to its row in the file's interpolation
// pointer table. Earth and the Moon are handled specially in Compute:
// the file stores the Earth-Moon barycenter and the geocentric Moon, not
// Earth or the barycentric Moon directly.
var bodyRow = map[Body]int{
	Mercury: iptMercury,
	Venus:   iptVenus,
	Earth:   iptEMB,
	Mars:    iptMars,
	Jupiter: iptJupiter,
	Saturn:  iptSaturn,
	Uranus:  iptUranus,
	Neptune: iptNeptune,
	Pluto:   iptPluto,
}

// ErrQuantityNotInEphemeris is returned by Nutations/Librations when the
// opened file's pointer table has no entry for that quantity.
var ErrQuantityNotInEphemeris = errors.New("jplde: quantity not present in this ephemeris file")

// ErrNotOpen is returned by Compute and friends after Close.
var ErrNotOpen = errors.New("jplde: ephemeris not open")
