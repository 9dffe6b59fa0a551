package jplde

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/arcturuslab/skycore/vector"
)

// Ephemeris reads a JPL DE binary ephemeris file and interpolates it into
// body positions and velocities. It owns a single file handle and caches
// at most one data record (an LRU-of-one, per spec §5's shared-resource
// policy); it is not reentrant and must not be shared across goroutines.
type Ephemeris struct {
	f     *os.File
	order binary.ByteOrder
	hdr   *Header

	constants []float64

	cachedRecord int64
	cache        []float64
	haveCache    bool
}

// Open parses the header of the DE file at path, assuming little-endian
// byte order (the convention used by essentially every distributed DE
// file). Use OpenOrder for the rare big-endian file.
func Open(path string) (*Ephemeris, error) {
	return OpenOrder(path, binary.LittleEndian)
}

// OpenOrder is Open with an explicit byte order.
func OpenOrder(path string, order binary.ByteOrder) (*Ephemeris, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	hdr, err := parseHeader(f, order)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("jplde: parse header: %w", err)
	}

	e := &Ephemeris{f: f, order: order, hdr: hdr, cache: make([]float64, hdr.ncoeff)}
	if err := e.readConstants(); err != nil {
		f.Close()
		return nil, fmt.Errorf("jplde: read constants: %w", err)
	}
	return e, nil
}

func (e *Ephemeris) readConstants() error {
	if _, err := e.f.Seek(e.hdr.recSize, 0); err != nil {
		return err
	}
	e.constants = make([]float64, e.hdr.NCon)
	if e.hdr.NCon == 0 {
		return nil
	}
	return binary.Read(e.f, e.order, e.constants)
}

// Close releases the underlying file handle. Idempotent.
func (e *Ephemeris) Close() error {
	if e.f == nil {
		return nil
	}
	err := e.f.Close()
	e.f = nil
	return err
}

// Header returns the parsed file header.
func (e *Ephemeris) Header() *Header { return e.hdr }

// StartJED and StopJED bound the interval the file covers.
func (e *Ephemeris) StartJED() float64 { return e.hdr.StartJED }
func (e *Ephemeris) StopJED() float64  { return e.hdr.StopJED }

// Constant returns a named physical constant from the file's record 2,
// and whether it was found.
func (e *Ephemeris) Constant(name string) (float64, bool) {
	for i, n := range e.hdr.ConstantNames {
		if n == name && i < len(e.constants) {
			return e.constants[i], true
		}
	}
	return 0, false
}

func (e *Ephemeris) recordAndFraction(jed float64) (rec int64, frac float64) {
	blockLoc := (jed - e.hdr.StartJED) / e.hdr.StepDays
	rec = int64(blockLoc)
	frac = blockLoc - float64(rec)
	if frac == 0 && rec != 0 {
		frac = 1.0
		rec--
	}
	return
}

func (e *Ephemeris) ensureRecord(rec int64) error {
	if e.haveCache && rec == e.cachedRecord {
		return nil
	}
	offset := (2 + rec) * e.hdr.recSize
	if _, err := e.f.Seek(offset, 0); err != nil {
		return err
	}
	if err := binary.Read(e.f, e.order, e.cache); err != nil {
		return err
	}
	e.cachedRecord = rec
	e.haveCache = true
	return nil
}

// interpolateRow evaluates the position (and, if wantVel, velocity) stored
// in pointer-table row at the given record's fractional time.
func (e *Ephemeris) interpolateRow(row int, frac float64, wantVel bool) (pos, vel [3]float64) {
	ncf := int(e.hdr.IPT[row][1])
	na := int(e.hdr.IPT[row][2])
	offset := int64(e.hdr.IPT[row][0]) - 1 // file convention is 1-based
	ncm := quantityDimension(row)

	if ncf == 0 || na == 0 {
		return
	}

	sub := frac * float64(na)
	idx := int(sub)
	if idx >= na {
		idx = na - 1
	}
	tc := 2.0*(sub-float64(idx)) - 1.0

	recStart := offset + int64(idx*ncf*ncm)
	for comp := 0; comp < ncm && comp < 3; comp++ {
		cStart := recStart + int64(comp*ncf)
		coeffs := e.cache[cStart : cStart+int64(ncf)]
		pos[comp] = chebyshev(coeffs, tc)
		if wantVel {
			scale := 2.0 * float64(na) / e.hdr.StepDays
			vel[comp] = chebyshevDerivative(coeffs, tc) * scale
		}
	}
	return
}

// Compute returns the heliocentric position (AU) and velocity (AU/day) of
// body at the given TDB Julian date, in the file's fundamental (J2000
// equatorial) frame (spec §4.4's public contract). Fails if jed is outside
// the file's covered range or if the file is not open.
func (e *Ephemeris) Compute(body Body, jed float64) (pos, vel vector.Vector, err error) {
	if e.f == nil {
		return vector.Vector{}, vector.Vector{}, ErrNotOpen
	}
	if jed < e.hdr.StartJED || jed > e.hdr.StopJED {
		return vector.Vector{}, vector.Vector{}, fmt.Errorf("jplde: JED %.6f outside ephemeris range [%.6f, %.6f]", jed, e.hdr.StartJED, e.hdr.StopJED)
	}

	rec, frac := e.recordAndFraction(jed)
	if err := e.ensureRecord(rec); err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}

	sunPos, sunVel := e.interpolateRow(iptSun, frac, true)

	var bodyPos, bodyVel [3]float64
	emFactor := 1.0 / (1.0 + e.hdr.EMRAT)

	switch body {
	case Sun:
		bodyPos, bodyVel = sunPos, sunVel
	case Moon:
		embPos, embVel := e.interpolateRow(iptEMB, frac, true)
		moonGeoPos, moonGeoVel := e.interpolateRow(iptMoon, frac, true)
		earthPos := sub3(embPos, scale3(moonGeoPos, emFactor))
		earthVel := sub3(embVel, scale3(moonGeoVel, emFactor))
		bodyPos = add3(earthPos, moonGeoPos)
		bodyVel = add3(earthVel, moonGeoVel)
	case Earth:
		embPos, embVel := e.interpolateRow(iptEMB, frac, true)
		moonGeoPos, moonGeoVel := e.interpolateRow(iptMoon, frac, true)
		bodyPos = sub3(embPos, scale3(moonGeoPos, emFactor))
		bodyVel = sub3(embVel, scale3(moonGeoVel, emFactor))
	default:
		row, ok := bodyRow[body]
		if !ok {
			return vector.Vector{}, vector.Vector{}, fmt.Errorf("jplde: unsupported body %s", body)
		}
		bodyPos, bodyVel = e.interpolateRow(row, frac, true)
	}

	helioPos := scale3(sub3(bodyPos, sunPos), 1.0/e.hdr.AU)
	helioVel := scale3(sub3(bodyVel, sunVel), 1.0/e.hdr.AU)

	return vector.New(helioPos[0], helioPos[1], helioPos[2]),
		vector.New(helioVel[0], helioVel[1], helioVel[2]), nil
}

// Nutations returns nutation in longitude and obliquity, in radians, and
// their rates in radians/day, at jed.
func (e *Ephemeris) Nutations(jed float64) (dPsi, dEps, dPsiRate, dEpsRate float64, err error) {
	if e.f == nil {
		return 0, 0, 0, 0, ErrNotOpen
	}
	if e.hdr.IPT[iptNutation][1] == 0 {
		return 0, 0, 0, 0, ErrQuantityNotInEphemeris
	}
	rec, frac := e.recordAndFraction(jed)
	if err := e.ensureRecord(rec); err != nil {
		return 0, 0, 0, 0, err
	}
	pos, vel := e.interpolateRow(iptNutation, frac, true)
	return pos[0], pos[1], vel[0], vel[1], nil
}

// Librations returns the Moon's physical libration angles (radians) and
// their rates (radians/day) at jed, if the file provides them.
func (e *Ephemeris) Librations(jed float64) (phi, theta, psi, phiRate, thetaRate, psiRate float64, err error) {
	if e.f == nil {
		return 0, 0, 0, 0, 0, 0, ErrNotOpen
	}
	if e.hdr.IPT[iptLibration][1] == 0 {
		return 0, 0, 0, 0, 0, 0, ErrQuantityNotInEphemeris
	}
	rec, frac := e.recordAndFraction(jed)
	if err := e.ensureRecord(rec); err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	pos, vel := e.interpolateRow(iptLibration, frac, true)
	return pos[0], pos[1], pos[2], vel[0], vel[1], vel[2], nil
}

// PositionFunc returns a closure over Compute for a fixed body, suitable
// as a coordinates.PositionFunc during light-time iteration. Errors
// (out-of-range JED, closed file) collapse to the zero vector; callers
// that need to distinguish failure should call Compute directly.
func (e *Ephemeris) PositionFunc(body Body) func(jdTDB float64) vector.Vector {
	return func(jdTDB float64) vector.Vector {
		pos, _, err := e.Compute(body, jdTDB)
		if err != nil {
			return vector.Vector{}
		}
		return pos
	}
}
