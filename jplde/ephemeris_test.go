package jplde

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"testing"
)

// buildSyntheticDE writes a minimal, internally self-consistent DE-format
// file: one data record, four active pointer-table rows (Mercury, the
// Earth-Moon barycenter, the geocentric Moon, and the Sun), each using
// 32-coefficient position-only Chebyshev blocks whose only nonzero
// coefficient is the constant (T0) term. That makes every interpolated
// position independent of where in the record it's sampled, which keeps
// this test focused on header parsing, record-offset arithmetic, and the
// Earth/Moon barycenter composition in Compute rather than on Chebyshev
// evaluation itself, which this file does not exercise.
func buildSyntheticDE(t *testing.T) string {
	t.Helper()

	const ncf = 32
	const ncm = 3
	const blockWords = ncf * ncm // 96

	// Row layout: reserved(2), Mercury, EMB, Moon, Sun.
	offMercury := int32(3) // 1-based
	offEMB := offMercury + blockWords
	offMoon := offEMB + blockWords
	offSun := offMoon + blockWords
	ncoeff := int64(2 + 4*blockWords) // 386

	var ipt [iptRows][3]int32
	ipt[iptMercury] = [3]int32{offMercury, ncf, 1}
	ipt[iptEMB] = [3]int32{offEMB, ncf, 1}
	ipt[iptMoon] = [3]int32{offMoon, ncf, 1}
	ipt[iptSun] = [3]int32{offSun, ncf, 1}

	const au = 1.0
	const emrat = 81.300569
	const startJED = 2451544.5
	const stepDays = 32.0
	const stopJED = startJED + stepDays

	var buf bytes.Buffer
	order := binary.LittleEndian

	// Record 1: titles, names, ss, ncon, au, emrat, ipt, numde, lpt.
	buf.Write(make([]byte, 84*3))
	buf.Write(make([]byte, 6*maxNamedConstants))
	binary.Write(&buf, order, [3]float64{startJED, stopJED, stepDays})
	binary.Write(&buf, order, int32(0)) // ncon
	binary.Write(&buf, order, au)
	binary.Write(&buf, order, emrat)
	binary.Write(&buf, order, ipt[:iptRows-1])
	binary.Write(&buf, order, int32(405)) // numde
	binary.Write(&buf, order, ipt[iptLibration])

	recSize := ncoeff * 8
	pad1 := recSize - int64(buf.Len())
	if pad1 < 0 {
		t.Fatalf("header (%d bytes) larger than record size (%d bytes)", buf.Len(), recSize)
	}
	buf.Write(make([]byte, pad1))

	// Record 2: constant values (none here), padded to record size.
	buf.Write(make([]byte, recSize))

	// Data record: mostly zero, with the constant (first) coefficient of
	// the X component of each active row set to a distinct test value.
	data := make([]float64, ncoeff)
	setX := func(offset1Based int32, value float64) {
		data[offset1Based-1] = value
	}
	setX(offMercury, 10.0)
	setX(offEMB, 5.0)
	setX(offMoon, 0.1)
	setX(offSun, 1.0)
	binary.Write(&buf, order, data)

	f, err := os.CreateTemp(t.TempDir(), "synthetic-de-*.bin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

func TestOpenParsesHeader(t *testing.T) {
	path := buildSyntheticDE(t)
	eph, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	if eph.StartJED() != 2451544.5 {
		t.Errorf("StartJED = %v, want 2451544.5", eph.StartJED())
	}
	if eph.StopJED() != 2451544.5+32.0 {
		t.Errorf("StopJED = %v, want %v", eph.StopJED(), 2451544.5+32.0)
	}
	if eph.hdr.NumDE != 405 {
		t.Errorf("NumDE = %d, want 405", eph.hdr.NumDE)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/path/to/eph.bin")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestComputeMercuryHeliocentric(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	pos, _, err := eph.Compute(Mercury, 2451544.5+16.0)
	if err != nil {
		t.Fatal(err)
	}
	want := 10.0 - 1.0 // Mercury barycentric X minus Sun barycentric X
	if math.Abs(pos.X-want) > 1e-9 {
		t.Errorf("Mercury.X = %v, want %v", pos.X, want)
	}
	if pos.Y != 0 || pos.Z != 0 {
		t.Errorf("Mercury Y/Z = %v/%v, want 0/0", pos.Y, pos.Z)
	}
}

func TestComputeEarthAndMoonBarycenterSplit(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	const emFactor = 1.0 / (1.0 + 81.300569)
	earthBaryX := 5.0 - 0.1*emFactor
	wantEarth := earthBaryX - 1.0
	wantMoon := earthBaryX + 0.1 - 1.0

	earth, _, err := eph.Compute(Earth, 2451560.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(earth.X-wantEarth) > 1e-9 {
		t.Errorf("Earth.X = %v, want %v", earth.X, wantEarth)
	}

	moon, _, err := eph.Compute(Moon, 2451560.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(moon.X-wantMoon) > 1e-9 {
		t.Errorf("Moon.X = %v, want %v", moon.X, wantMoon)
	}
}

func TestComputeSunIsZero(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	sun, _, err := eph.Compute(Sun, 2451550.0)
	if err != nil {
		t.Fatal(err)
	}
	if sun.X != 0 || sun.Y != 0 || sun.Z != 0 {
		t.Errorf("Sun heliocentric position = %v, want zero vector", sun)
	}
}

func TestComputeOutsideRange(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	if _, _, err := eph.Compute(Mercury, eph.StartJED()-1.0); err == nil {
		t.Fatal("expected error for JED before range")
	}
	if _, _, err := eph.Compute(Mercury, eph.StopJED()+1.0); err == nil {
		t.Fatal("expected error for JED after range")
	}
}

func TestComputeAfterClose(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	eph.Close()
	eph.Close() // idempotent

	if _, _, err := eph.Compute(Mercury, 2451550.0); err != ErrNotOpen {
		t.Errorf("Compute after Close: err = %v, want ErrNotOpen", err)
	}
}

func TestNutationsAbsentReturnsQuantityError(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	if _, _, _, _, err := eph.Nutations(2451550.0); err != ErrQuantityNotInEphemeris {
		t.Errorf("Nutations error = %v, want ErrQuantityNotInEphemeris", err)
	}
}

func TestPositionFuncMatchesCompute(t *testing.T) {
	eph, err := Open(buildSyntheticDE(t))
	if err != nil {
		t.Fatal(err)
	}
	defer eph.Close()

	pf := eph.PositionFunc(Mercury)
	want, _, _ := eph.Compute(Mercury, 2451550.0)
	got := pf(2451550.0)
	if got != want {
		t.Errorf("PositionFunc(Mercury) = %v, want %v", got, want)
	}
}
