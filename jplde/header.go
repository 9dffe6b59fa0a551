package jplde

import (
	"encoding/binary"
	"io"
	"strings"
)

// iptRows is the number of rows in the file's Chebyshev pointer table: the
// twelve named in the classic header layout (Mercury..Pluto, Moon, Sun,
// nutations) plus lunar librations, carried as a thirteenth row regardless
// of whether the source file used the legacy separate lpt[3] field or the
// newer extended ipt[13] layout -- both occupy the same bytes immediately
// after numde, so one read path serves both.
const iptRows = 13

const (
	iptMercury = iota
	iptVenus
	iptEMB
	iptMars
	iptJupiter
	iptSaturn
	iptUranus
	iptNeptune
	iptPluto
	iptMoon
	iptSun
	iptNutation
	iptLibration
)

// maxNamedConstants is the number of constant names/values the header
// reserves inline (cnam[]); files with more constants than this carry the
// remainder (cnam2[]) immediately following numde/lpt.
const maxNamedConstants = 400

// Header is the parsed content of a JPL DE binary ephemeris file's two
// header records (spec §6).
type Header struct {
	Titles        [3]string
	ConstantNames []string
	StartJED      float64
	StopJED       float64
	StepDays      float64
	NCon          int32
	AU            float64
	EMRAT         float64
	IPT           [iptRows][3]int32
	NumDE         int32

	ncoeff  int64 // doubles per record (title, constant-value, and data records are all this size)
	recSize int64 // bytes per record
}

func quantityDimension(row int) int {
	if row == iptNutation {
		return 2
	}
	return 3
}

func trimFixed(b []byte) string {
	return strings.TrimRight(string(b), " \x00")
}

// parseHeader reads the two fixed header records starting at the current
// position of r (normally the start of the file) and derives the record
// size from the pointer table, since the file format itself does not
// store it directly.
func parseHeader(r io.Reader, order binary.ByteOrder) (*Header, error) {
	h := &Header{}

	titleBuf := make([]byte, 84*3)
	if _, err := io.ReadFull(r, titleBuf); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		h.Titles[i] = trimFixed(titleBuf[i*84 : (i+1)*84])
	}

	nameBuf := make([]byte, 6*maxNamedConstants)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, err
	}

	var ss [3]float64
	if err := binary.Read(r, order, &ss); err != nil {
		return nil, err
	}
	h.StartJED, h.StopJED, h.StepDays = ss[0], ss[1], ss[2]

	if err := binary.Read(r, order, &h.NCon); err != nil {
		return nil, err
	}
	if err := binary.Read(r, order, &h.AU); err != nil {
		return nil, err
	}
	if err := binary.Read(r, order, &h.EMRAT); err != nil {
		return nil, err
	}
	if err := binary.Read(r, order, h.IPT[:iptRows-1]); err != nil {
		return nil, err
	}
	if err := binary.Read(r, order, &h.NumDE); err != nil {
		return nil, err
	}
	// Legacy lpt[3] and the extended ipt[12] row are the same twelve bytes.
	if err := binary.Read(r, order, &h.IPT[iptLibration]); err != nil {
		return nil, err
	}

	ncon := int(h.NCon)
	h.ConstantNames = make([]string, 0, ncon)
	limit := ncon
	if limit > maxNamedConstants {
		limit = maxNamedConstants
	}
	for i := 0; i < limit; i++ {
		h.ConstantNames = append(h.ConstantNames, trimFixed(nameBuf[i*6:(i+1)*6]))
	}
	if ncon > maxNamedConstants {
		extra := make([]byte, 6*(ncon-maxNamedConstants))
		if _, err := io.ReadFull(r, extra); err != nil {
			return nil, err
		}
		for i := 0; i*6 < len(extra); i++ {
			h.ConstantNames = append(h.ConstantNames, trimFixed(extra[i*6:i*6+6]))
		}
	}

	// The data record format embeds the block's own start/end JED as the
	// first two doubles, ahead of every pointer table offset; NCOEFF is
	// derived, not stored, by summing each quantity's coefficient count.
	ncoeff := int64(2)
	for row := 0; row < iptRows; row++ {
		ncf := int64(h.IPT[row][1])
		na := int64(h.IPT[row][2])
		ncoeff += int64(quantityDimension(row)) * ncf * na
	}
	h.ncoeff = ncoeff
	h.recSize = ncoeff * 8

	return h, nil
}
