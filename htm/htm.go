// Package htm implements the Hierarchical Triangular Mesh, a scheme for
// recursively subdividing the celestial sphere into eight octahedral root
// triangles ("S0"-"S3", "N0"-"N3") and, below those, four children apiece
// down to whatever depth a catalog's magnitude limits require (spec §4.6).
//
// An origin region "O0" with ID 0 covers the whole sky and has the eight
// root triangles as its children; each of those subdivides into four
// children per level, named by appending a digit 0-3 to the parent's name.
// ID is a bit-packed encoding of a region's name: pairs of bits hold each
// digit, with a sentinel leading pair (10 for south, 11 for north)
// marking where the name starts. This layout, and the routines that
// decode it, are ported from the original C HTM implementation described
// in original_source SSCode/SSHTM.cpp's cc_aux.c section.
package htm

import (
	"strings"

	"github.com/arcturuslab/skycore/vector"
)

// ID identifies one triangular region of the mesh. The zero value is the
// origin region covering the entire sky.
type ID uint64

// Origin is the root region covering the whole celestial sphere.
const Origin ID = 0

const (
	idHighBit  uint64 = 1 << 63
	idHighBit2 uint64 = 1 << 62
	nameMax           = 32
)

// rootTriangles maps each octant of the sky (by sign of X, Y, Z) to its
// root triangle name and ID, and to the three anchor-vertex indices that
// bound it. anchor holds the six coordinate-axis unit vectors the
// original implementation starts every subdivision from.
var anchor = [6]vector.Vector{
	vector.New(0, 0, 1),
	vector.New(1, 0, 0),
	vector.New(0, 1, 0),
	vector.New(-1, 0, 0),
	vector.New(0, -1, 0),
	vector.New(0, 0, -1),
}

type rootTriangle struct {
	name           string
	id             ID
	v1, v2, v3 int
}

// octantRoots is indexed by (x>0)<<2 | (y>0)<<1 | (z>0).
var octantRoots = [8]rootTriangle{
	{"S2", 10, 3, 5, 4},
	{"N1", 13, 4, 0, 3},
	{"S1", 9, 2, 5, 3},
	{"N2", 14, 3, 0, 2},
	{"S3", 11, 4, 5, 1},
	{"N0", 12, 1, 0, 4},
	{"S0", 8, 1, 5, 2},
	{"N3", 15, 2, 0, 1},
}

// sIndexes and nIndexes give the three anchor-vertex indices of each
// numbered root triangle within its hemisphere, used by Triangle to
// rebuild a name's vertices without re-running VectorToID's search.
var sIndexes = [4][3]int{{1, 5, 2}, {2, 5, 3}, {3, 5, 4}, {4, 5, 1}}
var nIndexes = [4][3]int{{1, 0, 4}, {4, 0, 3}, {3, 0, 2}, {2, 0, 1}}

// Level returns the subdivision depth of id: 0 for a root triangle, 1 for
// its children, and so on. Returns -1 for an invalid ID.
func (id ID) Level() int {
	if id == Origin {
		return -1
	}
	v := uint64(id)
	for i := uint(0); i < 64; i += 2 {
		if (v<<i)&idHighBit != 0 {
			size := (64 - i) >> 1
			return int(size) - 2
		}
		if (v<<i)&idHighBit2 != 0 {
			return -1
		}
	}
	return -1
}

// Name returns id's region name ("O0" for the origin, "S0".."N3" for root
// triangles, longer strings of trailing digits for deeper regions), or an
// empty string if id is not a valid region ID.
func (id ID) Name() string {
	if id == Origin {
		return "O0"
	}
	v := uint64(id)
	var i uint
	for i = 0; i < 64; i += 2 {
		if (v<<i)&idHighBit != 0 {
			break
		}
		if (v<<i)&idHighBit2 != 0 {
			return ""
		}
	}
	if i >= 64 {
		return ""
	}
	size := (64 - i) >> 1

	b := make([]byte, size)
	for j := uint64(0); j < size-1; j++ {
		b[size-1-j] = byte('0' + (v>>(j*2))&3)
	}
	if (v>>(size*2-2))&1 != 0 {
		b[0] = 'N'
	} else {
		b[0] = 'S'
	}
	return string(b)
}

// ParseName returns the ID for a region name ("O0", or a hemisphere letter
// followed by a run of digits), or Origin and false if name is invalid.
func ParseName(name string) (ID, bool) {
	if name == "O0" {
		return Origin, true
	}
	if len(name) < 2 || len(name) > nameMax {
		return Origin, false
	}
	if name[0] != 'N' && name[0] != 'S' {
		return Origin, false
	}

	siz := uint64(len(name))
	var out uint64
	for i := siz - 1; i > 0; i-- {
		c := name[i]
		if c < '0' || c > '3' {
			return Origin, false
		}
		out += uint64(c-'0') << (2 * (siz - i - 1))
	}

	lead := uint64(2)
	if name[0] == 'N' {
		lead = 3
	}
	out += lead << (2*siz - 2)
	return ID(out), true
}

// String implements fmt.Stringer, returning Name() (or "<invalid>" if id
// decodes to no valid name).
func (id ID) String() string {
	if n := id.Name(); n != "" {
		return n
	}
	return "<invalid>"
}

// Children returns id's four (or, for the origin, eight) immediate child
// region IDs, independent of any mesh depth limit.
func (id ID) Children() []ID {
	if id == Origin {
		return []ID{8, 9, 10, 11, 12, 13, 14, 15}
	}
	base := uint64(id) * 4
	return []ID{ID(base), ID(base + 1), ID(base + 2), ID(base + 3)}
}

func octantIndex(v vector.Vector) int {
	ix := 0
	if v.X > 0 {
		ix |= 4
	}
	if v.Y > 0 {
		ix |= 2
	}
	if v.Z > 0 {
		ix |= 1
	}
	return ix
}

func midpoint(a, b vector.Vector) vector.Vector {
	sum := a.Add(b)
	unit, _ := sum.Normalize()
	return unit
}

func insideTriangle(p, v0, v1, v2 vector.Vector) bool {
	const eps = 1.0e-15
	if v0.Cross(v1).Dot(p) < -eps {
		return false
	}
	if v1.Cross(v2).Dot(p) < -eps {
		return false
	}
	if v2.Cross(v0).Dot(p) < -eps {
		return false
	}
	return true
}

// VectorToID returns the ID of the region containing the unit vector v at
// the given subdivision depth (0 returns the root triangle ID). v need not
// be normalized; only its direction is used.
func VectorToID(v vector.Vector, depth int) ID {
	p, _ := v.Normalize()
	ix := octantIndex(p)
	root := octantRoots[ix]

	t1 := anchor[root.v1]
	t2 := anchor[root.v2]
	t3 := anchor[root.v3]

	var name strings.Builder
	name.WriteString(root.name)

	for depth > 0 {
		w2 := midpoint(t1, t2)
		w0 := midpoint(t2, t3)
		w1 := midpoint(t3, t1)

		switch {
		case insideTriangle(p, t1, w2, w1):
			name.WriteByte('0')
			t2, t3 = w2, w1
		case insideTriangle(p, t2, w0, w2):
			name.WriteByte('1')
			t1, t2, t3 = t2, w0, w2
		case insideTriangle(p, t3, w1, w0):
			name.WriteByte('2')
			t1, t2, t3 = t3, w1, w0
		case insideTriangle(p, w0, w1, w2):
			name.WriteByte('3')
			t1, t2, t3 = w0, w1, w2
		default:
			return Origin
		}
		depth--
	}

	id, ok := ParseName(name.String())
	if !ok {
		return Origin
	}
	return id
}

// Triangle returns unit vectors to the three vertices of the region named
// by name, or false if the name is not a valid region name.
func Triangle(name string) (v0, v1, v2 vector.Vector, ok bool) {
	if len(name) < 2 {
		return vector.Vector{}, vector.Vector{}, vector.Vector{}, false
	}
	k := int(name[1] - '0')
	if k < 0 || k > 3 {
		return vector.Vector{}, vector.Vector{}, vector.Vector{}, false
	}

	var idx [3]int
	if name[0] == 'S' {
		idx = sIndexes[k]
	} else if name[0] == 'N' {
		idx = nIndexes[k]
	} else {
		return vector.Vector{}, vector.Vector{}, vector.Vector{}, false
	}

	t1, t2, t3 := anchor[idx[0]], anchor[idx[1]], anchor[idx[2]]

	for _, d := range name[2:] {
		w2 := midpoint(t1, t2)
		w0 := midpoint(t2, t3)
		w1 := midpoint(t3, t1)
		switch d {
		case '0':
			t2, t3 = w2, w1
		case '1':
			t1, t2, t3 = t2, w0, w2
		case '2':
			t1, t2, t3 = t3, w1, w0
		case '3':
			t1, t2, t3 = w0, w1, w2
		default:
			return vector.Vector{}, vector.Vector{}, vector.Vector{}, false
		}
	}
	return t1, t2, t3, true
}

// Inside reports whether unit vector p lies within the spherical triangle
// with unit-vector vertices v0, v1, v2.
func Inside(p, v0, v1, v2 vector.Vector) bool {
	return insideTriangle(p, v0, v1, v2)
}
