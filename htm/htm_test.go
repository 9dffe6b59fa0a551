package htm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcturuslab/skycore/vector"
)

func TestParseNameRoundTrip(t *testing.T) {
	names := []string{"S0", "N3", "S013", "N202", "S0000000"}
	for _, name := range names {
		id, ok := ParseName(name)
		assert.True(t, ok, "ParseName(%q)", name)
		assert.Equal(t, name, id.Name(), "round trip for %q", name)
	}
}

func TestParseNameInvalid(t *testing.T) {
	for _, name := range []string{"", "X", "S4", "N", "Q01"} {
		_, ok := ParseName(name)
		assert.False(t, ok, "expected ParseName(%q) to fail", name)
	}
}

func TestOriginName(t *testing.T) {
	assert.Equal(t, "O0", Origin.Name())
	assert.Equal(t, -1, Origin.Level())
}

func TestLevelMatchesNameLength(t *testing.T) {
	cases := map[string]int{
		"S0":     0,
		"N3":     0,
		"S01":    1,
		"N213":   2,
		"S00000": 4,
	}
	for name, level := range cases {
		id, ok := ParseName(name)
		assert.True(t, ok)
		assert.Equal(t, level, id.Level(), "level of %q", name)
	}
}

func TestChildrenOfOrigin(t *testing.T) {
	children := Origin.Children()
	assert.Len(t, children, 8)
	assert.Equal(t, ID(8), children[0])
	assert.Equal(t, ID(15), children[7])
}

func TestChildrenOfRootTriangle(t *testing.T) {
	id, _ := ParseName("S0")
	children := id.Children()
	assert.Len(t, children, 4)
	assert.Equal(t, ID(uint64(id)*4), children[0])
	assert.Equal(t, ID(uint64(id)*4+3), children[3])
}

func TestTriangleVerticesAreUnitVectors(t *testing.T) {
	for _, name := range []string{"S0", "N1", "S23", "N302"} {
		v0, v1, v2, ok := Triangle(name)
		assert.True(t, ok, name)
		assert.InDelta(t, 1.0, v0.Magnitude(), 1e-12, name)
		assert.InDelta(t, 1.0, v1.Magnitude(), 1e-12, name)
		assert.InDelta(t, 1.0, v2.Magnitude(), 1e-12, name)
	}
}

func TestVectorToIDMatchesTriangleVertex(t *testing.T) {
	// The centroid of a root triangle's vertices must classify into that
	// same root triangle.
	for _, name := range []string{"S0", "S1", "S2", "S3", "N0", "N1", "N2", "N3"} {
		v0, v1, v2, ok := Triangle(name)
		assert.True(t, ok, name)

		centroid := v0.Add(v1).Add(v2)
		id := VectorToID(centroid, 0)
		assert.Equal(t, name, id.Name(), "centroid of %s", name)
	}
}

func TestVectorToIDDeeperLevelIsConsistent(t *testing.T) {
	v := vector.New(0.3, 0.5, 0.8)
	shallow := VectorToID(v, 0)
	deep := VectorToID(v, 3)

	// deep's name must begin with shallow's name: subdivision only ever
	// appends digits.
	assert.True(t, len(deep.Name()) > len(shallow.Name()))
	assert.Equal(t, shallow.Name(), deep.Name()[:len(shallow.Name())])
}

func TestInsideRejectsOppositePoint(t *testing.T) {
	v0, v1, v2, ok := Triangle("S0")
	assert.True(t, ok)
	centroid := v0.Add(v1).Add(v2)
	assert.True(t, Inside(centroid, v0, v1, v2))

	opposite := centroid.Scale(-1)
	assert.False(t, Inside(opposite, v0, v1, v2))
}
