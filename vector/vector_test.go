package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUnitMagnitude(t *testing.T) {
	v := Vector{X: 3, Y: 4, Z: 0}
	unit, mag := v.Normalize()
	assert.InDelta(t, 5.0, mag, 1e-12)
	assert.InDelta(t, 1.0, unit.Magnitude(), 1e-12)
}

func TestNormalizeZeroVector(t *testing.T) {
	unit, mag := Zero.Normalize()
	assert.Equal(t, 0.0, mag)
	assert.Equal(t, Zero, unit)
}

func TestSphericalRoundTrip(t *testing.T) {
	cases := []Spherical{
		{Lon: 1.2, Lat: 0.4, Rad: 3.0},
		{Lon: 0, Lat: -math.Pi / 2, Rad: 1.0},
		{Lon: 5.9, Lat: math.Pi / 4, Rad: 0.001},
	}
	for _, s := range cases {
		v := s.Vector()
		got := FromVector(v)
		assert.InDelta(t, s.Rad, got.Rad, 1e-12)
		if math.Abs(s.Lat) < math.Pi/2-1e-9 {
			assert.InDelta(t, s.Lon, got.Lon, 1e-9)
		}
		assert.InDelta(t, s.Lat, got.Lat, 1e-9)
	}
}

func TestSeparationAngleClamped(t *testing.T) {
	v := Vector{X: 1, Y: 0, Z: 0}
	require.InDelta(t, 0.0, v.SeparationAngle(v), 1e-12)
	w := Vector{X: -1, Y: 0, Z: 0}
	require.InDelta(t, math.Pi, v.SeparationAngle(w), 1e-12)
}

func TestRotationMatrixInvariants(t *testing.T) {
	m := RotationX(0.7).Mul(RotationY(1.1)).Mul(RotationZ(-0.3))
	assert.InDelta(t, 1.0, m.Determinant(), 1e-12)

	identity := m.Mul(m.Transpose())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, identity[i][j], 1e-12)
		}
	}
}

func TestMatrixInverseMatchesTransposeForRotations(t *testing.T) {
	m := RotationZ(1.9)
	inv := m.Inverse()
	tr := m.Transpose()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, tr[i][j], inv[i][j], 1e-9)
		}
	}
}

func TestPositionAngleCardinal(t *testing.T) {
	v := Spherical{Lon: 0, Lat: 0, Rad: 1}.Vector()
	north := Spherical{Lon: 0, Lat: 0.1, Rad: 1}.Vector()
	pa := v.PositionAngle(north)
	assert.InDelta(t, 0.0, pa, 1e-6)
}
