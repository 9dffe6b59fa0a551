package elp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcturuslab/skycore/coordinates"
)

func TestPositionVelocityDistanceNearMeanLunarDistance(t *testing.T) {
	c := coordinates.New(j2000JD, coordinates.Location{})
	pos, _ := PositionVelocity(j2000JD, c)

	distKm := pos.Magnitude() * kmPerAU
	assert.InDelta(t, meanDistanceKm, distKm, 30000, "lunar distance should be within the main problem's excursion of the mean distance")
}

func TestPositionVelocityVelocityIsFiniteAndNonzero(t *testing.T) {
	c := coordinates.New(j2000JD, coordinates.Location{})
	_, vel := PositionVelocity(j2000JD, c)

	assert.False(t, math.IsNaN(vel.Magnitude()))
	assert.Greater(t, vel.Magnitude(), 0.0)
}

func TestPositionVelocityVelocityMatchesFiniteDifference(t *testing.T) {
	const dt = 0.01 // days

	c0 := coordinates.New(j2000JD, coordinates.Location{})
	pos0, vel0 := PositionVelocity(j2000JD, c0)

	c1 := coordinates.New(j2000JD+dt, coordinates.Location{})
	pos1, _ := PositionVelocity(j2000JD+dt, c1)

	fd := pos1.Sub(pos0).Scale(1.0 / dt)

	assert.InDelta(t, fd.X, vel0.X, 1e-6)
	assert.InDelta(t, fd.Y, vel0.Y, 1e-6)
	assert.InDelta(t, fd.Z, vel0.Z, 1e-6)
}

func TestPositionVelocityVariesOverMonth(t *testing.T) {
	c0 := coordinates.New(j2000JD, coordinates.Location{})
	pos0, _ := PositionVelocity(j2000JD, c0)

	c1 := coordinates.New(j2000JD+27.3, coordinates.Location{})
	pos1, _ := PositionVelocity(j2000JD+27.3, c1)

	assert.InDelta(t, pos0.Magnitude(), pos1.Magnitude(), 0.01, "position should return near the same distance after one sidereal month")
}

func TestPositionFuncMatchesPositionVelocity(t *testing.T) {
	loc := coordinates.Location{LatDeg: 34.2, LonDeg: -118.1}
	c := coordinates.New(j2000JD+10, loc)
	want, _ := PositionVelocity(j2000JD+10, c)

	pf := PositionFunc(loc)
	got := pf(j2000JD + 10)

	assert.InDelta(t, want.X, got.X, 1e-12)
	assert.InDelta(t, want.Y, got.Y, 1e-12)
	assert.InDelta(t, want.Z, got.Z, 1e-12)
}

func TestSumSeriesZeroTermsIsZero(t *testing.T) {
	value, rate := sumSeries(nil, arguments{}, true)
	assert.Zero(t, value)
	assert.Zero(t, rate)
}
