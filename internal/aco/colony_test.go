package aco_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfarer/planner/internal/aco"
)

func squareCities() []aco.Point {
	return []aco.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
	}
}

func TestColonyFindsShortTourOnASquare(t *testing.T) {
	cfg := aco.DefaultConfig()
	cfg.NumIterations = 30
	colony, err := aco.New(squareCities(), cfg)
	require.NoError(t, err)

	result := colony.Run(rand.New(rand.NewSource(42)))
	require.Len(t, result.BestTour, 4)
	// The perimeter of a unit square is 4; any tour that visits every
	// corner exactly once without crossing costs exactly 4.
	assert.InDelta(t, 4.0, result.BestLength, 1e-6)
}

func TestColonyNeverDuplicatesOrDropsACity(t *testing.T) {
	cfg := aco.DefaultConfig()
	cfg.NumIterations = 10
	colony, err := aco.New(squareCities(), cfg)
	require.NoError(t, err)

	result := colony.Run(rand.New(rand.NewSource(7)))
	seen := map[int]bool{}
	for _, c := range result.BestTour {
		assert.False(t, seen[c], "city %d visited twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 4)
}

func TestColonyHandlesTwoOrFewerCitiesAsPassThrough(t *testing.T) {
	colony, err := aco.New([]aco.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, aco.DefaultConfig())
	require.NoError(t, err)
	result := colony.Run(rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{0, 1}, result.BestTour)
}
