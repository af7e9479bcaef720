package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRatingEqualRatings(t *testing.T) {
	// Expected score is exactly 0.5, so winner and loser move by k/2
	assert.Equal(t, 1516, ComputeRating(1500, 1500, 1, KFactor))
	assert.Equal(t, 1484, ComputeRating(1500, 1500, 0, KFactor))
}

func TestComputeRatingSymmetryAtEqualRatings(t *testing.T) {
	for _, rating := range []int{100, 800, 1500, 2200, 3000} {
		win := ComputeRating(rating, rating, 1, KFactor)
		loss := ComputeRating(rating, rating, 0, KFactor)

		assert.Greater(t, win, rating)
		assert.Less(t, loss, rating)
		assert.Equal(t, win-rating, rating-loss)
	}
}

func TestComputeRatingExtremeGaps(t *testing.T) {
	// A heavy favorite gains almost nothing from a win and loses almost the
	// full k on an upset; the expected score never reaches 0 or 1 exactly.
	assert.Equal(t, 3000, ComputeRating(3000, 100, 1, KFactor))
	assert.Equal(t, 2968, ComputeRating(3000, 100, 0, KFactor))
	assert.Equal(t, 132, ComputeRating(100, 3000, 1, KFactor))
	assert.Equal(t, 100, ComputeRating(100, 3000, 0, KFactor))
}

func TestComputeRatingFiniteOverRange(t *testing.T) {
	for self := 100; self <= 3000; self += 100 {
		for opponent := 100; opponent <= 3000; opponent += 100 {
			for _, outcome := range []int{0, 1} {
				result := ComputeRating(self, opponent, outcome, KFactor)
				assert.GreaterOrEqual(t, result, self-KFactor)
				assert.LessOrEqual(t, result, self+KFactor)
			}
		}
	}
}

func TestComputeRatingModerateGap(t *testing.T) {
	// expected = 1/(1+10^(-400/400)) = 10/11; favorite win is worth 3 points
	assert.Equal(t, 1703, ComputeRating(1700, 1300, 1, KFactor))
	assert.Equal(t, 1297, ComputeRating(1300, 1700, 0, KFactor))
}

func TestTeamRating(t *testing.T) {
	assert.Equal(t, 1500, TeamRating(1500, 1500))
	assert.Equal(t, 1550, TeamRating(1500, 1600))
	assert.Equal(t, 1500, TeamRating(1400, 1600))
}
