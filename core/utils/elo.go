package utils

import "math"

// KFactor controls the magnitude of rating change per match.
const KFactor = 32

// InitialRating is assigned to every player at registration.
const InitialRating = 1500

// ComputeRating returns the updated rating for one side of a match using the
// standard ELO formula. outcome is 1 if the side represented by ratingSelf
// won, 0 otherwise. The result is rounded to the nearest integer with ties
// resolved away from zero (math.Round), so the delta observed by callers is
// deterministic.
func ComputeRating(ratingSelf, ratingOpponent, outcome, k int) int {
	expectedScore := 1.0 / (1.0 + math.Pow(10, float64(ratingOpponent-ratingSelf)/400.0))
	return int(math.Round(float64(ratingSelf) + float64(k)*(float64(outcome)-expectedScore)))
}

// TeamRating returns the rating of a two-player team: the arithmetic mean of
// its members' ratings before the match. Both teammates later move by the
// same team delta regardless of their individual ratings.
func TeamRating(rating1, rating2 int) int {
	return (rating1 + rating2) / 2
}
