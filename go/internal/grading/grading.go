// Package grading holds the shared grade threshold table and the two
// percentage bases it is applied to. Per-game grading (one session's score
// against rounds x points) and lifetime-aggregate grading (a player's
// average against the fixed 100-point game max) are deliberately separate
// functions; callers must not conflate the two bases.
package grading

import (
	"math"
)

// ForPercentage maps a percentage of the maximum to a letter grade.
func ForPercentage(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 40:
		return "C"
	case percentage >= 30:
		return "D"
	default:
		return "F"
	}
}

// GamePercentage is the per-session basis: final score over the known
// maximum (rounds x points per correct answer), rounded.
func GamePercentage(score, rounds, pointsPerCorrect int) int {
	max := rounds * pointsPerCorrect
	if max <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(max)))
}

// AveragePercentage is the lifetime-aggregate basis used by the
// leaderboard: a running average score over the fixed per-game maximum
// of 100, rounded.
func AveragePercentage(average float64) int {
	const maxPossiblePerGame = 100
	return int(math.Round(100 * average / maxPossiblePerGame))
}

// GameGrade grades one finished session.
func GameGrade(score, rounds, pointsPerCorrect int) string {
	return ForPercentage(GamePercentage(score, rounds, pointsPerCorrect))
}

// AverageGrade grades a lifetime average.
func AverageGrade(average float64) string {
	return ForPercentage(AveragePercentage(average))
}
