// Package combat implements the duel resolution engine: combat units, their
// basic-attack policies, damage and armor arithmetic, the once-per-battle
// skill, and the battle driver that alternates player and enemy turns.
package combat

import "math"

// Source is the subset of dice.Source used by the enemy policy.
// Using a local interface avoids importing the dice package.
type Source interface {
	Intn(n int) int
}

// round1 rounds v to one decimal place, half away from zero.
//
// Postcondition: |round1(v) - v| <= 0.05.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
