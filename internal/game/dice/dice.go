// Package dice provides the randomness abstraction used by the duel engine.
//
// Every random decision in a battle (currently only the enemy's skill trigger)
// draws from a Source so tests and replays can substitute a deterministic one.
package dice

// Source is the randomness provider for battle decisions.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
