package models

// RoundResult captures what happened in one played round
type RoundResult struct {
	// Round is the 1-based round number
	Round int

	// Pairing is the draw the round was played from
	Pairing *Pairing

	// Matches are the recorded results, in pairing order
	Matches []*Match
}
