package models

// Pair is two players drawn to meet in a round
type Pair struct {
	PlayerA *Standing
	PlayerB *Standing
}

// Pairing is the set of pairs for one round
type Pairing struct {
	// Round is the 1-based round number
	Round int

	// Pairs are ordered as they were drawn from the standings
	Pairs []*Pair

	// Excluded is the player left out of the round when the player count is odd.
	// Nil when every player was paired.
	Excluded *Standing
}

// HasExcluded reports whether a player sits out this round
func (p *Pairing) HasExcluded() bool {
	return p.Excluded != nil
}

// PlayerIDs returns the IDs of every paired player in draw order
func (p *Pairing) PlayerIDs() []int64 {
	ids := make([]int64, 0, len(p.Pairs)*2)
	for _, pair := range p.Pairs {
		ids = append(ids, pair.PlayerA.PlayerID, pair.PlayerB.PlayerID)
	}
	return ids
}
