package models

// Match is the recorded outcome of a single game between two players
type Match struct {
	// ID is assigned by the store when the result is recorded
	ID int64 `json:"id"`

	// WinnerID is the ID of the player who won
	WinnerID int64 `json:"winner_id"`

	// LoserID is the ID of the player who lost
	LoserID int64 `json:"loser_id"`
}

// Involves reports whether the player took part in the match
func (m *Match) Involves(playerID int64) bool {
	return m.WinnerID == playerID || m.LoserID == playerID
}
