package models

// Standing is one row of the derived standings table
type Standing struct {
	// PlayerID is the ID of the player
	PlayerID int64 `json:"player_id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Wins is the number of matches the player has won
	Wins int `json:"wins"`

	// Plays is the number of matches the player has played
	Plays int `json:"plays"`
}

// Losses returns the number of matches the player has lost
func (s *Standing) Losses() int {
	return s.Plays - s.Wins
}
