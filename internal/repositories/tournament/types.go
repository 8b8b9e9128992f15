package tournament

import "github.com/KirkDiggler/swiss/internal/models"

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	Name string
}

// RegisterPlayerOutput contains the newly registered player
type RegisterPlayerOutput struct {
	Player *models.Player
}

// RecordMatchInput contains parameters for recording a match result
type RecordMatchInput struct {
	WinnerID int64
	LoserID  int64
}

// RecordMatchOutput contains the recorded match
type RecordMatchOutput struct {
	Match *models.Match
}

// GetStandingsOutput contains the standings table.
// Rows are ordered by wins descending, then by ascending player ID.
type GetStandingsOutput struct {
	Standings []*models.Standing
}

// ListMatchesInput contains parameters for listing matches
type ListMatchesInput struct {
	// WinnerID restricts the result to matches won by this player. Zero lists all matches.
	WinnerID int64
}

// ListMatchesOutput contains the listed matches
type ListMatchesOutput struct {
	Matches []*models.Match
}
