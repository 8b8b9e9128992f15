// Package champion picks the winner of a finished tournament.
package champion

import (
	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/standings"
)

// Error is the error type returned by the champion resolver
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// ErrNoPlayers is returned when there is nobody to crown
const ErrNoPlayers Error = "no players in standings"

// Resolve returns the champion from final standings (in standings order) and the
// full match history. The player with the most wins takes it; a tie on wins is
// broken by opponent match wins, and a tie on that by standings order.
func Resolve(rows []*models.Standing, matches []*models.Match) (*models.Champion, error) {
	if len(rows) == 0 {
		return nil, ErrNoPlayers
	}

	tied := standings.WithWins(rows, rows[0].Wins)
	if len(tied) == 1 {
		return &models.Champion{
			Standing:   tied[0],
			TiedOnWins: 1,
			DecidedBy:  models.TieBreakWins,
		}, nil
	}

	best := tied[0]
	bestOMW := OpponentMatchWins(best.PlayerID, rows, matches)
	sharedBest := 1
	for _, row := range tied[1:] {
		omw := OpponentMatchWins(row.PlayerID, rows, matches)
		switch {
		case omw > bestOMW:
			best, bestOMW, sharedBest = row, omw, 1
		case omw == bestOMW:
			sharedBest++
		}
	}

	decidedBy := models.TieBreakOpponentMatchWins
	if sharedBest > 1 {
		decidedBy = models.TieBreakStandingsOrder
	}

	return &models.Champion{
		Standing:          best,
		OpponentMatchWins: bestOMW,
		TiedOnWins:        len(tied),
		DecidedBy:         decidedBy,
	}, nil
}

// OpponentMatchWins sums the current wins of every distinct opponent the player
// has beaten. Beating the same opponent twice counts that opponent once.
func OpponentMatchWins(playerID int64, rows []*models.Standing, matches []*models.Match) int {
	wins := make(map[int64]int, len(rows))
	for _, row := range rows {
		wins[row.PlayerID] = row.Wins
	}

	beaten := make(map[int64]struct{})
	total := 0
	for _, m := range matches {
		if m.WinnerID != playerID {
			continue
		}
		if _, seen := beaten[m.LoserID]; seen {
			continue
		}
		beaten[m.LoserID] = struct{}{}
		total += wins[m.LoserID]
	}
	return total
}
