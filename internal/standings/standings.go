// Package standings derives the ranked standings table from raw players and matches.
package standings

import (
	"sort"

	"github.com/KirkDiggler/swiss/internal/models"
)

// Compute aggregates wins and plays for every player and returns the rows in
// standings order. Matches that reference an unknown player are skipped.
func Compute(players []*models.Player, matches []*models.Match) []*models.Standing {
	index := make(map[int64]*models.Standing, len(players))
	rows := make([]*models.Standing, 0, len(players))
	for _, p := range players {
		row := &models.Standing{
			PlayerID: p.ID,
			Name:     p.Name,
		}
		index[p.ID] = row
		rows = append(rows, row)
	}

	for _, m := range matches {
		winner, loser := index[m.WinnerID], index[m.LoserID]
		if winner == nil || loser == nil {
			continue
		}
		winner.Wins++
		winner.Plays++
		loser.Plays++
	}

	Sort(rows)
	return rows
}

// Sort orders rows by wins descending, then by ascending player ID
func Sort(rows []*models.Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j])
	})
}

// Less reports whether a ranks ahead of b
func Less(a, b *models.Standing) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	return a.PlayerID < b.PlayerID
}

// WithWins returns the rows holding exactly the given number of wins, keeping their order
func WithWins(rows []*models.Standing, wins int) []*models.Standing {
	var out []*models.Standing
	for _, row := range rows {
		if row.Wins == wins {
			out = append(out, row)
		}
	}
	return out
}
