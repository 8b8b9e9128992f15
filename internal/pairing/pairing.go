// Package pairing draws the next round of a Swiss tournament from the standings.
//
// Players are paired with their neighbour in the standings: first with second,
// third with fourth and so on. With an odd field the last player in standings
// order sits the round out and is reported on the Pairing; no bye win is credited.
// Rematches are not avoided.
package pairing

import "github.com/KirkDiggler/swiss/internal/models"

// Pair builds the pairing for the given round from standings already in standings order
func Pair(round int, standings []*models.Standing) *models.Pairing {
	pairing := &models.Pairing{
		Round: round,
		Pairs: make([]*models.Pair, 0, len(standings)/2),
	}

	for i := 0; i+1 < len(standings); i += 2 {
		pairing.Pairs = append(pairing.Pairs, &models.Pair{
			PlayerA: standings[i],
			PlayerB: standings[i+1],
		})
	}

	if len(standings)%2 != 0 {
		pairing.Excluded = standings[len(standings)-1]
	}

	return pairing
}
