package models

// TieBreak names the rule that settled the championship
type TieBreak string

const (
	// TieBreakWins means one player had strictly the most wins
	TieBreakWins TieBreak = "wins"

	// TieBreakOpponentMatchWins means opponent match wins split the players tied on wins
	TieBreakOpponentMatchWins TieBreak = "opponent_match_wins"

	// TieBreakStandingsOrder means the tie survived opponent match wins and the
	// first player in standings order was taken
	TieBreakStandingsOrder TieBreak = "standings_order"
)

// Champion is the winner of a finished tournament
type Champion struct {
	// Standing is the champion's final standings row
	Standing *Standing `json:"standing"`

	// OpponentMatchWins is the champion's OMW; only computed when a tie on wins occurred
	OpponentMatchWins int `json:"opponent_match_wins"`

	// TiedOnWins is the number of players that shared the top win count
	TiedOnWins int `json:"tied_on_wins"`

	// DecidedBy is the tie-break rule that produced the champion
	DecidedBy TieBreak `json:"decided_by"`
}
