package champion

import (
	"testing"

	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/stretchr/testify/suite"
)

type ChampionTestSuite struct {
	suite.Suite
	rows []*models.Standing
}

func (s *ChampionTestSuite) SetupTest() {
	s.rows = []*models.Standing{
		{PlayerID: 1, Name: "A", Wins: 5, Plays: 5},
		{PlayerID: 2, Name: "B", Wins: 5, Plays: 5},
		{PlayerID: 3, Name: "C", Wins: 3, Plays: 5},
		{PlayerID: 4, Name: "D", Wins: 1, Plays: 5},
	}
}

func TestChampionTestSuite(t *testing.T) {
	suite.Run(t, new(ChampionTestSuite))
}

func (s *ChampionTestSuite) TestEmptyStandings() {
	champ, err := Resolve(nil, nil)
	s.Require().ErrorIs(err, ErrNoPlayers)
	s.Nil(champ)
}

func (s *ChampionTestSuite) TestSoleLeader() {
	rows := []*models.Standing{
		{PlayerID: 1, Name: "A", Wins: 2, Plays: 2},
		{PlayerID: 2, Name: "B", Wins: 1, Plays: 2},
	}

	champ, err := Resolve(rows, nil)
	s.Require().NoError(err)
	s.Same(rows[0], champ.Standing)
	s.Equal(1, champ.TiedOnWins)
	s.Equal(models.TieBreakWins, champ.DecidedBy)
}

func (s *ChampionTestSuite) TestOpponentMatchWinsBreaksTie() {
	// B beat C (3 wins), A only beat D (1 win)
	matches := []*models.Match{
		{ID: 1, WinnerID: 1, LoserID: 4},
		{ID: 2, WinnerID: 2, LoserID: 3},
	}

	champ, err := Resolve(s.rows, matches)
	s.Require().NoError(err)
	s.Equal(int64(2), champ.Standing.PlayerID)
	s.Equal(3, champ.OpponentMatchWins)
	s.Equal(2, champ.TiedOnWins)
	s.Equal(models.TieBreakOpponentMatchWins, champ.DecidedBy)
}

func (s *ChampionTestSuite) TestEqualOpponentMatchWinsFavoursFirst() {
	matches := []*models.Match{
		{ID: 1, WinnerID: 1, LoserID: 3},
		{ID: 2, WinnerID: 2, LoserID: 3},
	}

	champ, err := Resolve(s.rows, matches)
	s.Require().NoError(err)
	s.Equal(int64(1), champ.Standing.PlayerID)
	s.Equal(3, champ.OpponentMatchWins)
	s.Equal(models.TieBreakStandingsOrder, champ.DecidedBy)
}

func (s *ChampionTestSuite) TestNoMatchesFavoursFirst() {
	champ, err := Resolve(s.rows, nil)
	s.Require().NoError(err)
	s.Equal(int64(1), champ.Standing.PlayerID)
	s.Equal(0, champ.OpponentMatchWins)
	s.Equal(models.TieBreakStandingsOrder, champ.DecidedBy)
}

func (s *ChampionTestSuite) TestOpponentMatchWinsCountsDistinctOpponents() {
	matches := []*models.Match{
		{ID: 1, WinnerID: 1, LoserID: 3},
		{ID: 2, WinnerID: 1, LoserID: 3},
		{ID: 3, WinnerID: 1, LoserID: 4},
		{ID: 4, WinnerID: 3, LoserID: 1},
	}

	s.Equal(4, OpponentMatchWins(1, s.rows, matches))
	s.Equal(5, OpponentMatchWins(3, s.rows, matches))
	s.Equal(0, OpponentMatchWins(2, s.rows, matches))
}

func (s *ChampionTestSuite) TestLaterTiedPlayerWithHigherOMW() {
	rows := []*models.Standing{
		{PlayerID: 1, Name: "A", Wins: 2, Plays: 2},
		{PlayerID: 2, Name: "B", Wins: 2, Plays: 2},
		{PlayerID: 3, Name: "C", Wins: 2, Plays: 2},
		{PlayerID: 4, Name: "D", Wins: 1, Plays: 2},
		{PlayerID: 5, Name: "E", Wins: 0, Plays: 2},
	}
	matches := []*models.Match{
		{ID: 1, WinnerID: 1, LoserID: 5},
		{ID: 2, WinnerID: 2, LoserID: 5},
		{ID: 3, WinnerID: 3, LoserID: 4},
	}

	champ, err := Resolve(rows, matches)
	s.Require().NoError(err)
	s.Equal(int64(3), champ.Standing.PlayerID)
	s.Equal(1, champ.OpponentMatchWins)
	s.Equal(3, champ.TiedOnWins)
	s.Equal(models.TieBreakOpponentMatchWins, champ.DecidedBy)
}
