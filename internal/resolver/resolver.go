// Package resolver decides who wins a match between two players.
package resolver

import (
	"errors"

	"github.com/KirkDiggler/swiss/internal/dice"
)

// DefaultMaxScore is the top of the score range drawn by the random resolver
const DefaultMaxScore = 100

// ErrNilRoller is returned when the random resolver has no dice roller
var ErrNilRoller = errors.New("dice roller cannot be nil")

// Resolver picks a winner for a pair. It must always return one of the two IDs
// as winner and the other as loser.
type Resolver interface {
	Resolve(playerA, playerB int64) (winnerID, loserID int64)
}

// Func adapts an ordinary function, such as one reading real scores, to a Resolver
type Func func(playerA, playerB int64) (winnerID, loserID int64)

// Resolve calls f
func (f Func) Resolve(playerA, playerB int64) (int64, int64) {
	return f(playerA, playerB)
}

// RandomConfig holds configuration for the random resolver
type RandomConfig struct {
	// Roller supplies the randomness
	Roller dice.Roller

	// MaxScore is the highest score a player can draw; zero means DefaultMaxScore
	MaxScore int
}

// Random gives each player an independent score in [0, MaxScore]; the higher
// score wins and a tie goes to the first player.
type Random struct {
	roller   dice.Roller
	maxScore int
}

// NewRandom creates a random resolver
func NewRandom(cfg *RandomConfig) (*Random, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	maxScore := cfg.MaxScore
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}

	return &Random{
		roller:   cfg.Roller,
		maxScore: maxScore,
	}, nil
}

// Resolve draws a score for each player and returns the winner first
func (r *Random) Resolve(playerA, playerB int64) (int64, int64) {
	scoreA := r.score()
	scoreB := r.score()
	if scoreA >= scoreB {
		return playerA, playerB
	}
	return playerB, playerA
}

func (r *Random) score() int {
	return r.roller.Roll(r.maxScore+1) - 1
}
