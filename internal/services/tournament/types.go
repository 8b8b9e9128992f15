package tournament

import (
	"log/slog"

	"github.com/KirkDiggler/swiss/internal/models"
	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/services/match"
)

// RoundPolicy decides how many rounds a field of players plays
type RoundPolicy string

const (
	// RoundPolicyFloor plays floor(log2(players)) rounds, so 17 players play
	// the same 4 rounds as 16
	RoundPolicyFloor RoundPolicy = "floor"

	// RoundPolicyCeil plays ceil(log2(players)) rounds
	RoundPolicyCeil RoundPolicy = "ceil"
)

// Config holds configuration for the tournament service
type Config struct {
	// RoundPolicy defaults to RoundPolicyFloor
	RoundPolicy RoundPolicy

	// Repository dependencies
	Repository tournamentRepo.Repository

	// Service dependencies
	MatchService match.Service

	// Logger is optional; nothing is logged when nil
	Logger *slog.Logger
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	Name string
}

// RegisterPlayerOutput contains the registered player
type RegisterPlayerOutput struct {
	Player *models.Player
}

// GetStandingsInput defines the input for retrieving standings
type GetStandingsInput struct{}

// GetStandingsOutput contains the standings in standings order
type GetStandingsOutput struct {
	Standings []*models.Standing
}

// PairRoundInput contains parameters for drawing a round
type PairRoundInput struct {
	// Round is the 1-based round number
	Round int
}

// PairRoundOutput contains the drawn pairing
type PairRoundOutput struct {
	Pairing *models.Pairing
}

// PlayRoundInput contains parameters for playing a round
type PlayRoundInput struct {
	// Round is the 1-based round number
	Round int

	// OnPairing is called with the draw before any match is played
	OnPairing func(pairing *models.Pairing)
}

// PlayRoundOutput contains the result of a played round
type PlayRoundOutput struct {
	Result *models.RoundResult
}

// RunInput contains parameters for running a whole tournament
type RunInput struct {
	// OnPairing is called with each round's draw before it is played
	OnPairing func(pairing *models.Pairing)

	// OnRoundComplete is called after every match of a round is recorded
	OnRoundComplete func(result *models.RoundResult)
}

// RunOutput contains the result of a finished tournament
type RunOutput struct {
	// PlayerCount is the size of the field when the tournament started
	PlayerCount int

	// Rounds are the played rounds in order
	Rounds []*models.RoundResult

	// Champion is the tournament winner
	Champion *models.Champion

	// Standings are the final standings
	Standings []*models.Standing
}

// GetChampionInput defines the input for resolving the champion
type GetChampionInput struct{}

// GetChampionOutput contains the champion
type GetChampionOutput struct {
	Champion *models.Champion

	// Standings are the standings the champion was resolved from
	Standings []*models.Standing
}
