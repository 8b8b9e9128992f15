package tournament

import "context"

// Service defines the interface for running a Swiss-system tournament
type Service interface {
	// Reset deletes every match and player
	Reset(ctx context.Context) error

	// RegisterPlayer enters a player into the tournament
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// CountPlayers returns the number of registered players
	CountPlayers(ctx context.Context) (int, error)

	// GetStandings returns the current standings
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// PairRound draws the pairs for a round from the current standings
	PairRound(ctx context.Context, input *PairRoundInput) (*PairRoundOutput, error)

	// PlayRound draws a round and plays every pair in it
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// Run plays every round the field calls for and crowns the champion
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)

	// GetChampion resolves the champion from the current standings
	GetChampion(ctx context.Context, input *GetChampionInput) (*GetChampionOutput, error)
}
