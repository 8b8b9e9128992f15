package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/swiss/internal/repositories/tournament Repository

import (
	"context"
)

// Repository defines the interface for tournament data persistence.
// Implementations must serialize writes; callers run one round at a time.
type Repository interface {
	// ResetAll deletes every match and then every player
	ResetAll(ctx context.Context) error

	// RegisterPlayer creates a player with a fresh ID
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// CountPlayers returns the number of registered players
	CountPlayers(ctx context.Context) (int, error)

	// RecordMatch appends the result of a match between two registered players
	RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error)

	// GetStandings returns every player's wins and plays in standings order
	GetStandings(ctx context.Context) (*GetStandingsOutput, error)

	// ListMatches returns recorded matches in the order they were recorded
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)
}
