package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/swiss/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWelcomeMessage returns the announcement that opens a tournament
	GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error)

	// GetRoundStartMessage returns the announcement for the start of a round
	GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error)

	// GetRoundEndMessage returns the announcement for the end of a round
	GetRoundEndMessage(ctx context.Context, input *GetRoundEndMessageInput) (*GetRoundEndMessageOutput, error)

	// GetExcludedPlayerMessage returns the notice for a player left out of a round
	GetExcludedPlayerMessage(ctx context.Context, input *GetExcludedPlayerMessageInput) (*GetExcludedPlayerMessageOutput, error)

	// GetChampionMessage returns the announcement of the champion
	GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error)
}
