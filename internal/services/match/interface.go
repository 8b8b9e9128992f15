package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/swiss/internal/services/match Service

import "context"

// Service defines the interface for playing matches
type Service interface {
	// Play decides the winner of a pair and records the result
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}
