package match

import (
	"github.com/KirkDiggler/swiss/internal/models"
	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/resolver"
)

// Config holds configuration for the match service
type Config struct {
	// Repository dependencies
	Repository tournamentRepo.Repository

	// Resolver decides the winner of every match
	Resolver resolver.Resolver
}

// PlayInput contains the pair to play
type PlayInput struct {
	PlayerAID int64
	PlayerBID int64
}

// PlayOutput contains the recorded match
type PlayOutput struct {
	Match *models.Match
}
