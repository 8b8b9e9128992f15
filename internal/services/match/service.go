package match

import (
	"context"
	"fmt"

	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/resolver"
)

// service implements the Service interface
type service struct {
	repository tournamentRepo.Repository
	resolver   resolver.Resolver
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	return &service{
		repository: cfg.Repository,
		resolver:   cfg.Resolver,
	}, nil
}

// Play resolves the pair and records the outcome
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	winnerID, loserID := s.resolver.Resolve(input.PlayerAID, input.PlayerBID)
	valid := (winnerID == input.PlayerAID && loserID == input.PlayerBID) ||
		(winnerID == input.PlayerBID && loserID == input.PlayerAID)
	if !valid {
		return nil, fmt.Errorf("%w: %d vs %d resolved to %d/%d",
			ErrBadResolution, input.PlayerAID, input.PlayerBID, winnerID, loserID)
	}

	out, err := s.repository.RecordMatch(ctx, &tournamentRepo.RecordMatchInput{
		WinnerID: winnerID,
		LoserID:  loserID,
	})
	if err != nil {
		return nil, err
	}

	return &PlayOutput{
		Match: out.Match,
	}, nil
}
