package tournament

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/KirkDiggler/swiss/internal/champion"
	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/pairing"
	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/services/match"
)

// service implements the Service interface
type service struct {
	repository   tournamentRepo.Repository
	matchService match.Service
	roundPolicy  RoundPolicy
	logger       *slog.Logger
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}

	policy := cfg.RoundPolicy
	if policy == "" {
		policy = RoundPolicyFloor
	}
	if policy != RoundPolicyFloor && policy != RoundPolicyCeil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &service{
		repository:   cfg.Repository,
		matchService: cfg.MatchService,
		roundPolicy:  policy,
		logger:       logger,
	}, nil
}

// RoundCount returns how many rounds a field of players plays under policy.
// Fewer than two players play no rounds.
func RoundCount(players int, policy RoundPolicy) int {
	if players < 2 {
		return 0
	}
	if policy == RoundPolicyCeil {
		return bits.Len(uint(players - 1))
	}
	return bits.Len(uint(players)) - 1
}

// Reset deletes every match and player
func (s *service) Reset(ctx context.Context) error {
	if err := s.repository.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset tournament: %w", err)
	}

	s.logger.Info("tournament reset")
	return nil
}

// RegisterPlayer enters a player into the tournament
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.repository.RegisterPlayer(ctx, &tournamentRepo.RegisterPlayerInput{
		Name: input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	s.logger.Debug("player registered", "player_id", out.Player.ID, "name", out.Player.Name)

	return &RegisterPlayerOutput{
		Player: out.Player,
	}, nil
}

// CountPlayers returns the number of registered players
func (s *service) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.repository.CountPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

// GetStandings returns the current standings
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.repository.GetStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	return &GetStandingsOutput{
		Standings: out.Standings,
	}, nil
}

// PairRound draws the pairs for a round from the current standings
func (s *service) PairRound(ctx context.Context, input *PairRoundInput) (*PairRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Round < 1 {
		return nil, ErrInvalidRound
	}

	standings, err := s.GetStandings(ctx, &GetStandingsInput{})
	if err != nil {
		return nil, err
	}

	drawn := pairing.Pair(input.Round, standings.Standings)
	if drawn.HasExcluded() {
		s.logger.Warn("player left out of round",
			"round", input.Round,
			"player_id", drawn.Excluded.PlayerID,
			"name", drawn.Excluded.Name)
	}

	return &PairRoundOutput{
		Pairing: drawn,
	}, nil
}

// PlayRound draws a round and plays its pairs in draw order. The first failed
// match aborts the round with a *RoundError; matches already recorded stay recorded.
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	drawn, err := s.PairRound(ctx, &PairRoundInput{
		Round: input.Round,
	})
	if err != nil {
		return nil, err
	}

	if input.OnPairing != nil {
		input.OnPairing(drawn.Pairing)
	}

	s.logger.Info("round started", "round", input.Round, "pairs", len(drawn.Pairing.Pairs))

	result := &models.RoundResult{
		Round:   input.Round,
		Pairing: drawn.Pairing,
		Matches: make([]*models.Match, 0, len(drawn.Pairing.Pairs)),
	}

	for _, pair := range drawn.Pairing.Pairs {
		played, err := s.matchService.Play(ctx, &match.PlayInput{
			PlayerAID: pair.PlayerA.PlayerID,
			PlayerBID: pair.PlayerB.PlayerID,
		})
		if err != nil {
			s.logger.Error("round aborted",
				"round", input.Round,
				"recorded", len(result.Matches),
				"total", len(drawn.Pairing.Pairs),
				"error", err)
			return nil, &RoundError{
				Round:    input.Round,
				Recorded: len(result.Matches),
				Total:    len(drawn.Pairing.Pairs),
				Err:      err,
			}
		}
		result.Matches = append(result.Matches, played.Match)
	}

	s.logger.Info("round complete", "round", input.Round, "matches", len(result.Matches))

	return &PlayRoundOutput{
		Result: result,
	}, nil
}

// Run plays RoundCount rounds for the registered field and crowns the champion
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	players, err := s.CountPlayers(ctx)
	if err != nil {
		return nil, err
	}

	total := RoundCount(players, s.roundPolicy)
	s.logger.Info("tournament started", "players", players, "rounds", total, "policy", string(s.roundPolicy))

	rounds := make([]*models.RoundResult, 0, total)
	for round := 1; round <= total; round++ {
		played, err := s.PlayRound(ctx, &PlayRoundInput{
			Round:     round,
			OnPairing: input.OnPairing,
		})
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, played.Result)
		if input.OnRoundComplete != nil {
			input.OnRoundComplete(played.Result)
		}
	}

	crowned, err := s.GetChampion(ctx, &GetChampionInput{})
	if err != nil {
		return nil, err
	}

	return &RunOutput{
		PlayerCount: players,
		Rounds:      rounds,
		Champion:    crowned.Champion,
		Standings:   crowned.Standings,
	}, nil
}

// GetChampion resolves the champion from the current standings and match history
func (s *service) GetChampion(ctx context.Context, input *GetChampionInput) (*GetChampionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	standings, err := s.GetStandings(ctx, &GetStandingsInput{})
	if err != nil {
		return nil, err
	}

	matches, err := s.repository.ListMatches(ctx, &tournamentRepo.ListMatchesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	winner, err := champion.Resolve(standings.Standings, matches.Matches)
	if err != nil {
		return nil, err
	}

	s.logger.Info("champion resolved",
		"player_id", winner.Standing.PlayerID,
		"name", winner.Standing.Name,
		"wins", winner.Standing.Wins,
		"decided_by", string(winner.DecidedBy))

	return &GetChampionOutput{
		Champion:  winner,
		Standings: standings.Standings,
	}, nil
}
