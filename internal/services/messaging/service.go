package messaging

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/swiss/internal/dice"
	"github.com/KirkDiggler/swiss/internal/models"
)

// service implements the Service interface
type service struct {
	tone   MessageTone
	roller dice.Roller
}

// New creates a new messaging service
func New(cfg *Config) *service {
	if cfg == nil {
		cfg = &Config{}
	}

	tone := cfg.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.New(&dice.Config{Seed: cfg.Seed})
	}

	return &service{
		tone:   tone,
		roller: roller,
	}
}

func (s *service) toneFor(requested MessageTone) MessageTone {
	if requested == "" {
		return s.tone
	}
	return requested
}

// pick returns the plain announcement for ToneNeutral, otherwise one of the variants
func (s *service) pick(tone MessageTone, plain string, variants map[MessageTone][]string) string {
	options := variants[tone]
	if tone == ToneNeutral || len(options) == 0 {
		return plain
	}
	return options[s.roller.Roll(len(options))-1]
}

// GetWelcomeMessage returns the announcement that opens a tournament
func (s *service) GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := s.toneFor(input.Tone)
	n, r := input.PlayerCount, input.Rounds
	message := s.pick(tone,
		fmt.Sprintf("Welcome to the Swiss Tournament! %d players, %d rounds.", n, r),
		map[MessageTone][]string{
			ToneFunny: {
				fmt.Sprintf("%d players walk into a bracket. Only one walks out after %d rounds.", n, r),
				fmt.Sprintf("Welcome, all %d of you! Stretch first, there are %d rounds of this.", n, r),
				fmt.Sprintf("%d brave souls, %d rounds, zero refunds. Let's go!", n, r),
			},
			ToneCelebration: {
				fmt.Sprintf("🎉 The Swiss Tournament is ON! %d players, %d rounds!", n, r),
				fmt.Sprintf("Let the games begin! %d players battle through %d rounds!", n, r),
			},
		})

	return &GetWelcomeMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetRoundStartMessage returns the announcement for the start of a round
func (s *service) GetRoundStartMessage(ctx context.Context, input *GetRoundStartMessageInput) (*GetRoundStartMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := s.toneFor(input.Tone)
	message := s.pick(tone,
		fmt.Sprintf("Begin Round %d", input.Round),
		map[MessageTone][]string{
			ToneFunny: {
				fmt.Sprintf("Round %d! Try to look like you meant to be here.", input.Round),
				fmt.Sprintf("Round %d begins. No crying until it's over.", input.Round),
			},
			ToneCelebration: {
				fmt.Sprintf("🔔 Round %d is underway!", input.Round),
			},
		})

	return &GetRoundStartMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetRoundEndMessage returns the announcement for the end of a round
func (s *service) GetRoundEndMessage(ctx context.Context, input *GetRoundEndMessageInput) (*GetRoundEndMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := s.toneFor(input.Tone)
	message := s.pick(tone,
		fmt.Sprintf("End of Round %d", input.Round),
		map[MessageTone][]string{
			ToneFunny: {
				fmt.Sprintf("Round %d is in the books. Some of you should read it twice.", input.Round),
				fmt.Sprintf("That's round %d done. Winners, act humble. Losers, act surprised.", input.Round),
			},
			ToneCelebration: {
				fmt.Sprintf("🏁 Round %d complete!", input.Round),
			},
		})

	return &GetRoundEndMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetExcludedPlayerMessage returns the notice for a player left out of a round
func (s *service) GetExcludedPlayerMessage(ctx context.Context, input *GetExcludedPlayerMessageInput) (*GetExcludedPlayerMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Player == nil {
		return nil, ErrNilPlayer
	}

	tone := s.toneFor(input.Tone)
	p := input.Player
	message := s.pick(tone,
		fmt.Sprintf("Uneven number of players: %s (Id %d, Wins %d, Plays %d) sits out round %d",
			p.Name, p.PlayerID, p.Wins, p.Plays, input.Round),
		map[MessageTone][]string{
			ToneFunny: {
				fmt.Sprintf("%s draws the short straw and sits out round %d. No bye, no sympathy.", p.Name, input.Round),
				fmt.Sprintf("Odd one out this round: %s. Literally.", p.Name),
			},
		})

	return &GetExcludedPlayerMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetChampionMessage returns the announcement of the champion
func (s *service) GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Champion == nil || input.Champion.Standing == nil {
		return nil, ErrNilChampion
	}

	tone := s.toneFor(input.Tone)
	c := input.Champion.Standing
	plain := fmt.Sprintf("The Champion is: %s. Id %d, Wins %d, Plays %d", c.Name, c.PlayerID, c.Wins, c.Plays)
	switch input.Champion.DecidedBy {
	case models.TieBreakOpponentMatchWins:
		plain += fmt.Sprintf(" (tie on wins broken by opponent match wins: %d)", input.Champion.OpponentMatchWins)
	case models.TieBreakStandingsOrder:
		plain += " (tie on wins and opponent match wins broken by standings order)"
	}

	message := s.pick(tone, plain, map[MessageTone][]string{
		ToneFunny: {
			fmt.Sprintf("All hail %s, champion with %d wins! Someone fetch a tiny crown.", c.Name, c.Wins),
			fmt.Sprintf("%s wins it all with %d wins. The rest of you were great too. Mostly.", c.Name, c.Wins),
		},
		ToneCelebration: {
			fmt.Sprintf("🏆 %s is the champion! %d wins from %d matches!", c.Name, c.Wins, c.Plays),
		},
	})

	return &GetChampionMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}
