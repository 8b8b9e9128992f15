package messaging

import (
	"github.com/KirkDiggler/swiss/internal/dice"
	"github.com/KirkDiggler/swiss/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is the plain announcement
	ToneNeutral MessageTone = "neutral"

	// ToneFunny picks a humorous variant
	ToneFunny MessageTone = "funny"

	// ToneCelebration picks a celebratory variant
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	// Tone is used when an input does not ask for one; defaults to ToneNeutral
	Tone MessageTone

	// Roller picks among message variants. When nil a roller seeded with Seed is used.
	Roller dice.Roller

	// Seed for the default roller; zero seeds from the clock
	Seed int64
}

// GetWelcomeMessageInput contains parameters for the welcome message
type GetWelcomeMessageInput struct {
	PlayerCount int
	Rounds      int
	Tone        MessageTone
}

// GetWelcomeMessageOutput contains the welcome message
type GetWelcomeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoundStartMessageInput contains parameters for the round start message
type GetRoundStartMessageInput struct {
	Round int
	Tone  MessageTone
}

// GetRoundStartMessageOutput contains the round start message
type GetRoundStartMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoundEndMessageInput contains parameters for the round end message
type GetRoundEndMessageInput struct {
	Round int
	Tone  MessageTone
}

// GetRoundEndMessageOutput contains the round end message
type GetRoundEndMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetExcludedPlayerMessageInput contains parameters for the excluded player notice
type GetExcludedPlayerMessageInput struct {
	Round  int
	Player *models.Standing
	Tone   MessageTone
}

// GetExcludedPlayerMessageOutput contains the excluded player notice
type GetExcludedPlayerMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetChampionMessageInput contains parameters for the champion announcement
type GetChampionMessageInput struct {
	Champion *models.Champion
	Tone     MessageTone
}

// GetChampionMessageOutput contains the champion announcement
type GetChampionMessageOutput struct {
	Message string
	Tone    MessageTone
}
