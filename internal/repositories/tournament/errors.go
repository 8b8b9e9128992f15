package tournament

import (
	"fmt"
	"strings"
)

// Error is the error type returned by tournament repositories
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrStoreUnavailable wraps any failure of the underlying storage engine
	ErrStoreUnavailable Error = "tournament store unavailable"

	// ErrInvalidMatch is returned when a match references an unregistered player
	ErrInvalidMatch Error = "invalid match"

	// ErrSelfMatch is returned when the winner and loser are the same player
	ErrSelfMatch Error = "player cannot play against themselves"

	ErrInvalidPlayerName Error = "player name cannot be empty"
	ErrNilInput          Error = "input cannot be nil"
	ErrNilConfig         Error = "config cannot be nil"
	ErrNilRedisClient    Error = "redis client cannot be nil"
	ErrNilDB             Error = "database handle cannot be nil"
	ErrUnknownDialect    Error = "unknown SQL dialect"
)

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

func unknownPlayerError(playerID int64) error {
	return fmt.Errorf("%w: player %d is not registered", ErrInvalidMatch, playerID)
}

func validatePlayerName(input *RegisterPlayerInput) (string, error) {
	if input == nil {
		return "", ErrNilInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", ErrInvalidPlayerName
	}
	return name, nil
}

func validateMatch(input *RecordMatchInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.WinnerID == input.LoserID {
		return fmt.Errorf("%w: %w", ErrInvalidMatch, ErrSelfMatch)
	}
	return nil
}
