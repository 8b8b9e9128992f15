package tournament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/standings"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	matchKeyPrefix  = "match:"

	// Sorted sets of live IDs, scored by ID
	playersKey = "players"
	matchesKey = "matches"

	// ID sequences
	playerSeqKey = "seq:player"
	matchSeqKey  = "seq:match"
)

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, storeError("ping", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(id int64) string {
	return fmt.Sprintf("%s%d", playerKeyPrefix, id)
}

func matchKey(id int64) string {
	return fmt.Sprintf("%s%d", matchKeyPrefix, id)
}

// ResetAll deletes all matches, then all players, and restarts both ID sequences
func (r *redisRepository) ResetAll(ctx context.Context) error {
	if err := r.deleteAll(ctx, matchesKey, matchKeyPrefix, matchSeqKey); err != nil {
		return storeError("delete matches", err)
	}
	if err := r.deleteAll(ctx, playersKey, playerKeyPrefix, playerSeqKey); err != nil {
		return storeError("delete players", err)
	}
	return nil
}

func (r *redisRepository) deleteAll(ctx context.Context, indexKey, prefix, seqKey string) error {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, prefix+id)
	}
	keys = append(keys, indexKey, seqKey)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}

// RegisterPlayer stores a new player under the next player ID
func (r *redisRepository) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	name, err := validatePlayerName(input)
	if err != nil {
		return nil, err
	}

	id, err := r.client.Incr(ctx, playerSeqKey).Result()
	if err != nil {
		return nil, storeError("allocate player id", err)
	}

	player := &models.Player{
		ID:   id,
		Name: name,
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(id), playerJSON, 0)
		pipe.ZAdd(ctx, playersKey, redis.Z{
			Score:  float64(id),
			Member: strconv.FormatInt(id, 10),
		})
		return nil
	})
	if err != nil {
		return nil, storeError("save player", err)
	}

	return &RegisterPlayerOutput{
		Player: player,
	}, nil
}

// CountPlayers returns the size of the player index
func (r *redisRepository) CountPlayers(ctx context.Context) (int, error) {
	count, err := r.client.ZCard(ctx, playersKey).Result()
	if err != nil {
		return 0, storeError("count players", err)
	}
	return int(count), nil
}

// RecordMatch stores a match after checking both players exist.
// The player keys are watched so a concurrent reset aborts the write.
func (r *redisRepository) RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}

	winnerKey, loserKey := playerKey(input.WinnerID), playerKey(input.LoserID)

	var match *models.Match
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		for _, id := range []int64{input.WinnerID, input.LoserID} {
			n, err := tx.Exists(ctx, playerKey(id)).Result()
			if err != nil {
				return err
			}
			if n == 0 {
				return unknownPlayerError(id)
			}
		}

		id, err := tx.Incr(ctx, matchSeqKey).Result()
		if err != nil {
			return err
		}

		match = &models.Match{
			ID:       id,
			WinnerID: input.WinnerID,
			LoserID:  input.LoserID,
		}

		matchJSON, err := json.Marshal(match)
		if err != nil {
			return fmt.Errorf("failed to marshal match: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, matchKey(id), matchJSON, 0)
			pipe.ZAdd(ctx, matchesKey, redis.Z{
				Score:  float64(id),
				Member: strconv.FormatInt(id, 10),
			})
			return nil
		})
		return err
	}, winnerKey, loserKey)
	if err != nil {
		if errors.Is(err, ErrInvalidMatch) {
			return nil, err
		}
		return nil, storeError("record match", err)
	}

	return &RecordMatchOutput{
		Match: match,
	}, nil
}

// GetStandings loads every player and match and aggregates them
func (r *redisRepository) GetStandings(ctx context.Context) (*GetStandingsOutput, error) {
	players, err := r.loadPlayers(ctx)
	if err != nil {
		return nil, storeError("load players", err)
	}

	matches, err := r.loadMatches(ctx)
	if err != nil {
		return nil, storeError("load matches", err)
	}

	return &GetStandingsOutput{
		Standings: standings.Compute(players, matches),
	}, nil
}

// ListMatches returns matches in ID order, optionally restricted to one winner
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	matches, err := r.loadMatches(ctx)
	if err != nil {
		return nil, storeError("load matches", err)
	}

	if input.WinnerID != 0 {
		filtered := make([]*models.Match, 0, len(matches))
		for _, m := range matches {
			if m.WinnerID == input.WinnerID {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

func (r *redisRepository) loadPlayers(ctx context.Context) ([]*models.Player, error) {
	players := make([]*models.Player, 0)
	err := r.loadIndexed(ctx, playersKey, playerKeyPrefix, func(raw string) error {
		var player models.Player
		if err := json.Unmarshal([]byte(raw), &player); err != nil {
			return fmt.Errorf("failed to unmarshal player: %w", err)
		}
		players = append(players, &player)
		return nil
	})
	return players, err
}

func (r *redisRepository) loadMatches(ctx context.Context) ([]*models.Match, error) {
	matches := make([]*models.Match, 0)
	err := r.loadIndexed(ctx, matchesKey, matchKeyPrefix, func(raw string) error {
		var match models.Match
		if err := json.Unmarshal([]byte(raw), &match); err != nil {
			return fmt.Errorf("failed to unmarshal match: %w", err)
		}
		matches = append(matches, &match)
		return nil
	})
	return matches, err
}

// loadIndexed fetches every record listed in a sorted-set index, in score order
func (r *redisRepository) loadIndexed(ctx context.Context, indexKey, prefix string, decode func(raw string) error) error {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, prefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Record deleted between reading the index and fetching it
			if value == nil {
				continue
			}
			return fmt.Errorf("unexpected value type %T for %s", value, keys[i])
		}
		if err := decode(raw); err != nil {
			return err
		}
	}

	return nil
}
