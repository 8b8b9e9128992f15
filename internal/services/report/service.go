package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/swiss/internal/common/clock"
	"github.com/KirkDiggler/swiss/internal/common/uuid"
	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/storage"
	"github.com/gosimple/slug"
)

// DefaultTitle names reports built without a title
const DefaultTitle = "Swiss Tournament"

const contentTypeJSON = "application/json"

// service implements the Service interface
type service struct {
	uploader      storage.Uploader
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new report service
func New(cfg *Config) *service {
	if cfg == nil {
		cfg = &Config{}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	return &service{
		uploader:      cfg.Uploader,
		clock:         c,
		uuidGenerator: gen,
	}
}

// Build assembles the report for a finished tournament
func (s *service) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Champion == nil {
		return nil, ErrNilChampion
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultTitle
	}

	rounds := make([]*models.ReportRound, 0, len(input.Rounds))
	for _, r := range input.Rounds {
		round := &models.ReportRound{
			Round:   r.Round,
			Matches: r.Matches,
		}
		if r.Pairing != nil && r.Pairing.HasExcluded() {
			round.Excluded = &models.Player{
				ID:   r.Pairing.Excluded.PlayerID,
				Name: r.Pairing.Excluded.Name,
			}
		}
		rounds = append(rounds, round)
	}

	return &BuildOutput{
		Report: &models.Report{
			ID:          s.uuidGenerator.NewUUID(),
			Title:       title,
			Slug:        slug.Make(title),
			GeneratedAt: s.clock.Now(),
			Rounds:      rounds,
			Standings:   input.Standings,
			Champion:    input.Champion,
		},
	}, nil
}

// Key returns the object key a report is published under
func Key(report *models.Report) string {
	return fmt.Sprintf("%s/%s.json", report.Slug, report.ID)
}

// Publish uploads the report as indented JSON under Key
func (s *service) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Report == nil {
		return nil, ErrNilReport
	}
	if s.uploader == nil {
		return nil, ErrNoUploader
	}

	body, err := json.MarshalIndent(input.Report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	result, err := s.uploader.Upload(ctx, Key(input.Report), contentTypeJSON, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to publish report: %w", err)
	}

	return &PublishOutput{
		Key:      result.Key,
		Location: result.Location,
	}, nil
}
