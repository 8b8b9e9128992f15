package report

import (
	"github.com/KirkDiggler/swiss/internal/common/clock"
	"github.com/KirkDiggler/swiss/internal/common/uuid"
	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/storage"
)

// Config holds configuration for the report service
type Config struct {
	// Uploader is required by Publish only
	Uploader storage.Uploader

	// Clock stamps GeneratedAt; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator assigns report IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// BuildInput contains the results to report on
type BuildInput struct {
	Title     string
	Rounds    []*models.RoundResult
	Standings []*models.Standing
	Champion  *models.Champion
}

// BuildOutput contains the built report
type BuildOutput struct {
	Report *models.Report
}

// PublishInput contains the report to publish
type PublishInput struct {
	Report *models.Report
}

// PublishOutput describes where the report was stored
type PublishOutput struct {
	Key      string
	Location string
}
