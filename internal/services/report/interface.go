package report

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/swiss/internal/services/report Service

import "context"

// Service builds and publishes tournament reports
type Service interface {
	// Build assembles the report for a finished tournament
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)

	// Publish uploads a report as JSON
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)
}
