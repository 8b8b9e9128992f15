package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/swiss/internal/config"
	"github.com/KirkDiggler/swiss/internal/dice"
	"github.com/KirkDiggler/swiss/internal/models"
	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/resolver"
	"github.com/KirkDiggler/swiss/internal/services/match"
	"github.com/KirkDiggler/swiss/internal/services/messaging"
	"github.com/KirkDiggler/swiss/internal/services/report"
	"github.com/KirkDiggler/swiss/internal/services/tournament"
	"github.com/KirkDiggler/swiss/internal/storage"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("tournament failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) (*tournament.RunOutput, error) {
	repo, closeStore, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	// Initialize dice roller and the resolver that uses it
	roller := dice.New(&dice.Config{Seed: cfg.DiceSeed})
	random, err := resolver.NewRandom(&resolver.RandomConfig{Roller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	matchSvc, err := match.New(&match.Config{
		Repository: repo,
		Resolver:   random,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match service: %w", err)
	}

	policy := tournament.RoundPolicy(cfg.RoundPolicy)
	tournamentSvc, err := tournament.New(&tournament.Config{
		RoundPolicy:  policy,
		Repository:   repo,
		MatchService: matchSvc,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament service: %w", err)
	}

	// Messages get their own source so the tone never moves the match rolls
	messages := messaging.New(&messaging.Config{
		Tone: messaging.MessageTone(cfg.MessageTone),
		Seed: cfg.DiceSeed,
	})

	result, err := playTournament(ctx, tournamentSvc, messages, cfg.Players, policy, logger, out)
	if err != nil {
		return nil, err
	}

	if !cfg.Report.Enabled() {
		logger.Debug("report publishing disabled")
		return result, nil
	}

	reports, err := newReportService(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := publishReport(ctx, reports, cfg.Report.Title, result, logger); err != nil {
		return nil, err
	}

	return result, nil
}

// playTournament resets the store, registers the roster and runs every round,
// writing the announcements to out as they happen
func playTournament(
	ctx context.Context,
	tournamentSvc tournament.Service,
	messages messaging.Service,
	players []string,
	policy tournament.RoundPolicy,
	logger *slog.Logger,
	out io.Writer,
) (*tournament.RunOutput, error) {
	if err := tournamentSvc.Reset(ctx); err != nil {
		return nil, err
	}

	for _, name := range players {
		if _, err := tournamentSvc.RegisterPlayer(ctx, &tournament.RegisterPlayerInput{Name: name}); err != nil {
			return nil, err
		}
	}

	count, err := tournamentSvc.CountPlayers(ctx)
	if err != nil {
		return nil, err
	}

	welcome, err := messages.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{
		PlayerCount: count,
		Rounds:      tournament.RoundCount(count, policy),
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, welcome.Message)

	// A failed announcement costs a line of output, not the tournament
	warn := func(err error) {
		logger.Warn("failed to build announcement", slog.Any("error", err))
	}

	result, err := tournamentSvc.Run(ctx, &tournament.RunInput{
		OnPairing: func(p *models.Pairing) {
			if start, err := messages.GetRoundStartMessage(ctx, &messaging.GetRoundStartMessageInput{Round: p.Round}); err != nil {
				warn(err)
			} else {
				fmt.Fprintln(out, start.Message)
			}

			if !p.HasExcluded() {
				return
			}
			excluded, err := messages.GetExcludedPlayerMessage(ctx, &messaging.GetExcludedPlayerMessageInput{
				Round:  p.Round,
				Player: p.Excluded,
			})
			if err != nil {
				warn(err)
				return
			}
			fmt.Fprintln(out, excluded.Message)
		},
		OnRoundComplete: func(r *models.RoundResult) {
			if end, err := messages.GetRoundEndMessage(ctx, &messaging.GetRoundEndMessageInput{Round: r.Round}); err != nil {
				warn(err)
			} else {
				fmt.Fprintln(out, end.Message)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	crowned, err := messages.GetChampionMessage(ctx, &messaging.GetChampionMessageInput{Champion: result.Champion})
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, crowned.Message)

	return result, nil
}

func newReportService(ctx context.Context, cfg *config.Config) (report.Service, error) {
	uploader, err := storage.NewS3Uploader(ctx, storage.S3UploaderConfig{
		Bucket:          cfg.Report.Bucket,
		AccessKeyID:     cfg.Report.AccessKeyID,
		SecretAccessKey: cfg.Report.SecretAccessKey,
		Endpoint:        cfg.Report.Endpoint,
		Region:          cfg.Report.Region,
		PublicBaseURL:   cfg.Report.PublicBaseURL,
		UsePathStyle:    cfg.Report.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report uploader: %w", err)
	}

	return report.New(&report.Config{Uploader: uploader}), nil
}

func publishReport(ctx context.Context, reports report.Service, title string, result *tournament.RunOutput, logger *slog.Logger) error {
	built, err := reports.Build(ctx, &report.BuildInput{
		Title:     title,
		Rounds:    result.Rounds,
		Standings: result.Standings,
		Champion:  result.Champion,
	})
	if err != nil {
		return err
	}

	published, err := reports.Publish(ctx, &report.PublishInput{Report: built.Report})
	if err != nil {
		return err
	}

	logger.Info("report published",
		slog.String("key", published.Key),
		slog.String("location", published.Location))
	return nil
}

func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (tournamentRepo.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := tournamentRepo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := tournamentRepo.NewSQL(ctx, &tournamentRepo.SQLConfig{DB: db, Dialect: tournamentRepo.DialectSQLite})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create sqlite repository: %w", err)
		}
		logger.Info("using sqlite store", slog.String("path", cfg.SQLitePath))
		return repo, func() { _ = db.Close() }, nil

	case config.StorePostgres:
		db, err := tournamentRepo.OpenPostgres(cfg.DatabaseURL, cfg.DatabaseTimeout)
		if err != nil {
			return nil, nil, err
		}
		repo, err := tournamentRepo.NewSQL(ctx, &tournamentRepo.SQLConfig{DB: db, Dialect: tournamentRepo.DialectPostgres})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create postgres repository: %w", err)
		}
		logger.Info("using postgres store")
		return repo, func() { _ = db.Close() }, nil

	default:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("using redis store", slog.String("addr", cfg.RedisAddr))
		return repo, func() { _ = client.Close() }, nil
	}
}
