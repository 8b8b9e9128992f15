package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/KirkDiggler/swiss/internal/config"
	"github.com/KirkDiggler/swiss/internal/models"
	tournamentRepo "github.com/KirkDiggler/swiss/internal/repositories/tournament"
	"github.com/KirkDiggler/swiss/internal/resolver"
	"github.com/KirkDiggler/swiss/internal/services/match"
	"github.com/KirkDiggler/swiss/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/swiss/internal/services/messaging/mocks"
	"github.com/KirkDiggler/swiss/internal/services/report"
	reportMocks "github.com/KirkDiggler/swiss/internal/services/report/mocks"
	"github.com/KirkDiggler/swiss/internal/services/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.DiscardHandler)

func sqliteConfig(players ...string) *config.Config {
	return &config.Config{
		StoreBackend: config.StoreSQLite,
		SQLitePath:   tournamentRepo.MemoryPath,
		DiceSeed:     7,
		RoundPolicy:  "floor",
		MessageTone:  "neutral",
		Players:      players,
	}
}

func TestRunOnSQLite(t *testing.T) {
	cfg := sqliteConfig("Anna", "Bill", "Craig", "Dave", "Mary")

	var out bytes.Buffer
	result, err := run(context.Background(), cfg, discard, &out)
	require.NoError(t, err)
	assert.Len(t, result.Rounds, 2)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Welcome to the Swiss Tournament! 5 players, 2 rounds.", lines[0])
	assert.Equal(t, "Begin Round 1", lines[1])
	assert.Equal(t, "Uneven number of players: Mary (Id 5, Wins 0, Plays 0) sits out round 1", lines[2])
	assert.Equal(t, "End of Round 1", lines[3])
	assert.Equal(t, "Begin Round 2", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "Uneven number of players: "))
	assert.Equal(t, "End of Round 2", lines[6])
	assert.True(t, strings.HasPrefix(lines[7], "The Champion is: "))
}

func TestRunRejectsEmptyRoster(t *testing.T) {
	cfg := sqliteConfig()

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, discard, &out)
	assert.Error(t, err)
}

func TestSameSeedSameResultsWhateverTheTone(t *testing.T) {
	players := []string{"Anna", "Bill", "Craig", "Dave", "Evan", "Fred", "Guy", "Haidi", "Ivan"}

	play := func(tone string) *tournament.RunOutput {
		cfg := sqliteConfig(players...)
		cfg.MessageTone = tone

		var out bytes.Buffer
		result, err := run(context.Background(), cfg, discard, &out)
		require.NoError(t, err)
		return result
	}

	neutral := play("neutral")
	for _, tone := range []string{"funny", "celebration"} {
		other := play(tone)
		assert.Equal(t, neutral.Standings, other.Standings, tone)
		assert.Equal(t, neutral.Champion.Standing.PlayerID, other.Champion.Standing.PlayerID, tone)
	}
}

func newSQLiteTournament(t *testing.T) tournament.Service {
	t.Helper()
	ctx := context.Background()

	db, err := tournamentRepo.OpenSQLite(ctx, tournamentRepo.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := tournamentRepo.NewSQL(ctx, &tournamentRepo.SQLConfig{DB: db})
	require.NoError(t, err)

	matchSvc, err := match.New(&match.Config{
		Repository: repo,
		Resolver:   resolver.Func(func(a, b int64) (int64, int64) { return a, b }),
	})
	require.NoError(t, err)

	svc, err := tournament.New(&tournament.Config{
		Repository:   repo,
		MatchService: matchSvc,
	})
	require.NoError(t, err)
	return svc
}

func TestPlayTournamentAnnouncesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := messagingMocks.NewMockService(ctrl)

	gomock.InOrder(
		messages.EXPECT().
			GetWelcomeMessage(gomock.Any(), &messaging.GetWelcomeMessageInput{PlayerCount: 3, Rounds: 1}).
			Return(&messaging.GetWelcomeMessageOutput{Message: "welcome"}, nil),
		messages.EXPECT().
			GetRoundStartMessage(gomock.Any(), &messaging.GetRoundStartMessageInput{Round: 1}).
			Return(&messaging.GetRoundStartMessageOutput{Message: "start 1"}, nil),
		messages.EXPECT().
			GetExcludedPlayerMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *messaging.GetExcludedPlayerMessageInput) (*messaging.GetExcludedPlayerMessageOutput, error) {
				assert.Equal(t, 1, input.Round)
				assert.Equal(t, "C", input.Player.Name)
				return &messaging.GetExcludedPlayerMessageOutput{Message: "C sits out"}, nil
			}),
		messages.EXPECT().
			GetRoundEndMessage(gomock.Any(), &messaging.GetRoundEndMessageInput{Round: 1}).
			Return(&messaging.GetRoundEndMessageOutput{Message: "end 1"}, nil),
		messages.EXPECT().
			GetChampionMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *messaging.GetChampionMessageInput) (*messaging.GetChampionMessageOutput, error) {
				assert.Equal(t, "A", input.Champion.Standing.Name)
				assert.Equal(t, models.TieBreakWins, input.Champion.DecidedBy)
				return &messaging.GetChampionMessageOutput{Message: "A wins"}, nil
			}),
	)

	var out bytes.Buffer
	result, err := playTournament(context.Background(), newSQLiteTournament(t), messages,
		[]string{"A", "B", "C"}, tournament.RoundPolicyFloor, discard, &out)
	require.NoError(t, err)

	assert.Equal(t, "welcome\nstart 1\nC sits out\nend 1\nA wins\n", out.String())
	assert.Equal(t, 3, result.PlayerCount)
}

func TestPlayTournamentSkipsFailedAnnouncements(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := messagingMocks.NewMockService(ctrl)

	messages.EXPECT().GetWelcomeMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetWelcomeMessageOutput{Message: "welcome"}, nil)
	messages.EXPECT().GetRoundStartMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no words"))
	messages.EXPECT().GetRoundEndMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetRoundEndMessageOutput{Message: "end 1"}, nil)
	messages.EXPECT().GetChampionMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetChampionMessageOutput{Message: "A wins"}, nil)

	var out bytes.Buffer
	_, err := playTournament(context.Background(), newSQLiteTournament(t), messages,
		[]string{"A", "B"}, tournament.RoundPolicyFloor, discard, &out)
	require.NoError(t, err)

	assert.Equal(t, "welcome\nend 1\nA wins\n", out.String())
}

func TestPublishReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := reportMocks.NewMockService(ctrl)

	result := &tournament.RunOutput{
		Standings: []*models.Standing{{PlayerID: 1, Name: "A", Wins: 1, Plays: 1}},
		Champion:  &models.Champion{Standing: &models.Standing{PlayerID: 1, Name: "A"}},
	}
	built := &models.Report{ID: "r-1", Slug: "spring-open"}

	gomock.InOrder(
		reports.EXPECT().
			Build(gomock.Any(), &report.BuildInput{
				Title:     "Spring Open",
				Standings: result.Standings,
				Champion:  result.Champion,
			}).
			Return(&report.BuildOutput{Report: built}, nil),
		reports.EXPECT().
			Publish(gomock.Any(), &report.PublishInput{Report: built}).
			Return(&report.PublishOutput{Key: "spring-open/r-1.json"}, nil),
	)

	require.NoError(t, publishReport(context.Background(), reports, "Spring Open", result, discard))
}

func TestPublishReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := reportMocks.NewMockService(ctrl)

	failure := errors.New("bucket not found")
	reports.EXPECT().Build(gomock.Any(), gomock.Any()).
		Return(&report.BuildOutput{Report: &models.Report{}}, nil)
	reports.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil, failure)

	err := publishReport(context.Background(), reports, "t", &tournament.RunOutput{}, discard)
	assert.ErrorIs(t, err, failure)
}
