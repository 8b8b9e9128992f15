package report

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/swiss/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/swiss/internal/common/uuid/mocks"
	"github.com/KirkDiggler/swiss/internal/models"
	"github.com/KirkDiggler/swiss/internal/storage"
	storageMocks "github.com/KirkDiggler/swiss/internal/storage/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	mockUploader *storageMocks.MockUploader
	service      Service
	ctx          context.Context
	now          time.Time
	champion     *models.Champion
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockUploader = storageMocks.NewMockUploader(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)

	s.service = New(&Config{
		Uploader:      s.mockUploader,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})

	s.champion = &models.Champion{
		Standing:   &models.Standing{PlayerID: 1, Name: "A", Wins: 2, Plays: 2},
		TiedOnWins: 1,
		DecidedBy:  models.TieBreakWins,
	}
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestBuild() {
	s.mockUUID.EXPECT().NewUUID().Return("report-1")
	s.mockClock.EXPECT().Now().Return(s.now)

	excluded := &models.Standing{PlayerID: 3, Name: "C"}
	out, err := s.service.Build(s.ctx, &BuildInput{
		Title: "Spring Open 2026",
		Rounds: []*models.RoundResult{
			{
				Round:   1,
				Pairing: &models.Pairing{Round: 1, Excluded: excluded},
				Matches: []*models.Match{{ID: 1, WinnerID: 1, LoserID: 2}},
			},
		},
		Standings: []*models.Standing{s.champion.Standing},
		Champion:  s.champion,
	})
	s.Require().NoError(err)

	r := out.Report
	s.Equal("report-1", r.ID)
	s.Equal("Spring Open 2026", r.Title)
	s.Equal("spring-open-2026", r.Slug)
	s.Equal(s.now, r.GeneratedAt)
	s.Require().Len(r.Rounds, 1)
	s.Equal(&models.Player{ID: 3, Name: "C"}, r.Rounds[0].Excluded)
	s.Len(r.Rounds[0].Matches, 1)
	s.Same(s.champion, r.Champion)
}

func (s *ReportServiceTestSuite) TestBuild_DefaultTitle() {
	s.mockUUID.EXPECT().NewUUID().Return("report-2")
	s.mockClock.EXPECT().Now().Return(s.now)

	out, err := s.service.Build(s.ctx, &BuildInput{Title: "  ", Champion: s.champion})
	s.Require().NoError(err)
	s.Equal(DefaultTitle, out.Report.Title)
	s.Equal("swiss-tournament", out.Report.Slug)
	s.Empty(out.Report.Rounds)
}

func (s *ReportServiceTestSuite) TestBuild_Validation() {
	_, err := s.service.Build(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.Build(s.ctx, &BuildInput{Title: "x"})
	s.ErrorIs(err, ErrNilChampion)
}

func (s *ReportServiceTestSuite) TestPublish() {
	report := &models.Report{
		ID:          "report-1",
		Title:       "Spring Open",
		Slug:        "spring-open",
		GeneratedAt: s.now,
		Champion:    s.champion,
	}

	var uploaded models.Report
	s.mockUploader.EXPECT().
		Upload(gomock.Any(), "spring-open/report-1.json", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, body io.Reader) (*storage.UploadResult, error) {
			raw, err := io.ReadAll(body)
			s.Require().NoError(err)
			s.Require().NoError(json.Unmarshal(raw, &uploaded))
			return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
		})

	out, err := s.service.Publish(s.ctx, &PublishInput{Report: report})
	s.Require().NoError(err)
	s.Equal("spring-open/report-1.json", out.Key)
	s.Equal("https://cdn.example.com/spring-open/report-1.json", out.Location)

	s.Equal("report-1", uploaded.ID)
	s.Equal("A", uploaded.Champion.Standing.Name)
	s.True(s.now.Equal(uploaded.GeneratedAt))
}

func (s *ReportServiceTestSuite) TestPublish_UploadError() {
	failure := errors.New("bucket not found")
	s.mockUploader.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, failure)

	_, err := s.service.Publish(s.ctx, &PublishInput{Report: &models.Report{ID: "r", Slug: "s"}})
	s.ErrorIs(err, failure)
}

func (s *ReportServiceTestSuite) TestPublish_Validation() {
	_, err := s.service.Publish(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.Publish(s.ctx, &PublishInput{})
	s.ErrorIs(err, ErrNilReport)

	_, err = New(nil).Publish(s.ctx, &PublishInput{Report: &models.Report{}})
	s.ErrorIs(err, ErrNoUploader)
}
