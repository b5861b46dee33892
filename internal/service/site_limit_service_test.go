package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"visitcap/internal/model"
	"visitcap/internal/repository"
	"visitcap/internal/repository/mock"
	"visitcap/internal/repository/testutil"
	"visitcap/internal/service"
)

func TestSiteLimitService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	clock := newFakeClock(baseTime)
	svc := service.NewSiteLimitService(repo, clock.Now)

	repo.EXPECT().GetByPattern(gomock.Any(), "youtube.com").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, limit model.SiteLimit) (*model.SiteLimit, error) {
			require.Equal(t, "youtube.com", limit.Pattern)
			require.Equal(t, 3, limit.VisitLimit)
			require.Equal(t, model.IntervalDay, limit.TimeInterval)
			require.Zero(t, limit.VisitCount)
			require.Equal(t, baseTime, limit.LastReset)
			limit.ID = 42
			return &limit, nil
		},
	)

	dto, err := svc.Create(context.Background(), "https://www.YouTube.com/watch?v=1", 3, "day")
	require.NoError(t, err)
	require.Equal(t, "42", dto.ID)
	require.Equal(t, "youtube.com", dto.Pattern)
	require.NotNil(t, dto.ResetAt)
	require.Equal(t, baseTime.Add(24*time.Hour), *dto.ResetAt)
}

func TestSiteLimitService_CreateKeepsWildcard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, newFakeClock(baseTime).Now)

	repo.EXPECT().GetByPattern(gomock.Any(), "*.reddit.com").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, limit model.SiteLimit) (*model.SiteLimit, error) {
			limit.ID = 1
			return &limit, nil
		},
	)

	dto, err := svc.Create(context.Background(), "*.Reddit.com/", 5, "week")
	require.NoError(t, err)
	require.Equal(t, "*.reddit.com", dto.Pattern)
}

func TestSiteLimitService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		limit    int
		interval string
	}{
		{name: "empty url", url: "  ", limit: 1, interval: "day"},
		{name: "bad host", url: "not a host!", limit: 1, interval: "day"},
		{name: "zero limit", url: "x.com", limit: 0, interval: "day"},
		{name: "negative limit", url: "x.com", limit: -2, interval: "day"},
		{name: "unknown interval", url: "x.com", limit: 1, interval: "fortnight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockSiteLimitRepository(ctrl)
			svc := service.NewSiteLimitService(repo, nil)

			_, err := svc.Create(context.Background(), tt.url, tt.limit, tt.interval)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestSiteLimitService_CreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	repo.EXPECT().GetByPattern(gomock.Any(), "x.com").Return(&model.SiteLimit{ID: 1, Pattern: "x.com"}, nil)

	_, err := svc.Create(context.Background(), "x.com", 1, "hour")
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestSiteLimitService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	clock := newFakeClock(baseTime.Add(30 * time.Minute))
	svc := service.NewSiteLimitService(repo, clock.Now)

	repo.EXPECT().List(gomock.Any()).Return([]model.SiteLimit{
		{ID: 1, Pattern: "a.com", VisitLimit: 2, TimeInterval: model.IntervalHour, VisitCount: 1, LastReset: baseTime},
		{ID: 2, Pattern: "b.com", VisitLimit: 2, TimeInterval: "legacy", LastReset: baseTime},
	}, nil)

	dtos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	require.Equal(t, "1", dtos[0].ID)
	require.Equal(t, "30 minutes", dtos[0].TimeUntilReset)
	require.Nil(t, dtos[1].ResetAt)
	require.Equal(t, service.NotAvailable, dtos[1].TimeUntilReset)
}

func TestSiteLimitService_ListLapsedWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	now := baseTime.Add(26 * time.Hour)
	svc := service.NewSiteLimitService(repo, newFakeClock(now).Now)

	// the stored record is only read, never rewritten
	repo.EXPECT().List(gomock.Any()).Return([]model.SiteLimit{
		{ID: 1, Pattern: "youtube.com", VisitLimit: 3, TimeInterval: model.IntervalDay, VisitCount: 4, LastReset: baseTime},
		{ID: 2, Pattern: "x.com", VisitLimit: 3, TimeInterval: model.IntervalHour, VisitCount: 2, LastReset: now.Add(-time.Hour)},
	}, nil)

	dtos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 2)

	require.Zero(t, dtos[0].VisitCount)
	require.True(t, now.Add(24*time.Hour).Equal(*dtos[0].ResetAt))
	require.Equal(t, "24 hours and 0 minutes", dtos[0].TimeUntilReset)
	require.True(t, baseTime.Equal(dtos[0].LastReset))

	// exactly at the reset instant counts as lapsed
	require.Zero(t, dtos[1].VisitCount)
	require.Equal(t, "1 hour and 0 minutes", dtos[1].TimeUntilReset)
}

func TestSiteLimitService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestSiteLimitService_UpdateAndReset(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSiteLimitRepository(db)
	clock := newFakeClock(baseTime)
	svc := service.NewSiteLimitService(repo, clock.Now)
	ctx := context.Background()

	id := testutil.SeedSiteLimit(t, db, model.SiteLimit{
		Pattern: "x.com", VisitLimit: 2, VisitCount: 5, TimeInterval: model.IntervalDay, LastReset: baseTime,
	})

	dto, err := svc.Update(ctx, id, 10, "week")
	require.NoError(t, err)
	require.Equal(t, 10, dto.VisitLimit)
	require.Equal(t, "week", dto.TimeInterval)
	require.Equal(t, 5, dto.VisitCount, "update keeps the running count")

	clock.Advance(2 * time.Hour)
	dto, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	require.Zero(t, dto.VisitCount)
	require.True(t, baseTime.Add(2*time.Hour).Equal(dto.LastReset))
	require.Equal(t, strconv.FormatInt(id, 10), dto.ID)

	_, err = svc.Update(ctx, id, 0, "week")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSiteLimitService_UpdateMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	repo.EXPECT().Apply(gomock.Any(), int64(9), gomock.Any()).Return(nil, sql.ErrNoRows).Times(2)

	_, err := svc.Update(context.Background(), 9, 1, "day")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Reset(context.Background(), 9)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSiteLimitService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(sql.ErrNoRows),
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("locked")),
	)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.ErrorIs(t, svc.Delete(context.Background(), 2), service.ErrNotFound)

	err := svc.Delete(context.Background(), 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrNotFound)
}

func TestSiteLimitService_DeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewSiteLimitService(repository.NewSiteLimitRepository(db), nil)

	testutil.SeedSiteLimit(t, db, model.SiteLimit{Pattern: "a.com"})
	testutil.SeedSiteLimit(t, db, model.SiteLimit{Pattern: "b.com"})

	n, err := svc.DeleteAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	dtos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, dtos)
}

func TestValidateLimit(t *testing.T) {
	interval, err := service.ValidateLimit(1, "minute")
	require.NoError(t, err)
	require.Equal(t, model.IntervalMinute, interval)

	_, err = service.ValidateLimit(1, "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSiteLimitService_CreateLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	gomock.InOrder(
		repo.EXPECT().GetByPattern(gomock.Any(), "x.com").Return(nil, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicatePattern),
	)

	_, err := svc.Create(context.Background(), "x.com", 1, "day")
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestSiteLimitService_CreateStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSiteLimitRepository(ctrl)
	svc := service.NewSiteLimitService(repo, nil)

	repo.EXPECT().GetByPattern(gomock.Any(), "x.com").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	_, err := svc.Create(context.Background(), "x.com", 1, "day")
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrConflict)
}

func TestSiteLimitService_ConcurrentCreatesOneWins(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewSiteLimitService(repository.NewSiteLimitRepository(db), nil)
	ctx := context.Background()

	const workers = 6
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := svc.Create(ctx, "https://www.x.com/", 2, "day")
			errs <- err
		}()
	}

	created, conflicts := 0, 0
	for i := 0; i < workers; i++ {
		err := <-errs
		if errors.Is(err, service.ErrConflict) {
			conflicts++
			continue
		}
		require.NoError(t, err)
		created++
	}
	require.Equal(t, 1, created)
	require.Equal(t, workers-1, conflicts)
}
