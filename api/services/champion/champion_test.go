package champion

import (
	"context"
	"riftstats/api/cache"
	"riftstats/api/repositories"
	"riftstats/api/services/testutil"
	"riftstats/fetcher/data/statssite"
	"riftstats/pkg/config"
	"riftstats/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatsProvider struct {
	mock.Mock
}

func (m *mockStatsProvider) GetChampionStats(ctx context.Context, champion string, role string) (*statssite.ChampionStats, error) {
	args := m.Called(ctx, champion, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*statssite.ChampionStats), args.Error(1)
}

func (m *mockStatsProvider) GetCounters(ctx context.Context, champion string) ([]statssite.CounterStats, error) {
	args := m.Called(ctx, champion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]statssite.CounterStats), args.Error(1)
}

type mockStatsRepository struct {
	mock.Mock
}

func (m *mockStatsRepository) GetLocalChampionStats(ctx context.Context, champion string, role string) (*repositories.LocalChampionStats, error) {
	args := m.Called(ctx, champion, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.LocalChampionStats), args.Error(1)
}

func newTestService(t *testing.T) (*ChampionService, *testutil.MockMasteryReadRepository, *mockStatsRepository, *mockStatsProvider) {
	t.Helper()

	masteryRepo := new(testutil.MockMasteryReadRepository)
	statsRepo := new(mockStatsRepository)
	provider := new(mockStatsProvider)

	service := NewChampionService(&ChampionServiceDeps{
		MasteryRepo: masteryRepo,
		StatsRepo:   statsRepo,
		Stats:       provider,
		Cache:       cache.NewCache(nil),
		CacheCfg:    config.CacheConfiguration{MasteryTTL: 2 * time.Hour},
	})

	return service, masteryRepo, statsRepo, provider
}

func TestGetRecommendations(t *testing.T) {
	service, masteryRepo, _, _ := newTestService(t)

	masteryRepo.On("GetTopByPoints", mock.Anything, uint(1), 10000, 5).
		Return([]*models.MasteryRecord{
			{ChampionId: 103, ChampionName: "Ahri", Level: 7, Points: 250000},
			{ChampionId: 122, ChampionName: "Darius", Level: 5, Points: 42000},
		}, nil)

	recommendations, err := service.GetRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recommendations, 2)

	assert.Equal(t, "Ahri", recommendations[0].ChampionName)
	assert.Contains(t, recommendations[0].Reason, "250000 points")
}

func TestGetRecommendationsEmpty(t *testing.T) {
	service, masteryRepo, _, _ := newTestService(t)

	masteryRepo.On("GetTopByPoints", mock.Anything, uint(1), 10000, 5).
		Return([]*models.MasteryRecord{}, nil)

	recommendations, err := service.GetRecommendations(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}

func TestGetChampionOverviewFromSite(t *testing.T) {
	service, _, statsRepo, provider := newTestService(t)

	provider.On("GetChampionStats", mock.Anything, "Ahri", "MIDDLE").
		Return(&statssite.ChampionStats{
			Champion: "Ahri", Role: "MIDDLE", WinRate: 51.3, PickRate: 8.2, BanRate: 12.7,
		}, nil)

	overview, err := service.GetChampionOverview(context.Background(), "Ahri", "MIDDLE")
	require.NoError(t, err)

	assert.Equal(t, "statssite", overview.Source)
	assert.Equal(t, 51.3, overview.WinRate)
	assert.Equal(t, 8.2, overview.PickRate)
	statsRepo.AssertNotCalled(t, "GetLocalChampionStats", mock.Anything, mock.Anything, mock.Anything)
}

// A dead stats site falls back to the local match pool.
func TestGetChampionOverviewLocalFallback(t *testing.T) {
	service, _, statsRepo, provider := newTestService(t)

	provider.On("GetChampionStats", mock.Anything, "Ahri", "").
		Return(nil, statssite.ErrStatsUnavailable)
	statsRepo.On("GetLocalChampionStats", mock.Anything, "Ahri", "").
		Return(&repositories.LocalChampionStats{Champion: "Ahri", Games: 120, WinRate: 52.84}, nil)

	overview, err := service.GetChampionOverview(context.Background(), "Ahri", "")
	require.NoError(t, err)

	assert.Equal(t, "local", overview.Source)
	assert.Equal(t, 52.8, overview.WinRate)
	assert.Zero(t, overview.PickRate)
}

func TestGetChampionOverviewNothingAnywhere(t *testing.T) {
	service, _, statsRepo, provider := newTestService(t)

	provider.On("GetChampionStats", mock.Anything, "Ahri", "").
		Return(nil, statssite.ErrStatsUnavailable)
	statsRepo.On("GetLocalChampionStats", mock.Anything, "Ahri", "").Return(nil, nil)

	_, err := service.GetChampionOverview(context.Background(), "Ahri", "")
	assert.ErrorIs(t, err, ErrNoStatsAvailable)
}

func TestGetCounters(t *testing.T) {
	service, _, _, provider := newTestService(t)

	provider.On("GetCounters", mock.Anything, "Ahri").
		Return([]statssite.CounterStats{{Champion: "Zed", WinRate: 53.2, Games: 4000}}, nil)

	counters, err := service.GetCounters(context.Background(), "Ahri")
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, "Zed", counters[0].Champion)
}
