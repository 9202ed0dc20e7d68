package matchup

import (
	"context"
	"riftstats/api/cache"
	"riftstats/api/repositories"
	"riftstats/api/services/testutil"
	"riftstats/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*MatchupService, *testutil.MockMatchReadRepository) {
	t.Helper()

	matchRepo := new(testutil.MockMatchReadRepository)
	service := NewMatchupService(&MatchupServiceDeps{
		MatchRepo: matchRepo,
		Cache:     cache.NewCache(nil),
		CacheTTL:  time.Hour,
	})

	return service, matchRepo
}

func aggregate(opponent string, games int, wins int, winRate float64) *repositories.MatchupAggregate {
	return &repositories.MatchupAggregate{
		OpponentChampion: opponent,
		Games:            games,
		Wins:             wins,
		WinRate:          winRate,
	}
}

func TestGetDifficultMatchups(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(40), nil)
	matchRepo.On("GetMatchupAggregates", mock.Anything, uint(1), MinSampleSize, mock.Anything).
		Return([]*repositories.MatchupAggregate{
			{
				OpponentChampion: "Renekton", Games: 4, Wins: 1, WinRate: 25.0,
				AvgKills: 3.25, AvgDeaths: 5.7501, AvgAssists: 6.0,
				AvgCsPerMin: 6.84, AvgGoldPerMin: 388.6, AvgDamagePerMin: 512.4,
				AvgKillParticipation: 0.5678,
			},
			aggregate("Zed", 10, 4, 40.0),
		}, nil)

	result, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	require.NoError(t, err)
	require.Len(t, result.Matchups, 2)
	assert.Empty(t, result.Reason)

	renekton := result.Matchups[0]
	assert.Equal(t, "Renekton", renekton.OpponentChampion)
	assert.Equal(t, 1, renekton.Wins)
	assert.Equal(t, 3, renekton.Losses)
	assert.Equal(t, 25.0, renekton.WinRate)

	// One decimal everywhere, whole numbers for gold and damage.
	assert.Equal(t, 3.3, renekton.AvgKills)
	assert.Equal(t, 5.8, renekton.AvgDeaths)
	assert.Equal(t, 6.8, renekton.AvgCsPerMin)
	assert.Equal(t, 389.0, renekton.AvgGoldPerMin)
	assert.Equal(t, 512.0, renekton.AvgDamagePerMin)
	assert.Equal(t, 56.8, renekton.AvgKillParticipation)
}

// Exactly 50% is an even matchup, not a difficult one.
func TestGetDifficultMatchupsStrictCeiling(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(40), nil)
	matchRepo.On("GetMatchupAggregates", mock.Anything, uint(1), MinSampleSize, mock.Anything).
		Return([]*repositories.MatchupAggregate{
			aggregate("Zed", 8, 3, 37.5),
			aggregate("Yasuo", 8, 4, 50.0),
			aggregate("Darius", 6, 4, 66.7),
		}, nil)

	result, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	require.NoError(t, err)
	require.Len(t, result.Matchups, 1)
	assert.Equal(t, "Zed", result.Matchups[0].OpponentChampion)
}

// The minimum sample size is enforced even if a repository row slips under it.
func TestGetDifficultMatchupsMinSampleSize(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(40), nil)
	matchRepo.On("GetMatchupAggregates", mock.Anything, uint(1), MinSampleSize, mock.Anything).
		Return([]*repositories.MatchupAggregate{
			aggregate("Teemo", 2, 0, 0.0),
			aggregate("Zed", 3, 1, 33.3),
		}, nil)

	result, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	require.NoError(t, err)
	require.Len(t, result.Matchups, 1)
	assert.Equal(t, "Zed", result.Matchups[0].OpponentChampion)
}

// The repository orders by win rate ascending with games played as tie break,
// and the service keeps that order while capping at ten rows.
func TestGetDifficultMatchupsOrderAndCap(t *testing.T) {
	service, matchRepo := newTestService(t)

	aggregates := []*repositories.MatchupAggregate{
		aggregate("Zed", 10, 2, 20.0),
		aggregate("Yasuo", 5, 1, 20.0),
		aggregate("Darius", 3, 1, 40.0),
	}
	for _, opponent := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		aggregates = append(aggregates, aggregate(opponent, 4, 1, 45.0))
	}

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(100), nil)
	matchRepo.On("GetMatchupAggregates", mock.Anything, uint(1), MinSampleSize, mock.Anything).
		Return(aggregates, nil)

	result, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	require.NoError(t, err)
	require.Len(t, result.Matchups, 10)

	assert.Equal(t, "Zed", result.Matchups[0].OpponentChampion)
	assert.Equal(t, "Yasuo", result.Matchups[1].OpponentChampion)
	assert.Equal(t, "Darius", result.Matchups[2].OpponentChampion)
}

func TestGetDifficultMatchupsNoMatchData(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(0), nil)

	_, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	assert.ErrorIs(t, err, ErrNoMatchData)

	matchRepo.AssertNotCalled(t, "GetMatchupAggregates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Matches exist but nothing qualifies: empty list with a reason, not an error.
func TestGetDifficultMatchupsEmptyWithReason(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("CountByPlayer", mock.Anything, uint(1)).Return(int64(12), nil)
	matchRepo.On("GetMatchupAggregates", mock.Anything, uint(1), MinSampleSize, mock.Anything).
		Return([]*repositories.MatchupAggregate{
			aggregate("Darius", 6, 4, 66.7),
		}, nil)

	result, err := service.GetDifficultMatchups(context.Background(), 1, map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, result.Matchups)
	assert.NotEmpty(t, result.Reason)
}

func TestGetMatchupDetail(t *testing.T) {
	service, matchRepo := newTestService(t)

	playedAt := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	opponent := "Zed"

	// A single game is enough for the detail view.
	matchRepo.On("GetMatchupAggregate", mock.Anything, uint(1), "Zed", map[string]any{}).
		Return(aggregate("Zed", 1, 0, 0.0), nil)
	matchRepo.On("GetRoleDistribution", mock.Anything, uint(1), "Zed", map[string]any{}).
		Return(map[string]int{"MIDDLE": 1}, nil)
	matchRepo.On("GetModeDistribution", mock.Anything, uint(1), "Zed", map[string]any{}).
		Return(map[string]int{"Ranked Solo/Duo": 1}, nil)
	matchRepo.On("GetRecentMatchesVsOpponent", mock.Anything, uint(1), "Zed", map[string]any{}, 10).
		Return([]*models.MatchRecord{
			{
				MatchId: "NA1_1", Champion: "Ahri", OpponentChampion: &opponent,
				Role: "MIDDLE", Win: false, GameMode: "Ranked Solo/Duo",
				DurationMinutes: 27.5, Kills: 2, Deaths: 7, Assists: 3, PlayedAt: playedAt,
			},
		}, nil)

	detail, err := service.GetMatchupDetail(context.Background(), 1, "Zed", map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, 1, detail.Stats.Games)
	assert.Equal(t, 1, detail.Stats.Losses)
	assert.Equal(t, map[string]int{"MIDDLE": 1}, detail.RoleDistribution)
	assert.Equal(t, map[string]int{"Ranked Solo/Duo": 1}, detail.ModeDistribution)
	require.Len(t, detail.RecentMatches, 1)
	assert.Equal(t, "NA1_1", detail.RecentMatches[0].MatchId)
	assert.Equal(t, playedAt.Format(time.RFC3339), detail.RecentMatches[0].PlayedAt)
}

// Role and mode narrow every query of the detail view, not just the
// aggregate.
func TestGetMatchupDetailWithFilters(t *testing.T) {
	service, matchRepo := newTestService(t)

	detailFilters := map[string]any{"role": "MIDDLE", "mode": "Ranked Solo/Duo"}

	matchRepo.On("GetMatchupAggregate", mock.Anything, uint(1), "Zed", detailFilters).
		Return(aggregate("Zed", 2, 1, 50.0), nil)
	matchRepo.On("GetRoleDistribution", mock.Anything, uint(1), "Zed", detailFilters).
		Return(map[string]int{"MIDDLE": 2}, nil)
	matchRepo.On("GetModeDistribution", mock.Anything, uint(1), "Zed", detailFilters).
		Return(map[string]int{"Ranked Solo/Duo": 2}, nil)
	matchRepo.On("GetRecentMatchesVsOpponent", mock.Anything, uint(1), "Zed", detailFilters, 10).
		Return([]*models.MatchRecord{}, nil)

	detail, err := service.GetMatchupDetail(context.Background(), 1, "Zed", detailFilters)
	require.NoError(t, err)

	assert.Equal(t, 2, detail.Stats.Games)
	matchRepo.AssertExpectations(t)
}

func TestGetMatchupDetailNoGames(t *testing.T) {
	service, matchRepo := newTestService(t)

	matchRepo.On("GetMatchupAggregate", mock.Anything, uint(1), "Zed", map[string]any{}).Return(nil, nil)

	_, err := service.GetMatchupDetail(context.Background(), 1, "Zed", map[string]any{})
	assert.ErrorIs(t, err, ErrNoMatchData)
}
