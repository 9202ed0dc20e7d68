package matchup

import (
	"context"
	"errors"
	"fmt"
	"math"
	"riftstats/api/cache"
	"riftstats/api/dto"
	"riftstats/api/repositories"
	"riftstats/pkg/messages"
	"sort"
	"strings"
	"time"
)

const (
	// MinSampleSize is the minimum games against an opponent before the
	// matchup counts as statistically meaningful.
	MinSampleSize = 3

	// difficultWinRateCeiling marks a matchup as difficult strictly below it.
	// A 50% matchup is even, not difficult.
	difficultWinRateCeiling = 50.0

	// maxDifficultMatchups caps the listing size.
	maxDifficultMatchups = 10

	// recentMatchesLimit caps the detail view match listing.
	recentMatchesLimit = 10
)

// ErrNoMatchData means the player has no stored matches to aggregate.
var ErrNoMatchData = errors.New(messages.NoMatchData)

// MatchupServiceDeps holds the dependencies for the matchup service.
type MatchupServiceDeps struct {
	MatchRepo repositories.MatchReadRepository
	Cache     *cache.Cache
	CacheTTL  time.Duration
}

// MatchupService serves the difficult matchup listing and the per opponent
// detail view.
type MatchupService struct {
	matchRepo repositories.MatchReadRepository
	cache     *cache.Cache
	cacheTTL  time.Duration
}

// NewMatchupService creates a matchup service.
func NewMatchupService(deps *MatchupServiceDeps) *MatchupService {
	return &MatchupService{
		matchRepo: deps.MatchRepo,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
	}
}

// GetDifficultMatchups lists the opponents the player loses to the most.
// Only matchups with at least MinSampleSize games and a win rate strictly
// under 50% qualify; the worst ten are returned, lowest win rate first and
// ties broken by more games played.
func (ms *MatchupService) GetDifficultMatchups(ctx context.Context, playerId uint, filters map[string]any) (*dto.MatchupList, error) {
	key := filterCacheKey(fmt.Sprintf("matchup:%d:difficult", playerId), filters)

	return cache.GetOrCompute(ctx, ms.cache, key, ms.cacheTTL, func(ctx context.Context) (*dto.MatchupList, error) {
		return ms.computeDifficultMatchups(ctx, playerId, filters)
	})
}

func (ms *MatchupService) computeDifficultMatchups(ctx context.Context, playerId uint, filters map[string]any) (*dto.MatchupList, error) {
	total, err := ms.matchRepo.CountByPlayer(ctx, playerId)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoMatchData
	}

	aggregates, err := ms.matchRepo.GetMatchupAggregates(ctx, playerId, MinSampleSize, filters)
	if err != nil {
		return nil, err
	}

	matchups := make([]*dto.DifficultMatchup, 0, maxDifficultMatchups)
	for _, aggregate := range aggregates {
		if aggregate.Games < MinSampleSize || aggregate.WinRate >= difficultWinRateCeiling {
			continue
		}

		matchups = append(matchups, toDifficultMatchup(aggregate))
		if len(matchups) == maxDifficultMatchups {
			break
		}
	}

	result := &dto.MatchupList{Matchups: matchups}
	if len(matchups) == 0 {
		result.Reason = fmt.Sprintf(
			"no opponents with at least %d games below a %.0f%% win rate", MinSampleSize, difficultWinRateCeiling)
	}
	return result, nil
}

// GetMatchupDetail is the deep dive against one opponent, optionally narrowed
// by role and game mode. The minimum sample size doesn't apply here: even a
// single game is worth showing.
func (ms *MatchupService) GetMatchupDetail(ctx context.Context, playerId uint, opponent string, filters map[string]any) (*dto.MatchupDetail, error) {
	key := filterCacheKey(fmt.Sprintf("matchup:%d:detail:%s", playerId, opponent), filters)

	return cache.GetOrCompute(ctx, ms.cache, key, ms.cacheTTL, func(ctx context.Context) (*dto.MatchupDetail, error) {
		return ms.computeMatchupDetail(ctx, playerId, opponent, filters)
	})
}

func (ms *MatchupService) computeMatchupDetail(ctx context.Context, playerId uint, opponent string, filters map[string]any) (*dto.MatchupDetail, error) {
	aggregate, err := ms.matchRepo.GetMatchupAggregate(ctx, playerId, opponent, filters)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, ErrNoMatchData
	}

	roles, err := ms.matchRepo.GetRoleDistribution(ctx, playerId, opponent, filters)
	if err != nil {
		return nil, err
	}

	modes, err := ms.matchRepo.GetModeDistribution(ctx, playerId, opponent, filters)
	if err != nil {
		return nil, err
	}

	recent, err := ms.matchRepo.GetRecentMatchesVsOpponent(ctx, playerId, opponent, filters, recentMatchesLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.MatchSummary, len(recent))
	for index, match := range recent {
		summaries[index] = &dto.MatchSummary{
			MatchId:          match.MatchId,
			Champion:         match.Champion,
			OpponentChampion: match.OpponentChampion,
			Role:             match.Role,
			Win:              match.Win,
			GameMode:         match.GameMode,
			DurationMinutes:  round1(match.DurationMinutes),
			Kills:            match.Kills,
			Deaths:           match.Deaths,
			Assists:          match.Assists,
			PlayedAt:         match.PlayedAt.Format(time.RFC3339),
		}
	}

	return &dto.MatchupDetail{
		Stats:            toDifficultMatchup(aggregate),
		RoleDistribution: roles,
		ModeDistribution: modes,
		RecentMatches:    summaries,
	}, nil
}

// toDifficultMatchup converts an aggregate row into the response shape.
// One decimal everywhere except gold and damage per minute, which are large
// enough that decimals are noise.
func toDifficultMatchup(aggregate *repositories.MatchupAggregate) *dto.DifficultMatchup {
	return &dto.DifficultMatchup{
		OpponentChampion: aggregate.OpponentChampion,
		Games:            aggregate.Games,
		Wins:             aggregate.Wins,
		Losses:           aggregate.Games - aggregate.Wins,
		WinRate:          round1(aggregate.WinRate),

		AvgKills:   round1(aggregate.AvgKills),
		AvgDeaths:  round1(aggregate.AvgDeaths),
		AvgAssists: round1(aggregate.AvgAssists),

		AvgCsPerMin:          round1(aggregate.AvgCsPerMin),
		AvgGoldPerMin:        math.Round(aggregate.AvgGoldPerMin),
		AvgDamagePerMin:      math.Round(aggregate.AvgDamagePerMin),
		AvgKillParticipation: round1(aggregate.AvgKillParticipation * 100),
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// filterCacheKey builds a deterministic key from a base and the filters.
func filterCacheKey(base string, filters map[string]any) string {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString(base)
	for _, key := range keys {
		fmt.Fprintf(&builder, ":%s=%v", key, filters[key])
	}
	return builder.String()
}
