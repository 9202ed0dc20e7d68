package champion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"riftstats/api/cache"
	"riftstats/api/dto"
	"riftstats/api/repositories"
	"riftstats/fetcher/data/statssite"
	"riftstats/pkg/config"
	"time"
)

const (
	// recommendationMinPoints is the mastery floor before a champion is
	// comfortable enough to recommend.
	recommendationMinPoints = 10000

	// maxRecommendations caps the suggestion list.
	maxRecommendations = 5

	// statsCacheTTL is how long scraped ladder stats stay cached. The site
	// updates daily, so hours of staleness are fine.
	statsCacheTTL = 6 * time.Hour
)

// ErrNoStatsAvailable means neither the stats site nor the local match pool
// has data for the champion.
var ErrNoStatsAvailable = errors.New("no stats available for this champion")

// ChampionServiceDeps holds the dependencies for the champion service.
type ChampionServiceDeps struct {
	MasteryRepo repositories.MasteryReadRepository
	StatsRepo   repositories.ChampionStatsRepository
	Stats       statssite.Provider

	Cache    *cache.Cache
	CacheCfg config.CacheConfiguration
}

// ChampionService serves champion recommendations and ladder statistics.
type ChampionService struct {
	masteryRepo repositories.MasteryReadRepository
	statsRepo   repositories.ChampionStatsRepository
	stats       statssite.Provider

	cache    *cache.Cache
	cacheCfg config.CacheConfiguration
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	return &ChampionService{
		masteryRepo: deps.MasteryRepo,
		statsRepo:   deps.StatsRepo,
		stats:       deps.Stats,
		cache:       deps.Cache,
		cacheCfg:    deps.CacheCfg,
	}
}

// GetRecommendations suggests champions for the player based on mastery:
// the five highest point champions above the comfort floor.
func (cs *ChampionService) GetRecommendations(ctx context.Context, playerId uint) ([]*dto.Recommendation, error) {
	key := fmt.Sprintf("recommend:%d", playerId)

	return cache.GetOrCompute(ctx, cs.cache, key, cs.cacheCfg.MasteryTTL, func(ctx context.Context) ([]*dto.Recommendation, error) {
		masteries, err := cs.masteryRepo.GetTopByPoints(ctx, playerId, recommendationMinPoints, maxRecommendations)
		if err != nil {
			return nil, err
		}

		recommendations := make([]*dto.Recommendation, len(masteries))
		for index, mastery := range masteries {
			recommendations[index] = &dto.Recommendation{
				ChampionId:   mastery.ChampionId,
				ChampionName: mastery.ChampionName,
				Points:       mastery.Points,
				Level:        mastery.Level,
				Reason:       fmt.Sprintf("mastery level %d with %d points", mastery.Level, mastery.Points),
			}
		}
		return recommendations, nil
	})
}

// GetChampionOverview returns the ladder stats of a champion. The stats site
// is the primary source; when it's unavailable the local match pool takes
// over with win rate only.
func (cs *ChampionService) GetChampionOverview(ctx context.Context, champion string, role string) (*dto.ChampionOverview, error) {
	key := fmt.Sprintf("champion:stats:%s:%s", champion, role)

	return cache.GetOrCompute(ctx, cs.cache, key, statsCacheTTL, func(ctx context.Context) (*dto.ChampionOverview, error) {
		scraped, err := cs.stats.GetChampionStats(ctx, champion, role)
		if err == nil {
			return &dto.ChampionOverview{
				Champion: scraped.Champion,
				Role:     scraped.Role,
				WinRate:  scraped.WinRate,
				PickRate: scraped.PickRate,
				BanRate:  scraped.BanRate,
				Source:   "statssite",
			}, nil
		}
		if !errors.Is(err, statssite.ErrStatsUnavailable) {
			return nil, err
		}

		local, err := cs.statsRepo.GetLocalChampionStats(ctx, champion, role)
		if err != nil {
			return nil, err
		}
		if local == nil {
			return nil, ErrNoStatsAvailable
		}

		return &dto.ChampionOverview{
			Champion: local.Champion,
			Role:     local.Role,
			WinRate:  math.Round(local.WinRate*10) / 10,
			Source:   "local",
		}, nil
	})
}

// GetCounters returns the champions that beat the given one, scraped from
// the stats site. There is no local fallback: counter data needs a sample
// size the local pool can't provide.
func (cs *ChampionService) GetCounters(ctx context.Context, champion string) ([]statssite.CounterStats, error) {
	key := fmt.Sprintf("champion:counters:%s", champion)

	return cache.GetOrCompute(ctx, cs.cache, key, statsCacheTTL, func(ctx context.Context) ([]statssite.CounterStats, error) {
		return cs.stats.GetCounters(ctx, champion)
	})
}
