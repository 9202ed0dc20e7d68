package player

import (
	"context"
	"errors"
	"fmt"
	"math"
	"riftstats/api/cache"
	"riftstats/api/dto"
	"riftstats/api/repositories"
	"riftstats/fetcher/data/riot"
	fetcherrepositories "riftstats/fetcher/repositories"
	ingestionservice "riftstats/fetcher/services/ingestion"
	"riftstats/pkg/config"
	"riftstats/pkg/database/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	// historyStaleAfter is how long stored matches count as fresh before a
	// history request triggers a new ingestion run.
	historyStaleAfter = time.Hour

	// masteryStaleAfter is how long mastery snapshots count as fresh.
	masteryStaleAfter = 48 * time.Hour
)

// ErrPlayerNotFound means the riot id doesn't resolve to any account.
var ErrPlayerNotFound = errors.New("player not found")

// AccountApi is the slice of the Riot client the player service consumes.
type AccountApi interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*riot.Account, error)
	GetRankedEntries(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
}

// Ingestor pulls new matches for a player.
type Ingestor interface {
	IngestMatches(ctx context.Context, player *models.PlayerInfo) (int, error)
}

// MasteryRefresher pulls the mastery snapshot of a player.
type MasteryRefresher interface {
	RefreshMastery(ctx context.Context, player *models.PlayerInfo) (int, error)
}

// PlayerServiceDeps holds the dependencies for the player service.
type PlayerServiceDeps struct {
	PlayerRepo      repositories.PlayerReadRepository
	PlayerWriteRepo fetcherrepositories.PlayerRepository
	MatchRepo       repositories.MatchReadRepository
	MasteryRepo     repositories.MasteryReadRepository

	Accounts         AccountApi
	Ingestor         Ingestor
	MasteryRefresher MasteryRefresher

	Cache    *cache.Cache
	CacheCfg config.CacheConfiguration
}

// PlayerService registers tracked players and serves their match history
// and masteries, refreshing stale data on demand.
type PlayerService struct {
	playerRepo      repositories.PlayerReadRepository
	playerWriteRepo fetcherrepositories.PlayerRepository
	matchRepo       repositories.MatchReadRepository
	masteryRepo     repositories.MasteryReadRepository

	accounts         AccountApi
	ingestor         Ingestor
	masteryRefresher MasteryRefresher

	cache    *cache.Cache
	cacheCfg config.CacheConfiguration
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		playerRepo:       deps.PlayerRepo,
		playerWriteRepo:  deps.PlayerWriteRepo,
		matchRepo:        deps.MatchRepo,
		masteryRepo:      deps.MasteryRepo,
		accounts:         deps.Accounts,
		ingestor:         deps.Ingestor,
		masteryRefresher: deps.MasteryRefresher,
		cache:            deps.Cache,
		cacheCfg:         deps.CacheCfg,
	}
}

// RegisterPlayer resolves a riot id and starts tracking the player.
// Registering an already tracked player just returns it.
func (ps *PlayerService) RegisterPlayer(ctx context.Context, gameName string, tagLine string, region string) (*dto.PlayerSummary, error) {
	region = strings.ToUpper(strings.TrimSpace(region))

	existing, err := ps.playerRepo.GetByNameTag(ctx, gameName, tagLine, region)
	if err == nil {
		return toSummary(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account, err := ps.accounts.GetAccountByRiotId(ctx, gameName, tagLine)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("couldn't resolve the riot id: %w", err)
	}

	player := &models.PlayerInfo{
		RiotIdGameName: account.GameName,
		RiotIdTagline:  account.TagLine,
		Region:         region,
		Puuid:          account.Puuid,
	}
	if err := ps.playerWriteRepo.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("couldn't create the player: %w", err)
	}

	// Seed the data right away. Failures here aren't fatal: the first
	// history request retries the ingestion.
	if _, err := ps.ingestor.IngestMatches(ctx, player); err == nil {
		ps.masteryRefresher.RefreshMastery(ctx, player)
	}

	return toSummary(player), nil
}

// GetMatchHistory lists the newest stored matches of a player. When the data
// is older than an hour a new ingestion run happens first.
func (ps *PlayerService) GetMatchHistory(ctx context.Context, playerId uint, filters map[string]any) (*dto.MatchHistory, error) {
	player, err := ps.getPlayer(ctx, playerId)
	if err != nil {
		return nil, err
	}

	refreshed := false
	if time.Since(player.LastUpdated) > historyStaleAfter {
		if _, err := ps.ingestor.IngestMatches(ctx, player); err == nil {
			refreshed = true
			ps.invalidatePlayer(ctx, playerId)
		} else if !errors.Is(err, ingestionservice.ErrIngestionInProgress) {
			return nil, err
		}
		// Another request is already refreshing: serve what's stored.
	}

	queueId, _ := filters["queue"].(int)
	limit, _ := filters["limit"].(int)
	offset, _ := filters["offset"].(int)

	key := fmt.Sprintf("history:%d:%d:%d:%d", playerId, queueId, limit, offset)
	matches, err := cache.GetOrCompute(ctx, ps.cache, key, ps.cacheCfg.MatchHistoryTTL, func(ctx context.Context) ([]*dto.MatchSummary, error) {
		records, err := ps.matchRepo.GetMatchHistory(ctx, playerId, queueId, limit, offset)
		if err != nil {
			return nil, err
		}

		summaries := make([]*dto.MatchSummary, len(records))
		for index, record := range records {
			summaries[index] = toMatchSummary(record)
		}
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MatchHistory{
		Player:    toSummary(player),
		Matches:   matches,
		Refreshed: refreshed,
	}, nil
}

// GetMasteries lists the champion masteries of a player, refreshing the
// snapshot when it's older than two days or missing entirely.
func (ps *PlayerService) GetMasteries(ctx context.Context, playerId uint) (*dto.MasteryList, error) {
	player, err := ps.getPlayer(ctx, playerId)
	if err != nil {
		return nil, err
	}

	lastRefresh, err := ps.masteryRepo.LastRefreshedAt(ctx, playerId)
	if err != nil {
		return nil, err
	}
	if lastRefresh == nil || time.Since(*lastRefresh) > masteryStaleAfter {
		if _, err := ps.masteryRefresher.RefreshMastery(ctx, player); err == nil {
			ps.cache.InvalidatePrefix(ctx, fmt.Sprintf("mastery:%d:", playerId))
		}
		// Refresh failures fall back to whatever snapshot exists.
	}

	key := fmt.Sprintf("mastery:%d:list", playerId)
	masteries, err := cache.GetOrCompute(ctx, ps.cache, key, ps.cacheCfg.MasteryTTL, func(ctx context.Context) ([]*dto.MasteryEntry, error) {
		records, err := ps.masteryRepo.GetByPlayer(ctx, playerId)
		if err != nil {
			return nil, err
		}

		entries := make([]*dto.MasteryEntry, len(records))
		for index, record := range records {
			entry := &dto.MasteryEntry{
				ChampionId:   record.ChampionId,
				ChampionName: record.ChampionName,
				Level:        record.Level,
				Points:       record.Points,
			}
			if record.LastPlayed != nil {
				entry.LastPlayed = record.LastPlayed.Format(time.RFC3339)
			}
			entries[index] = entry
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MasteryList{
		Player:    toSummary(player),
		Masteries: masteries,
	}, nil
}

// RefreshPlayer forces a full data refresh and drops the cached views.
// Returns how many new matches were stored.
func (ps *PlayerService) RefreshPlayer(ctx context.Context, playerId uint) (int, error) {
	player, err := ps.getPlayer(ctx, playerId)
	if err != nil {
		return 0, err
	}

	inserted, err := ps.ingestor.IngestMatches(ctx, player)
	if err != nil {
		return 0, err
	}
	ps.masteryRefresher.RefreshMastery(ctx, player)

	ps.invalidatePlayer(ctx, playerId)
	return inserted, nil
}

// GetRankedStats lists the current ranked standings of a player, straight
// from the Riot API behind a short cache.
func (ps *PlayerService) GetRankedStats(ctx context.Context, playerId uint) (*dto.RankedList, error) {
	player, err := ps.getPlayer(ctx, playerId)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("ranked:%d", playerId)
	entries, err := cache.GetOrCompute(ctx, ps.cache, key, ps.cacheCfg.MatchHistoryTTL, func(ctx context.Context) ([]*dto.RankedQueue, error) {
		leagues, err := ps.accounts.GetRankedEntries(ctx, player.Puuid)
		if err != nil {
			return nil, err
		}

		queues := make([]*dto.RankedQueue, len(leagues))
		for index, league := range leagues {
			queue := &dto.RankedQueue{
				Queue:        league.QueueType,
				Tier:         league.Tier,
				Rank:         league.Rank,
				LeaguePoints: league.LeaguePoints,
				Wins:         league.Wins,
				Losses:       league.Losses,
			}
			if total := league.Wins + league.Losses; total > 0 {
				queue.WinRate = math.Round(float64(league.Wins)/float64(total)*1000) / 10
			}
			queues[index] = queue
		}
		return queues, nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RankedList{
		Player:  toSummary(player),
		Entries: entries,
	}, nil
}

func (ps *PlayerService) getPlayer(ctx context.Context, playerId uint) (*models.PlayerInfo, error) {
	player, err := ps.playerRepo.GetById(ctx, playerId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// invalidatePlayer drops every cached view derived from the player's matches.
// The prefixes end on the key separator, so clearing player 1 can't touch the
// keys of players 10 through 19.
func (ps *PlayerService) invalidatePlayer(ctx context.Context, playerId uint) {
	ps.cache.InvalidatePrefix(ctx, fmt.Sprintf("history:%d:", playerId))
	ps.cache.InvalidatePrefix(ctx, fmt.Sprintf("matchup:%d:", playerId))
	ps.cache.InvalidatePrefix(ctx, fmt.Sprintf("mastery:%d:", playerId))
}

func toSummary(player *models.PlayerInfo) *dto.PlayerSummary {
	return &dto.PlayerSummary{
		Id:          player.ID,
		GameName:    player.RiotIdGameName,
		TagLine:     player.RiotIdTagline,
		Region:      player.Region,
		LastUpdated: player.LastUpdated.Format(time.RFC3339),
	}
}

func toMatchSummary(record *models.MatchRecord) *dto.MatchSummary {
	return &dto.MatchSummary{
		MatchId:          record.MatchId,
		Champion:         record.Champion,
		OpponentChampion: record.OpponentChampion,
		Role:             record.Role,
		Win:              record.Win,
		GameMode:         record.GameMode,
		DurationMinutes:  record.DurationMinutes,
		Kills:            record.Kills,
		Deaths:           record.Deaths,
		Assists:          record.Assists,
		PlayedAt:         record.PlayedAt.Format(time.RFC3339),
	}
}
