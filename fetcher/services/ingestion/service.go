package ingestion

import (
	"context"
	"errors"
	"fmt"
	"riftstats/fetcher/data/riot"
	"riftstats/fetcher/repositories"
	"riftstats/pkg/database/models"
	"riftstats/pkg/logger"
	"riftstats/pkg/messages"
	"riftstats/pkg/redis"
	"sync"
	"time"
)

const (
	// matchHistoryCount is how many recent match ids are requested per refresh.
	matchHistoryCount = 100

	// lockTTL caps how long a stuck refresh can keep a player locked.
	lockTTL = 5 * time.Minute
)

// ErrIngestionInProgress means another refresh currently holds the player lock.
var ErrIngestionInProgress = errors.New(messages.IngestionInProgress)

// RiotApi is the slice of the Riot client the pipeline consumes.
type RiotApi interface {
	GetMatchHistory(ctx context.Context, puuid string, count int, start int) ([]string, error)
	GetMatchData(ctx context.Context, matchId string) (*riot.MatchData, error)
}

// Locker serializes refreshes per player across processes.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// ServiceDeps holds the dependencies for the ingestion service.
type ServiceDeps struct {
	Riot       RiotApi
	MatchRepo  repositories.MatchRepository
	PlayerRepo repositories.PlayerRepository
	Locker     Locker
	Log        *logger.Logger
}

// Service runs the incremental match ingestion pipeline.
type Service struct {
	riot       RiotApi
	matchRepo  repositories.MatchRepository
	playerRepo repositories.PlayerRepository
	locker     Locker
	log        *logger.Logger
}

// NewService creates the ingestion service.
func NewService(deps ServiceDeps) *Service {
	return &Service{
		riot:       deps.Riot,
		matchRepo:  deps.MatchRepo,
		playerRepo: deps.PlayerRepo,
		locker:     deps.Locker,
		log:        deps.Log,
	}
}

// IngestMatches pulls the player's recent match history and stores the
// matches that aren't in the database yet. The history comes newest first,
// so the walk stops at the first already known id. Returns how many new
// matches were stored.
//
// Running it twice in a row is a no-op: the second run finds the newest id
// already stored and inserts nothing.
func (s *Service) IngestMatches(ctx context.Context, player *models.PlayerInfo) (int, error) {
	lockKey := fmt.Sprintf("ingest:lock:%d", player.ID)
	acquired, err := s.locker.Acquire(ctx, lockKey, lockTTL)
	if err != nil {
		return 0, fmt.Errorf("couldn't acquire the ingestion lock: %w", err)
	}
	if !acquired {
		return 0, ErrIngestionInProgress
	}
	defer s.locker.Release(ctx, lockKey)

	matchIds, err := s.riot.GetMatchHistory(ctx, player.Puuid, matchHistoryCount, 0)
	if err != nil {
		return 0, fmt.Errorf("couldn't fetch the match history: %w", err)
	}

	existing, err := s.matchRepo.GetExistingMatchIds(ctx, player.ID)
	if err != nil {
		return 0, fmt.Errorf("couldn't load the existing match ids: %w", err)
	}

	records := s.collectNewMatches(ctx, player, matchIds, existing)
	if len(records) > 0 {
		if err := s.matchRepo.CreateMatchRecords(ctx, records); err != nil {
			s.log.Errorf("Couldn't store the match batch for player %d: %v", player.ID, err)
			return 0, fmt.Errorf("couldn't store the match batch: %w", err)
		}
	}

	// An empty walk is still a completed refresh. The timestamp moves either
	// way, so an inactive player doesn't get re-fetched every staleness check.
	if err := s.playerRepo.SetLastUpdated(ctx, player.ID); err != nil {
		s.log.Errorf("Couldn't bump last updated for player %d: %v", player.ID, err)
	}

	return len(records), nil
}

// collectNewMatches fetches and normalizes every id up to the first known one.
// Unavailable or malformed matches are logged and skipped without stopping
// the walk, so a single bad payload can't block newer matches forever.
func (s *Service) collectNewMatches(
	ctx context.Context,
	player *models.PlayerInfo,
	matchIds []string,
	existing map[string]struct{},
) []*models.MatchRecord {
	var records []*models.MatchRecord

	for _, matchId := range matchIds {
		if _, known := existing[matchId]; known {
			break
		}

		match, err := s.riot.GetMatchData(ctx, matchId)
		if err != nil {
			if errors.Is(err, riot.ErrNotFound) || errors.Is(err, riot.ErrForbidden) {
				s.log.Infof("Match %s unavailable, skipping: %v", matchId, err)
				continue
			}
			s.log.Errorf("Couldn't fetch match %s: %v", matchId, err)
			continue
		}

		record, err := NormalizeMatch(match, player.Puuid, matchId, player.ID)
		if err != nil {
			s.log.Infof("Match %s can't be normalized, skipping: %v", matchId, err)
			continue
		}

		records = append(records, record)
	}

	return records
}

// RedisLocker implements Locker on top of redis SET NX.
type RedisLocker struct {
	redis *redis.RedisClient
}

// NewRedisLocker creates the redis backed locker.
func NewRedisLocker(redis *redis.RedisClient) *RedisLocker {
	return &RedisLocker{redis: redis}
}

// Acquire takes the lock if nobody holds it.
func (rl *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return rl.redis.SetNX(ctx, key, "1", ttl).Result()
}

// Release drops the lock.
func (rl *RedisLocker) Release(ctx context.Context, key string) error {
	return rl.redis.Delete(ctx, key)
}

// LocalLocker implements Locker inside a single process. It covers the
// cacheless mode, where redis isn't there to coordinate.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
}

// NewLocalLocker creates the in process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]time.Time)}
}

// Acquire takes the lock if nobody holds it or the previous hold expired.
func (ll *LocalLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if expiry, exists := ll.held[key]; exists && time.Now().Before(expiry) {
		return false, nil
	}
	ll.held[key] = time.Now().Add(ttl)
	return true, nil
}

// Release drops the lock.
func (ll *LocalLocker) Release(ctx context.Context, key string) error {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	delete(ll.held, key)
	return nil
}
