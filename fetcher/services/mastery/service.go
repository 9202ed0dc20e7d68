package mastery

import (
	"context"
	"fmt"
	"riftstats/fetcher/data/riot"
	"riftstats/fetcher/repositories"
	"riftstats/pkg/database/models"
	"riftstats/pkg/logger"
	"time"
)

// MasteryApi is the slice of the Riot client the mastery refresh consumes.
type MasteryApi interface {
	GetChampionMastery(ctx context.Context, puuid string) ([]riot.MasteryEntry, error)
}

// NameResolver translates champion ids into display names.
type NameResolver interface {
	NameById(ctx context.Context, championId int) string
}

// ServiceDeps holds the dependencies for the mastery service.
type ServiceDeps struct {
	Riot        MasteryApi
	MasteryRepo repositories.MasteryRepository
	Resolver    NameResolver
	Log         *logger.Logger
}

// Service refreshes champion mastery snapshots for tracked players.
type Service struct {
	riot        MasteryApi
	masteryRepo repositories.MasteryRepository
	resolver    NameResolver
	log         *logger.Logger
}

// NewService creates the mastery service.
func NewService(deps ServiceDeps) *Service {
	return &Service{
		riot:        deps.Riot,
		masteryRepo: deps.MasteryRepo,
		resolver:    deps.Resolver,
		log:         deps.Log,
	}
}

// RefreshMastery pulls the full mastery list of a player and upserts it.
// Returns how many champion rows were written.
func (s *Service) RefreshMastery(ctx context.Context, player *models.PlayerInfo) (int, error) {
	entries, err := s.riot.GetChampionMastery(ctx, player.Puuid)
	if err != nil {
		return 0, fmt.Errorf("couldn't fetch the champion mastery: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	records := make([]*models.MasteryRecord, 0, len(entries))
	for _, entry := range entries {
		record := &models.MasteryRecord{
			PlayerId:     player.ID,
			ChampionId:   entry.ChampionId,
			ChampionName: s.resolver.NameById(ctx, entry.ChampionId),
			Level:        entry.ChampionLevel,
			Points:       entry.ChampionPoints,
		}

		if entry.LastPlayTime > 0 {
			lastPlayed := time.UnixMilli(entry.LastPlayTime)
			record.LastPlayed = &lastPlayed
		}

		records = append(records, record)
	}

	if err := s.masteryRepo.UpsertMasteries(ctx, records); err != nil {
		s.log.Errorf("Couldn't upsert the masteries for player %d: %v", player.ID, err)
		return 0, fmt.Errorf("couldn't upsert the masteries: %w", err)
	}

	return len(records), nil
}
