package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"riftstats/fetcher/assets"
	"riftstats/fetcher/data/riot"
	"riftstats/fetcher/repositories"
	ingestionservice "riftstats/fetcher/services/ingestion"
	masteryservice "riftstats/fetcher/services/mastery"
	"riftstats/pkg/config"
	"riftstats/pkg/database"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"
	"time"
)

// RefreshTrackedPlayers walks every tracked player, oldest refresh first,
// and pulls their new matches and mastery snapshot. The Riot client's rate
// limiter paces the walk, so a big player pool just takes longer.
func RefreshTrackedPlayers(cfg *config.Config) error {
	log.Println("Starting tracked player refresh")

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	ctx := context.Background()

	jobLogger, err := logger.NewLogger(cfg.Bucket)
	if err != nil {
		return fmt.Errorf("couldn't create the job logger: %w", err)
	}

	var locker ingestionservice.Locker = ingestionservice.NewLocalLocker()
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, refreshing without the shared lock: %v", err)
		redisClient = nil
	} else {
		locker = ingestionservice.NewRedisLocker(redisClient)
		defer redisClient.Close()
	}

	riotClient := riot.NewClient(cfg.Riot, cfg.Limits, jobLogger)
	playerRepo := repositories.NewPlayerRepository(db)

	ingestion := ingestionservice.NewService(ingestionservice.ServiceDeps{
		Riot:       riotClient,
		MatchRepo:  repositories.NewMatchRepository(db),
		PlayerRepo: playerRepo,
		Locker:     locker,
		Log:        jobLogger,
	})

	mastery := masteryservice.NewService(masteryservice.ServiceDeps{
		Riot:        riotClient,
		MasteryRepo: repositories.NewMasteryRepository(db),
		Resolver:    assets.NewChampionResolver(redisClient),
		Log:         jobLogger,
	})

	players, err := playerRepo.GetTrackedPlayers(ctx)
	if err != nil {
		return fmt.Errorf("couldn't list the tracked players: %w", err)
	}

	for _, player := range players {
		inserted, err := ingestion.IngestMatches(ctx, player)
		if err != nil {
			if errors.Is(err, ingestionservice.ErrIngestionInProgress) {
				continue
			}
			jobLogger.Errorf("Refresh failed for player %d: %v", player.ID, err)
			continue
		}

		if _, err := mastery.RefreshMastery(ctx, player); err != nil {
			jobLogger.Errorf("Mastery refresh failed for player %d: %v", player.ID, err)
		}

		jobLogger.Infof("Refreshed player %d: %d new matches", player.ID, inserted)
	}

	// Ship the run log and reset the file for the next run.
	if cfg.Bucket.LogBucket != "" {
		objectKey := fmt.Sprintf("scheduler/refresh-%s.log", time.Now().UTC().Format("2006-01-02T15-04-05"))
		if err := jobLogger.UploadToS3Bucket(ctx, objectKey); err != nil {
			log.Printf("Error uploading the run log: %v", err)
		}
	}
	jobLogger.CleanFile()

	log.Printf("Tracked player refresh completed for %d players", len(players))
	return nil
}
