package jobs

import (
	"context"
	"fmt"
	"log"
	"riftstats/pkg/config"
	"riftstats/pkg/redis"
)

// RevalidateChampionCache drops the mirrored Data Dragon champion table so
// the next resolver load fetches the newest patch data.
func RevalidateChampionCache(cfg *config.Config) error {
	log.Println("Starting champion cache revalidation")

	ctx := context.Background()
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer redisClient.Close()

	if err := redisClient.Delete(ctx, "ddragon:champions"); err != nil {
		log.Printf("Error revalidating champion cache: %v", err)
		return err
	}

	log.Println("Champion cache revalidation completed successfully")
	return nil
}
