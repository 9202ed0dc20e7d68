package main

import (
	"log"
	"os"
	"os/signal"
	"riftstats/pkg/config"
	"riftstats/pkg/database"
	"riftstats/scheduler/jobs"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the tracked player refresh job - every thirty minutes.
	_, err = s.NewJob(
		gocron.DurationJob(
			30*time.Minute,
		),
		gocron.NewTask(
			jobs.RefreshTrackedPlayers,
			cfg,
		),
		gocron.WithName("tracked-player-refresh"),
		gocron.WithTags("refresh"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create refresh job: %v", err)
	}

	// Register champion cache revalidation job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.RevalidateChampionCache,
			cfg,
		),
		gocron.WithName("cache-revalidation"),
		gocron.WithTags("cache"),
	)
	if err != nil {
		log.Fatalf("Failed to create cache job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		if err := s.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down scheduler.")
}
