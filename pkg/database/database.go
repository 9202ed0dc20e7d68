package database

import (
	"fmt"
	"riftstats/pkg/database/models"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the connection pool against the configured Postgres.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDb, sqlErr := db.DB()
	if sqlErr != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", sqlErr)
	}

	// Set the pool values.
	sqlDb.SetMaxOpenConns(100)
	sqlDb.SetMaxIdleConns(10)
	sqlDb.SetConnMaxLifetime(time.Hour)
	sqlDb.SetConnMaxIdleTime(time.Hour)

	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table used by the application.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.PlayerInfo{},
		&models.MatchRecord{},
		&models.MasteryRecord{},
	); err != nil {
		return fmt.Errorf("couldn't run the migrations: %v", err)
	}

	return CreateCustomIndexes(db)
}

// CreateCustomIndexes creates any necessary custom index.
func CreateCustomIndexes(db *gorm.DB) error {
	// Matchup aggregation always groups by opponent within one player.
	matchupIndex := `
		CREATE INDEX IF NOT EXISTS idx_matchup_lookup ON match_records (
		  player_id,
		  opponent_champion
		) WHERE opponent_champion IS NOT NULL;`
	return db.Exec(matchupIndex).Error
}
