package repositories

import (
	"context"
	"riftstats/pkg/database/models"
	"time"

	"gorm.io/gorm"
)

// PlayerRepository is the write side interface for the player entity.
type PlayerRepository interface {
	GetPlayerByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error)
	CreatePlayer(ctx context.Context, player *models.PlayerInfo) error
	SetLastUpdated(ctx context.Context, playerId uint) error
	GetTrackedPlayers(ctx context.Context) ([]*models.PlayerInfo, error)
	HasRecentMatchData(ctx context.Context, playerId uint, since time.Duration) (bool, error)
}

// Player repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// GetPlayerByPuuid returns the player with the given puuid, if any.
func (pr *playerRepository) GetPlayerByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	err := pr.db.WithContext(ctx).Where("puuid = ?", puuid).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// CreatePlayer inserts a new tracked player.
func (pr *playerRepository) CreatePlayer(ctx context.Context, player *models.PlayerInfo) error {
	return pr.db.WithContext(ctx).Create(player).Error
}

// SetLastUpdated bumps the refresh timestamp of a player.
func (pr *playerRepository) SetLastUpdated(ctx context.Context, playerId uint) error {
	return pr.db.WithContext(ctx).
		Model(&models.PlayerInfo{}).
		Where("id = ?", playerId).
		Update("last_updated", time.Now()).Error
}

// GetTrackedPlayers lists every registered player, oldest refresh first.
// Used by the scheduler to decide who to refresh next.
func (pr *playerRepository) GetTrackedPlayers(ctx context.Context) ([]*models.PlayerInfo, error) {
	var players []*models.PlayerInfo
	err := pr.db.WithContext(ctx).
		Order("last_updated ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// HasRecentMatchData checks if any match row was ingested within the window.
func (pr *playerRepository) HasRecentMatchData(ctx context.Context, playerId uint, since time.Duration) (bool, error) {
	var count int64
	err := pr.db.WithContext(ctx).
		Model(&models.MatchRecord{}).
		Where("player_id = ? AND created_at >= ?", playerId, time.Now().Add(-since)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
