package repositories

import (
	"context"
	"riftstats/pkg/database/models"
	"time"

	"gorm.io/gorm"
)

// MasteryReadRepository is the read side interface over mastery snapshots.
type MasteryReadRepository interface {
	GetByPlayer(ctx context.Context, playerId uint) ([]*models.MasteryRecord, error)
	GetTopByPoints(ctx context.Context, playerId uint, minPoints int, limit int) ([]*models.MasteryRecord, error)
	LastRefreshedAt(ctx context.Context, playerId uint) (*time.Time, error)
}

// Mastery read repository structure.
type masteryReadRepository struct {
	db *gorm.DB
}

// NewMasteryReadRepository creates a mastery read repository.
func NewMasteryReadRepository(db *gorm.DB) MasteryReadRepository {
	return &masteryReadRepository{db: db}
}

// GetByPlayer lists the mastery rows of a player, most points first.
func (mr *masteryReadRepository) GetByPlayer(ctx context.Context, playerId uint) ([]*models.MasteryRecord, error) {
	var masteries []*models.MasteryRecord
	err := mr.db.WithContext(ctx).
		Where("player_id = ?", playerId).
		Order("points DESC").
		Find(&masteries).Error
	if err != nil {
		return nil, err
	}
	return masteries, nil
}

// GetTopByPoints lists the highest point champions above a floor.
func (mr *masteryReadRepository) GetTopByPoints(ctx context.Context, playerId uint, minPoints int, limit int) ([]*models.MasteryRecord, error) {
	var masteries []*models.MasteryRecord
	err := mr.db.WithContext(ctx).
		Where("player_id = ? AND points >= ?", playerId, minPoints).
		Order("points DESC").
		Limit(limit).
		Find(&masteries).Error
	if err != nil {
		return nil, err
	}
	return masteries, nil
}

// LastRefreshedAt returns the newest mastery update time of a player.
// Nil when the player has no mastery rows yet.
func (mr *masteryReadRepository) LastRefreshedAt(ctx context.Context, playerId uint) (*time.Time, error) {
	var newest models.MasteryRecord
	err := mr.db.WithContext(ctx).
		Where("player_id = ?", playerId).
		Order("updated_at DESC").
		First(&newest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &newest.UpdatedAt, nil
}
