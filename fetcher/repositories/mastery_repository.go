package repositories

import (
	"context"
	"riftstats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MasteryRepository is the write side interface for mastery snapshots.
type MasteryRepository interface {
	UpsertMasteries(ctx context.Context, masteries []*models.MasteryRecord) error
}

// Mastery repository structure.
type masteryRepository struct {
	db *gorm.DB
}

// NewMasteryRepository creates a mastery repository.
func NewMasteryRepository(db *gorm.DB) MasteryRepository {
	return &masteryRepository{db: db}
}

// UpsertMasteries creates or refreshes the mastery rows of a player.
// The (player_id, champion_id) pair is unique; refreshes overwrite the
// level, points and last played in place.
func (mr *masteryRepository) UpsertMasteries(ctx context.Context, masteries []*models.MasteryRecord) error {
	if len(masteries) == 0 {
		return nil
	}

	return mr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "champion_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"champion_name", "level", "points", "last_played", "updated_at",
		}),
	}).Create(&masteries).Error
}
