package repositories

import (
	"context"
	"riftstats/pkg/database/models"

	"gorm.io/gorm"
)

// MatchRepository is the write side interface used by the ingestion pipeline.
type MatchRepository interface {
	GetExistingMatchIds(ctx context.Context, playerId uint) (map[string]struct{}, error)
	CreateMatchRecords(ctx context.Context, records []*models.MatchRecord) error
}

// Match repository structure.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// GetExistingMatchIds loads every stored match id of a player as a set.
// One bulk query: players can have hundreds of matches and the pipeline
// checks each fetched id against the set.
func (mr *matchRepository) GetExistingMatchIds(ctx context.Context, playerId uint) (map[string]struct{}, error) {
	var matchIds []string
	err := mr.db.WithContext(ctx).
		Model(&models.MatchRecord{}).
		Where("player_id = ?", playerId).
		Pluck("match_id", &matchIds).Error
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(matchIds))
	for _, matchId := range matchIds {
		existing[matchId] = struct{}{}
	}
	return existing, nil
}

// CreateMatchRecords inserts the staged batch in a single transaction.
// No ON CONFLICT clause on purpose: a duplicate insert means another writer
// raced the per player lock, and the whole batch must roll back instead of
// silently skipping rows.
func (mr *matchRepository) CreateMatchRecords(ctx context.Context, records []*models.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	return mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}
