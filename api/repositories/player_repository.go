package repositories

import (
	"context"
	"riftstats/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerReadRepository is the read side interface over tracked players.
type PlayerReadRepository interface {
	GetById(ctx context.Context, playerId uint) (*models.PlayerInfo, error)
	GetByNameTag(ctx context.Context, gameName string, tagLine string, region string) (*models.PlayerInfo, error)
}

// Player read repository structure.
type playerReadRepository struct {
	db *gorm.DB
}

// NewPlayerReadRepository creates a player read repository.
func NewPlayerReadRepository(db *gorm.DB) PlayerReadRepository {
	return &playerReadRepository{db: db}
}

// GetById returns the player with the given id, if any.
func (pr *playerReadRepository) GetById(ctx context.Context, playerId uint) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	err := pr.db.WithContext(ctx).First(&player, playerId).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByNameTag returns the player with the given riot id, if any.
// The riot id is case insensitive on the Riot side, so the lookup is too.
func (pr *playerReadRepository) GetByNameTag(ctx context.Context, gameName string, tagLine string, region string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	err := pr.db.WithContext(ctx).
		Where("LOWER(riot_id_game_name) = LOWER(?) AND LOWER(riot_id_tagline) = LOWER(?) AND region = ?",
			gameName, tagLine, region).
		First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}
