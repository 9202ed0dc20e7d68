package repositories

import (
	"context"

	"gorm.io/gorm"
)

// LocalChampionStats is the champion aggregate over every stored match.
type LocalChampionStats struct {
	Champion string
	Role     string
	Games    int
	WinRate  float64
}

// ChampionStatsRepository aggregates champion performance across every
// tracked player. It backs the fallback path when the stats site is down.
type ChampionStatsRepository interface {
	GetLocalChampionStats(ctx context.Context, champion string, role string) (*LocalChampionStats, error)
}

// Champion stats repository structure.
type championStatsRepository struct {
	db *gorm.DB
}

// NewChampionStatsRepository creates a champion stats repository.
func NewChampionStatsRepository(db *gorm.DB) ChampionStatsRepository {
	return &championStatsRepository{db: db}
}

// GetLocalChampionStats computes the win rate of a champion over the local
// match pool. Nil when no games are stored for it.
func (cr *championStatsRepository) GetLocalChampionStats(ctx context.Context, champion string, role string) (*LocalChampionStats, error) {
	var result LocalChampionStats

	query := `
	SELECT
		champion,
		COUNT(*) AS games,
		AVG(win::int) * 100 AS win_rate
	FROM
		match_records
	WHERE
		champion = ?
	`
	args := []any{champion}

	if role != "" {
		query += " AND role = ?"
		args = append(args, role)
	}
	query += " GROUP BY champion"

	err := cr.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	if result.Games == 0 {
		return nil, nil
	}

	result.Role = role
	return &result, nil
}
