package repositories

import (
	"context"
	"riftstats/pkg/database/models"
	"strings"

	"gorm.io/gorm"
)

// MatchupAggregate is one opponent row of the aggregation query.
type MatchupAggregate struct {
	OpponentChampion string
	Games            int
	Wins             int
	WinRate          float64

	AvgKills   float64
	AvgDeaths  float64
	AvgAssists float64

	AvgCsPerMin          float64
	AvgGoldPerMin        float64
	AvgDamagePerMin      float64
	AvgKillParticipation float64
}

// MatchReadRepository is the read side interface over stored matches.
type MatchReadRepository interface {
	GetMatchupAggregates(ctx context.Context, playerId uint, minGames int, filters map[string]any) ([]*MatchupAggregate, error)
	GetMatchupAggregate(ctx context.Context, playerId uint, opponent string, filters map[string]any) (*MatchupAggregate, error)
	GetRoleDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error)
	GetModeDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error)
	GetRecentMatchesVsOpponent(ctx context.Context, playerId uint, opponent string, filters map[string]any, limit int) ([]*models.MatchRecord, error)
	GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]*models.MatchRecord, error)
	CountByPlayer(ctx context.Context, playerId uint) (int64, error)
}

// Match read repository structure.
type matchReadRepository struct {
	db *gorm.DB
}

// NewMatchReadRepository creates a match read repository.
func NewMatchReadRepository(db *gorm.DB) MatchReadRepository {
	return &matchReadRepository{db: db}
}

// GetMatchupAggregates groups the player's matches by lane opponent.
// Handle the query building and fetching. Matches without a resolved
// opponent never count, and opponents under minGames are cut in SQL.
func (mr *matchReadRepository) GetMatchupAggregates(ctx context.Context, playerId uint, minGames int, filters map[string]any) ([]*MatchupAggregate, error) {
	var results []*MatchupAggregate

	// Initialize query parts.
	whereConditions := []string{"player_id = ?", "opponent_champion IS NOT NULL"}
	args := []any{playerId}

	if queueId, ok := filters["queue"].(int); ok {
		whereConditions = append(whereConditions, "queue_id = ?")
		args = append(args, queueId)
	}

	if champion, ok := filters["champion"].(string); ok {
		whereConditions = append(whereConditions, "champion = ?")
		args = append(args, champion)
	}

	if playerRole, ok := filters["role"].(string); ok {
		whereConditions = append(whereConditions, "role = ?")
		args = append(args, playerRole)
	}

	if mode, ok := filters["mode"].(string); ok {
		whereConditions = append(whereConditions, "game_mode = ?")
		args = append(args, mode)
	}

	query := `
	SELECT
		opponent_champion,
		COUNT(*) AS games,
		SUM(win::int) AS wins,
		AVG(win::int) * 100 AS win_rate,
		AVG(kills) AS avg_kills,
		AVG(deaths) AS avg_deaths,
		AVG(assists) AS avg_assists,
		AVG(cs_per_min) AS avg_cs_per_min,
		AVG(gold_per_min) AS avg_gold_per_min,
		AVG(damage_per_min) AS avg_damage_per_min,
		AVG(kill_participation) AS avg_kill_participation
	FROM
		match_records
	WHERE ` + strings.Join(whereConditions, " AND ") + `
	GROUP BY
		opponent_champion
	HAVING
		COUNT(*) >= ?
	ORDER BY win_rate ASC, games DESC
	`
	args = append(args, minGames)

	err := mr.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetMatchupAggregate aggregates the games against one opponent.
// No minimum sample size here: the detail view shows whatever exists.
func (mr *matchReadRepository) GetMatchupAggregate(ctx context.Context, playerId uint, opponent string, filters map[string]any) (*MatchupAggregate, error) {
	var result MatchupAggregate

	whereConditions, args := opponentConditions(playerId, opponent, filters)

	query := `
	SELECT
		opponent_champion,
		COUNT(*) AS games,
		SUM(win::int) AS wins,
		AVG(win::int) * 100 AS win_rate,
		AVG(kills) AS avg_kills,
		AVG(deaths) AS avg_deaths,
		AVG(assists) AS avg_assists,
		AVG(cs_per_min) AS avg_cs_per_min,
		AVG(gold_per_min) AS avg_gold_per_min,
		AVG(damage_per_min) AS avg_damage_per_min,
		AVG(kill_participation) AS avg_kill_participation
	FROM
		match_records
	WHERE ` + strings.Join(whereConditions, " AND ") + `
	GROUP BY
		opponent_champion
	`

	err := mr.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error
	if err != nil {
		return nil, err
	}
	if result.Games == 0 {
		return nil, nil
	}
	return &result, nil
}

// opponentConditions builds the shared WHERE clause of the detail view
// queries: the player, the opponent and the optional role/mode narrowing.
func opponentConditions(playerId uint, opponent string, filters map[string]any) ([]string, []any) {
	whereConditions := []string{"player_id = ?", "opponent_champion = ?"}
	args := []any{playerId, opponent}

	if playerRole, ok := filters["role"].(string); ok {
		whereConditions = append(whereConditions, "role = ?")
		args = append(args, playerRole)
	}

	if mode, ok := filters["mode"].(string); ok {
		whereConditions = append(whereConditions, "game_mode = ?")
		args = append(args, mode)
	}

	return whereConditions, args
}

// distributionRow is the shape of the GROUP BY count queries.
type distributionRow struct {
	Key   string
	Count int
}

// GetRoleDistribution counts the games against an opponent per role.
func (mr *matchReadRepository) GetRoleDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error) {
	return mr.getDistribution(ctx, "role", playerId, opponent, filters)
}

// GetModeDistribution counts the games against an opponent per game mode.
func (mr *matchReadRepository) GetModeDistribution(ctx context.Context, playerId uint, opponent string, filters map[string]any) (map[string]int, error) {
	return mr.getDistribution(ctx, "game_mode", playerId, opponent, filters)
}

func (mr *matchReadRepository) getDistribution(ctx context.Context, column string, playerId uint, opponent string, filters map[string]any) (map[string]int, error) {
	var rows []distributionRow

	whereConditions, args := opponentConditions(playerId, opponent, filters)

	// Column comes from the two callers above, never from user input.
	query := `
	SELECT ` + column + ` AS key, COUNT(*) AS count
	FROM match_records
	WHERE ` + strings.Join(whereConditions, " AND ") + `
	GROUP BY ` + column

	err := mr.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int, len(rows))
	for _, row := range rows {
		distribution[row.Key] = row.Count
	}
	return distribution, nil
}

// GetRecentMatchesVsOpponent lists the newest games against one opponent.
func (mr *matchReadRepository) GetRecentMatchesVsOpponent(ctx context.Context, playerId uint, opponent string, filters map[string]any, limit int) ([]*models.MatchRecord, error) {
	var matches []*models.MatchRecord

	whereConditions, args := opponentConditions(playerId, opponent, filters)

	err := mr.db.WithContext(ctx).
		Where(strings.Join(whereConditions, " AND "), args...).
		Order("played_at DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetMatchHistory lists the newest games of a player. A zero queueId
// means every queue.
func (mr *matchReadRepository) GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]*models.MatchRecord, error) {
	var matches []*models.MatchRecord

	query := mr.db.WithContext(ctx).Where("player_id = ?", playerId)
	if queueId > 0 {
		query = query.Where("queue_id = ?", queueId)
	}

	err := query.
		Order("played_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// CountByPlayer counts the stored matches of a player.
func (mr *matchReadRepository) CountByPlayer(ctx context.Context, playerId uint) (int64, error) {
	var count int64
	err := mr.db.WithContext(ctx).
		Model(&models.MatchRecord{}).
		Where("player_id = ?", playerId).
		Count(&count).Error
	return count, err
}
