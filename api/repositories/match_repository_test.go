package repositories

import (
	"context"
	"fmt"
	"riftstats/api/repositories/testutil"
	fetcherrepositories "riftstats/fetcher/repositories"
	"riftstats/pkg/database/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPlayer(t *testing.T, db *gorm.DB, gameName string) *models.PlayerInfo {
	t.Helper()

	player := &models.PlayerInfo{
		RiotIdGameName: gameName,
		RiotIdTagline:  "NA1",
		Region:         "NA",
		Puuid:          "puuid-" + gameName,
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

func seedMatch(t *testing.T, db *gorm.DB, playerId uint, matchId string, opponent string, win bool, kills int, playedAt time.Time) {
	t.Helper()

	record := &models.MatchRecord{
		PlayerId:        playerId,
		MatchId:         matchId,
		Champion:        "Ahri",
		Role:            "MIDDLE",
		Win:             win,
		DurationMinutes: 30,
		Kills:           kills,
		Deaths:          4,
		Assists:         6,
		CsPerMin:        7.2,
		GoldPerMin:      410,
		DamagePerMin:    520,
		QueueId:         420,
		GameMode:        "Ranked Solo/Duo",
		PlayedAt:        playedAt,
	}
	if opponent != "" {
		record.OpponentChampion = &opponent
	}
	require.NoError(t, db.Create(record).Error)
}

func TestMatchReadRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewMatchReadRepository(db)

	player := seedPlayer(t, db, "Tester")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Four games versus Renekton, one win.
	for index, win := range []bool{true, false, false, false} {
		seedMatch(t, db, player.ID, matchId("REN", index), "Renekton", win, 3+index, base.Add(time.Duration(index)*time.Hour))
	}

	// Six games versus Darius, four wins.
	for index, win := range []bool{true, true, true, true, false, false} {
		seedMatch(t, db, player.ID, matchId("DAR", index), "Darius", win, 5, base.Add(time.Duration(10+index)*time.Hour))
	}

	// Two games versus Teemo, under the usual minimum.
	seedMatch(t, db, player.ID, "NA1_TEE_0", "Teemo", false, 2, base)
	seedMatch(t, db, player.ID, "NA1_TEE_1", "Teemo", false, 2, base)

	// One game with no resolved opponent, never aggregated.
	seedMatch(t, db, player.ID, "NA1_ARAM_0", "", true, 9, base)

	t.Run("aggregates with minimum", func(t *testing.T) {
		aggregates, err := repo.GetMatchupAggregates(ctx, player.ID, 3, map[string]any{})
		require.NoError(t, err)
		require.Len(t, aggregates, 2)

		// Lowest win rate first.
		renekton := aggregates[0]
		assert.Equal(t, "Renekton", renekton.OpponentChampion)
		assert.Equal(t, 4, renekton.Games)
		assert.Equal(t, 1, renekton.Wins)
		assert.InDelta(t, 25.0, renekton.WinRate, 0.001)
		assert.InDelta(t, 4.5, renekton.AvgKills, 0.001)

		assert.Equal(t, "Darius", aggregates[1].OpponentChampion)
	})

	t.Run("aggregates with queue filter", func(t *testing.T) {
		aggregates, err := repo.GetMatchupAggregates(ctx, player.ID, 3, map[string]any{"queue": 450})
		require.NoError(t, err)
		assert.Empty(t, aggregates)
	})

	t.Run("aggregates with mode filter", func(t *testing.T) {
		aggregates, err := repo.GetMatchupAggregates(ctx, player.ID, 3, map[string]any{"mode": "Ranked Solo/Duo"})
		require.NoError(t, err)
		assert.Len(t, aggregates, 2)

		aggregates, err = repo.GetMatchupAggregates(ctx, player.ID, 3, map[string]any{"mode": "ARAM"})
		require.NoError(t, err)
		assert.Empty(t, aggregates)
	})

	t.Run("single aggregate ignores minimum", func(t *testing.T) {
		aggregate, err := repo.GetMatchupAggregate(ctx, player.ID, "Teemo", map[string]any{})
		require.NoError(t, err)
		require.NotNil(t, aggregate)
		assert.Equal(t, 2, aggregate.Games)
	})

	t.Run("single aggregate respects role and mode", func(t *testing.T) {
		aggregate, err := repo.GetMatchupAggregate(ctx, player.ID, "Renekton", map[string]any{"role": "MIDDLE", "mode": "Ranked Solo/Duo"})
		require.NoError(t, err)
		require.NotNil(t, aggregate)
		assert.Equal(t, 4, aggregate.Games)

		aggregate, err = repo.GetMatchupAggregate(ctx, player.ID, "Renekton", map[string]any{"mode": "ARAM"})
		require.NoError(t, err)
		assert.Nil(t, aggregate)
	})

	t.Run("single aggregate for unseen opponent", func(t *testing.T) {
		aggregate, err := repo.GetMatchupAggregate(ctx, player.ID, "Zed", map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, aggregate)
	})

	t.Run("distributions", func(t *testing.T) {
		roles, err := repo.GetRoleDistribution(ctx, player.ID, "Renekton", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"MIDDLE": 4}, roles)

		modes, err := repo.GetModeDistribution(ctx, player.ID, "Renekton", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Ranked Solo/Duo": 4}, modes)
	})

	t.Run("recent matches newest first", func(t *testing.T) {
		matches, err := repo.GetRecentMatchesVsOpponent(ctx, player.ID, "Renekton", map[string]any{}, 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "NA1_REN_3", matches[0].MatchId)
		assert.Equal(t, "NA1_REN_2", matches[1].MatchId)
	})

	t.Run("recent matches with mode filter", func(t *testing.T) {
		matches, err := repo.GetRecentMatchesVsOpponent(ctx, player.ID, "Renekton", map[string]any{"mode": "ARAM"}, 2)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("match history pagination", func(t *testing.T) {
		page, err := repo.GetMatchHistory(ctx, player.ID, 0, 5, 0)
		require.NoError(t, err)
		require.Len(t, page, 5)
		assert.Equal(t, "NA1_DAR_5", page[0].MatchId)

		next, err := repo.GetMatchHistory(ctx, player.ID, 0, 5, 5)
		require.NoError(t, err)
		require.Len(t, next, 5)
		assert.NotEqual(t, page[0].MatchId, next[0].MatchId)
	})

	t.Run("match history queue filter", func(t *testing.T) {
		matches, err := repo.GetMatchHistory(ctx, player.ID, 450, 5, 0)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("count by player", func(t *testing.T) {
		count, err := repo.CountByPlayer(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(13), count)
	})
}

func TestWriteRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	ctx := context.Background()
	player := seedPlayer(t, db, "Writer")

	matchRepo := fetcherrepositories.NewMatchRepository(db)
	masteryRepo := fetcherrepositories.NewMasteryRepository(db)

	t.Run("existing ids as a set", func(t *testing.T) {
		seedMatch(t, db, player.ID, "NA1_W_1", "Zed", true, 5, time.Now())

		existing, err := matchRepo.GetExistingMatchIds(ctx, player.ID)
		require.NoError(t, err)
		assert.Contains(t, existing, "NA1_W_1")
	})

	t.Run("duplicate insert rolls the batch back", func(t *testing.T) {
		batch := []*models.MatchRecord{
			{PlayerId: player.ID, MatchId: "NA1_W_2", Champion: "Ahri", Role: "MIDDLE", DurationMinutes: 30},
			{PlayerId: player.ID, MatchId: "NA1_W_1", Champion: "Ahri", Role: "MIDDLE", DurationMinutes: 30},
		}
		err := matchRepo.CreateMatchRecords(ctx, batch)
		require.Error(t, err)

		// The valid row must not survive the failed batch.
		existing, err := matchRepo.GetExistingMatchIds(ctx, player.ID)
		require.NoError(t, err)
		assert.NotContains(t, existing, "NA1_W_2")
	})

	t.Run("mastery upsert updates in place", func(t *testing.T) {
		first := []*models.MasteryRecord{
			{PlayerId: player.ID, ChampionId: 103, ChampionName: "Ahri", Level: 6, Points: 100000},
		}
		require.NoError(t, masteryRepo.UpsertMasteries(ctx, first))

		second := []*models.MasteryRecord{
			{PlayerId: player.ID, ChampionId: 103, ChampionName: "Ahri", Level: 7, Points: 120000},
		}
		require.NoError(t, masteryRepo.UpsertMasteries(ctx, second))

		var stored []models.MasteryRecord
		require.NoError(t, db.Where("player_id = ?", player.ID).Find(&stored).Error)
		require.Len(t, stored, 1)
		assert.Equal(t, 7, stored[0].Level)
		assert.Equal(t, 120000, stored[0].Points)
	})
}

func matchId(tag string, index int) string {
	return fmt.Sprintf("NA1_%s_%d", tag, index)
}
