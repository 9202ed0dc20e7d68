package ingestion

import (
	"riftstats/fetcher/data/riot"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMatch builds a full 5v5 payload with the tracked player mid on team 100.
func testMatch() *riot.MatchData {
	return &riot.MatchData{
		Info: riot.MatchInfo{
			GameCreation: riot.RiotTime(time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)),
			GameDuration: 1800,
			QueueId:      420,
			Participants: []riot.Participant{
				{
					Puuid: "player-puuid", ChampionName: "Ahri", TeamPosition: "MIDDLE", TeamId: 100, Win: true,
					Kills: 8, Deaths: 2, Assists: 7,
					TotalMinionsKilled: 210, NeutralMinionsKilled: 30,
					GoldEarned: 13500, TotalDamageDealtToChampions: 24000,
				},
				{Puuid: "ally-top", ChampionName: "Garen", TeamPosition: "TOP", TeamId: 100, Kills: 4},
				{Puuid: "ally-jungle", ChampionName: "Vi", TeamPosition: "JUNGLE", TeamId: 100, Kills: 5},
				{Puuid: "ally-bot", ChampionName: "Jinx", TeamPosition: "BOTTOM", TeamId: 100, Kills: 3},
				{Puuid: "ally-support", ChampionName: "Lulu", TeamPosition: "UTILITY", TeamId: 100, Kills: 0},
				{Puuid: "enemy-top", ChampionName: "Darius", TeamPosition: "TOP", TeamId: 200},
				{Puuid: "enemy-jungle", ChampionName: "Lee Sin", TeamPosition: "JUNGLE", TeamId: 200},
				{Puuid: "enemy-mid", ChampionName: "Zed", TeamPosition: "MIDDLE", TeamId: 200},
				{Puuid: "enemy-bot", ChampionName: "Caitlyn", TeamPosition: "BOTTOM", TeamId: 200},
				{Puuid: "enemy-support", ChampionName: "Thresh", TeamPosition: "UTILITY", TeamId: 200},
			},
		},
	}
}

func TestNormalizeMatch(t *testing.T) {
	record, err := NormalizeMatch(testMatch(), "player-puuid", "NA1_100", 7)
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.PlayerId)
	assert.Equal(t, "NA1_100", record.MatchId)
	assert.Equal(t, "Ahri", record.Champion)
	assert.Equal(t, "MIDDLE", record.Role)
	assert.True(t, record.Win)
	assert.Equal(t, 420, record.QueueId)
	assert.Equal(t, "Ranked Solo/Duo", record.GameMode)

	// 30 minutes of game time.
	assert.InDelta(t, 30.0, record.DurationMinutes, 0.001)
	assert.InDelta(t, 8.0, record.CsPerMin, 0.001)
	assert.InDelta(t, 450.0, record.GoldPerMin, 0.001)
	assert.InDelta(t, 800.0, record.DamagePerMin, 0.001)

	// Team 100 has 20 kills, the player touched 15 of them.
	assert.InDelta(t, 0.75, record.KillParticipation, 0.001)

	require.NotNil(t, record.OpponentChampion)
	assert.Equal(t, "Zed", *record.OpponentChampion)
}

func TestNormalizeMatchParticipantNotFound(t *testing.T) {
	_, err := NormalizeMatch(testMatch(), "someone-else", "NA1_100", 7)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestNormalizeMatchInvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -5} {
		match := testMatch()
		match.Info.GameDuration = duration

		_, err := NormalizeMatch(match, "player-puuid", "NA1_100", 7)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

// Modes without lane positions can't resolve a lane opponent.
func TestNormalizeMatchNoOpponentWithoutRole(t *testing.T) {
	match := testMatch()
	match.Info.QueueId = 450
	for i := range match.Info.Participants {
		match.Info.Participants[i].TeamPosition = ""
	}

	record, err := NormalizeMatch(match, "player-puuid", "NA1_200", 7)
	require.NoError(t, err)

	assert.Equal(t, "", record.Role)
	assert.Nil(t, record.OpponentChampion)
	assert.Equal(t, "ARAM", record.GameMode)
}

// An enemy team with a missing position entry still resolves the right laner.
func TestNormalizeMatchOpponentBySynonymRole(t *testing.T) {
	match := testMatch()
	match.Info.Participants[0].TeamPosition = "BOT"
	match.Info.Participants[8].TeamPosition = "BOTTOM"

	record, err := NormalizeMatch(match, "player-puuid", "NA1_300", 7)
	require.NoError(t, err)

	assert.Equal(t, "BOTTOM", record.Role)
	require.NotNil(t, record.OpponentChampion)
	assert.Equal(t, "Caitlyn", *record.OpponentChampion)
}

// Zero team kills can't divide by zero.
func TestNormalizeMatchKillParticipationNoTeamKills(t *testing.T) {
	match := testMatch()
	for i := range match.Info.Participants {
		match.Info.Participants[i].Kills = 0
	}
	match.Info.Participants[0].Assists = 0

	record, err := NormalizeMatch(match, "player-puuid", "NA1_400", 7)
	require.NoError(t, err)

	assert.Equal(t, 0.0, record.KillParticipation)
}
