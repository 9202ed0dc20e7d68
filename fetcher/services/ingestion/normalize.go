package ingestion

import (
	"errors"
	"riftstats/fetcher/data/riot"
	"riftstats/pkg/database/models"
	"riftstats/pkg/riotvalues/queue"
	"riftstats/pkg/riotvalues/role"
)

var (
	// ErrParticipantNotFound means the tracked player wasn't in the match payload.
	ErrParticipantNotFound = errors.New("player not found in match participants")

	// ErrInvalidDuration means the match has a non positive duration.
	// Remakes and corrupted payloads both show up this way.
	ErrInvalidDuration = errors.New("match duration is not positive")
)

// NormalizeMatch flattens a raw match payload into the row stored for one
// player. The opponent is the enemy participant holding the same normalized
// role; matches without a clean lane opposition keep a nil opponent.
func NormalizeMatch(match *riot.MatchData, puuid string, matchId string, playerId uint) (*models.MatchRecord, error) {
	player := findParticipant(match.Info.Participants, puuid)
	if player == nil {
		return nil, ErrParticipantNotFound
	}

	if match.Info.GameDuration <= 0 {
		return nil, ErrInvalidDuration
	}
	minutes := float64(match.Info.GameDuration) / 60

	playerRole := role.Normalize(player.TeamPosition)

	record := &models.MatchRecord{
		PlayerId: playerId,
		MatchId:  matchId,

		Champion:        player.ChampionName,
		Role:            playerRole,
		Win:             player.Win,
		DurationMinutes: minutes,

		Kills:   player.Kills,
		Deaths:  player.Deaths,
		Assists: player.Assists,

		CsPerMin:          float64(player.TotalMinionsKilled+player.NeutralMinionsKilled) / minutes,
		GoldPerMin:        float64(player.GoldEarned) / minutes,
		DamagePerMin:      float64(player.TotalDamageDealtToChampions) / minutes,
		KillParticipation: killParticipation(match.Info.Participants, player),

		QueueId:  match.Info.QueueId,
		GameMode: queue.GameMode(match.Info.QueueId),

		PlayedAt: match.Info.GameCreation.Time(),
	}

	if opponent := findOpponent(match.Info.Participants, player, playerRole); opponent != nil {
		record.OpponentChampion = &opponent.ChampionName
	}

	return record, nil
}

// findParticipant returns the participant matching the puuid, if any.
func findParticipant(participants []riot.Participant, puuid string) *riot.Participant {
	for i := range participants {
		if participants[i].Puuid == puuid {
			return &participants[i]
		}
	}
	return nil
}

// findOpponent returns the enemy participant in the same role.
// Modes without lane assignments (ARAM, Arena) have empty positions, so no
// opponent is resolved there.
func findOpponent(participants []riot.Participant, player *riot.Participant, playerRole string) *riot.Participant {
	if playerRole == "" {
		return nil
	}

	for i := range participants {
		candidate := &participants[i]
		if candidate.TeamId == player.TeamId {
			continue
		}
		if role.Normalize(candidate.TeamPosition) == playerRole {
			return candidate
		}
	}
	return nil
}

// killParticipation is the share of the team's kills the player took part in.
func killParticipation(participants []riot.Participant, player *riot.Participant) float64 {
	teamKills := 0
	for i := range participants {
		if participants[i].TeamId == player.TeamId {
			teamKills += participants[i].Kills
		}
	}
	if teamKills < 1 {
		teamKills = 1
	}

	return float64(player.Kills+player.Assists) / float64(teamKills)
}
