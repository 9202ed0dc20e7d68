package riot

import (
	"encoding/json"
	"time"
)

// RiotTime handles the conversion of the millisecond timestamps from Riot.
type RiotTime time.Time

// UnmarshalJSON converts the raw millisecond timestamp.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Time returns the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Account is the return of the account-v1 endpoint.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the return of the summoner-v4 endpoint.
type Summoner struct {
	ProfileIconId int   `json:"profileIconId"`
	SummonerLevel int64 `json:"summonerLevel"`
	RevisionDate  int64 `json:"revisionDate"`
}

// MatchData is the return of the match-v5 endpoint.
type MatchData struct {
	Info MatchInfo `json:"info"`
}

// MatchInfo holds the fields of a match that the normalizer consumes.
type MatchInfo struct {
	GameCreation RiotTime      `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	QueueId      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

// Participant is one player inside a match.
type Participant struct {
	Puuid        string `json:"puuid"`
	ChampionName string `json:"championName"`
	TeamPosition string `json:"teamPosition"`
	TeamId       int    `json:"teamId"`
	Win          bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	GoldEarned                  int `json:"goldEarned"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
}

// MasteryEntry is one champion mastery snapshot from champion-mastery-v4.
type MasteryEntry struct {
	ChampionId     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}

// LeagueEntry is one ranked queue entry from league-v4.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
