package dto

// PlayerSummary is the public view of a tracked player.
type PlayerSummary struct {
	Id          uint   `json:"id"`
	GameName    string `json:"gameName"`
	TagLine     string `json:"tagLine"`
	Region      string `json:"region"`
	LastUpdated string `json:"lastUpdated"`
}

// MatchHistory is the response of the match history listing.
type MatchHistory struct {
	Player  *PlayerSummary  `json:"player"`
	Matches []*MatchSummary `json:"matches"`

	// Refreshed is true when the request triggered a new ingestion run.
	Refreshed bool `json:"refreshed"`
}

// RankedList is the response of the ranked queue listing.
type RankedList struct {
	Player  *PlayerSummary `json:"player"`
	Entries []*RankedQueue `json:"entries"`
}

// RankedQueue is the player's standing in one ranked queue.
type RankedQueue struct {
	Queue        string  `json:"queue"`
	Tier         string  `json:"tier"`
	Rank         string  `json:"rank"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
}

// MasteryList is the response of the mastery listing.
type MasteryList struct {
	Player    *PlayerSummary  `json:"player"`
	Masteries []*MasteryEntry `json:"masteries"`
}

// MasteryEntry is one champion mastery row.
type MasteryEntry struct {
	ChampionId   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Level        int    `json:"level"`
	Points       int    `json:"points"`
	LastPlayed   string `json:"lastPlayed,omitempty"`
}
