package dto

// DifficultMatchup is one opponent the player struggles against.
type DifficultMatchup struct {
	OpponentChampion string  `json:"opponentChampion"`
	Games            int     `json:"games"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinRate          float64 `json:"winRate"`

	AvgKills   float64 `json:"avgKills"`
	AvgDeaths  float64 `json:"avgDeaths"`
	AvgAssists float64 `json:"avgAssists"`

	AvgCsPerMin          float64 `json:"avgCsPerMin"`
	AvgGoldPerMin        float64 `json:"avgGoldPerMin"`
	AvgDamagePerMin      float64 `json:"avgDamagePerMin"`
	AvgKillParticipation float64 `json:"avgKillParticipation"`
}

// MatchupList is the response of the difficult matchup listing.
// Reason is filled when the list is empty, explaining why.
type MatchupList struct {
	Matchups []*DifficultMatchup `json:"matchups"`
	Reason   string              `json:"reason,omitempty"`
}

// MatchupDetail is the deep dive against one specific opponent.
// Unlike the listing, it has no minimum sample size.
type MatchupDetail struct {
	Stats *DifficultMatchup `json:"stats"`

	RoleDistribution map[string]int `json:"roleDistribution"`
	ModeDistribution map[string]int `json:"modeDistribution"`

	RecentMatches []*MatchSummary `json:"recentMatches"`
}

// MatchSummary is one match row in a history or detail listing.
type MatchSummary struct {
	MatchId          string  `json:"matchId"`
	Champion         string  `json:"champion"`
	OpponentChampion *string `json:"opponentChampion,omitempty"`
	Role             string  `json:"role,omitempty"`
	Win              bool    `json:"win"`
	GameMode         string  `json:"gameMode"`
	DurationMinutes  float64 `json:"durationMinutes"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	PlayedAt string `json:"playedAt"`
}
