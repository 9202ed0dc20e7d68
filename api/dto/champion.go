package dto

// Recommendation is one champion suggested to the player.
type Recommendation struct {
	ChampionId   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Points       int    `json:"points"`
	Level        int    `json:"level"`
	Reason       string `json:"reason"`
}

// ChampionOverview is the ladder wide stats view of a champion.
// Source says where the numbers came from, since the scraper can be down
// and the local aggregates take over.
type ChampionOverview struct {
	Champion string  `json:"champion"`
	Role     string  `json:"role,omitempty"`
	WinRate  float64 `json:"winRate"`
	PickRate float64 `json:"pickRate,omitempty"`
	BanRate  float64 `json:"banRate,omitempty"`
	Source   string  `json:"source"`
}
