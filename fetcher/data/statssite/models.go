package statssite

// ChampionStats is the aggregate performance of a champion across the ladder.
// Rates are percentages.
type ChampionStats struct {
	Champion string  `json:"champion"`
	Role     string  `json:"role,omitempty"`
	WinRate  float64 `json:"winRate"`
	PickRate float64 `json:"pickRate"`
	BanRate  float64 `json:"banRate"`
}

// CounterStats is one champion that performs well against the requested one.
type CounterStats struct {
	Champion string  `json:"champion"`
	WinRate  float64 `json:"winRate"`
	Games    int     `json:"games"`
}
