package filters

import (
	"riftstats/pkg/riotvalues/role"
	"strings"
)

// Query parameters for the matchup filters.
type MatchupQueryParams struct {
	Queue    int    `form:"queue" binding:"omitempty,min=0"`
	Champion string `form:"champion"`
	Role     string `form:"role"`
	Mode     string `form:"mode"`
}

// Get the query parameters as a map.
func (q *MatchupQueryParams) AsMap() map[string]any {
	filters := make(map[string]any)

	if q.Queue != 0 {
		filters["queue"] = q.Queue
	}

	// Only add non-empty filters.
	if q.Champion != "" {
		filters["champion"] = strings.TrimSpace(q.Champion)
	}

	if q.Role != "" {
		filters["role"] = role.Normalize(q.Role)
	}

	if q.Mode != "" {
		filters["mode"] = strings.TrimSpace(q.Mode)
	}

	return filters
}

// Query parameters narrowing the matchup detail view.
type MatchupDetailQueryParams struct {
	Role string `form:"role"`
	Mode string `form:"mode"`
}

// Get the query parameters as a map.
func (q *MatchupDetailQueryParams) AsMap() map[string]any {
	filters := make(map[string]any)

	if q.Role != "" {
		filters["role"] = role.Normalize(q.Role)
	}

	if q.Mode != "" {
		filters["mode"] = strings.TrimSpace(q.Mode)
	}

	return filters
}
