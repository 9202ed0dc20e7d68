package filters

// Query parameters for the match history listing.
type MatchHistoryQueryParams struct {
	Queue  int `form:"queue" binding:"omitempty"`
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// Get the query parameters as a map.
func (q *MatchHistoryQueryParams) AsMap() map[string]any {
	// Set to the default maximum.
	// Could use max on the form, but that would return a error.
	if q.Limit > 100 {
		q.Limit = 100
	}

	return map[string]any{
		"queue":  q.Queue,
		"limit":  q.Limit,
		"offset": q.Offset,
	}
}

// Body for registering a new tracked player.
type RegisterPlayerBody struct {
	GameName string `json:"gameName" binding:"required"`
	TagLine  string `json:"tagLine" binding:"required"`
	Region   string `json:"region" binding:"required"`
}
