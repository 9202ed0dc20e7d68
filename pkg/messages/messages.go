package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	FiltersNotNil       = "filters can't be nil"
	IngestionInProgress = "ingestion already in progress for this player"
	NoMatchData         = "no match data available, refresh the player data first"
	RequestFailedMsg    = "API request failed on URL %s"
)
