package role

import "strings"

// Canonical team position tokens as stored by the Riot API.
const (
	Top     = "TOP"
	Jungle  = "JUNGLE"
	Middle  = "MIDDLE"
	Bottom  = "BOTTOM"
	Utility = "UTILITY"
	Unknown = "UNKNOWN"
)

// Shorthand tokens accepted from clients, mapped to the canonical ones.
// Normalizing a canonical token is a no-op.
var synonyms = map[string]string{
	"TOP":     Top,
	"JUNGLE":  Jungle,
	"MID":     Middle,
	"MIDDLE":  Middle,
	"ADC":     Bottom,
	"BOT":     Bottom,
	"BOTTOM":  Bottom,
	"SUPPORT": Utility,
	"UTILITY": Utility,
}

// Normalize converts a UI role name to the Riot teamPosition format.
// Unknown tokens pass through uppercased, empty stays empty.
func Normalize(role string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(role))
	if trimmed == "" {
		return ""
	}

	if canonical, exists := synonyms[trimmed]; exists {
		return canonical
	}
	return trimmed
}
