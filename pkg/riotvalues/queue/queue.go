package queue

import "fmt"

// Display labels for the known queue ids.
var queueModes = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	490:  "Quickplay",
	700:  "Clash",
	900:  "URF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "URF",
	2000: "Tutorial",
	2010: "Tutorial",
	2020: "Tutorial",
}

// GameMode converts a queue id to it's display label.
// Unknown queues still get a synthesized label so the match is never dropped.
func GameMode(queueId int) string {
	if mode, exists := queueModes[queueId]; exists {
		return mode
	}
	return fmt.Sprintf("Queue %d", queueId)
}
