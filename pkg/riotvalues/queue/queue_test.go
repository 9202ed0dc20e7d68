package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameMode(t *testing.T) {
	tests := []struct {
		name     string
		queueId  int
		expected string
	}{
		{name: "ranked solo", queueId: 420, expected: "Ranked Solo/Duo"},
		{name: "ranked flex", queueId: 440, expected: "Ranked Flex"},
		{name: "aram", queueId: 450, expected: "ARAM"},
		{name: "arena", queueId: 1700, expected: "Arena"},
		{name: "unknown queue gets synthesized label", queueId: 9999, expected: "Queue 9999"},
		{name: "zero queue", queueId: 0, expected: "Queue 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GameMode(tt.queueId))
		})
	}
}
