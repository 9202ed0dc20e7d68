package models

import "time"

// MatchRecord is one player's performance in one game.
// Records are append only: they are created during ingestion and never updated.
type MatchRecord struct {
	ID       uint   `gorm:"primaryKey"`
	PlayerId uint   `gorm:"not null;index:idx_player_match,unique"`
	MatchId  string `gorm:"type:varchar(20);not null;index:idx_player_match,unique"`

	Player PlayerInfo `gorm:"foreignKey:PlayerId"`

	Champion         string  `gorm:"type:varchar(50);not null"`
	OpponentChampion *string `gorm:"type:varchar(50)"`
	Role             string  `gorm:"type:varchar(20);not null"`
	Win              bool    `gorm:"not null"`
	DurationMinutes  float64 `gorm:"not null"`

	Kills   int `gorm:"not null"`
	Deaths  int `gorm:"not null"`
	Assists int `gorm:"not null"`

	CsPerMin          float64 `gorm:"not null"`
	GoldPerMin        float64 `gorm:"not null"`
	DamagePerMin      float64 `gorm:"not null"`
	KillParticipation float64 `gorm:"not null"`

	QueueId  int    `gorm:"index"`
	GameMode string `gorm:"type:varchar(50)"`

	PlayedAt  time.Time
	CreatedAt time.Time
}
