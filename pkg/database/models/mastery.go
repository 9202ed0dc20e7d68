package models

import "time"

// MasteryRecord is a player's proficiency snapshot for one champion.
// At most one row exists per (player, champion); refreshes update it in place.
type MasteryRecord struct {
	ID         uint `gorm:"primaryKey"`
	PlayerId   uint `gorm:"not null;index:idx_player_champion,unique"`
	ChampionId int  `gorm:"not null;index:idx_player_champion,unique"`

	Player PlayerInfo `gorm:"foreignKey:PlayerId"`

	ChampionName string `gorm:"type:varchar(50);not null"`
	Level        int    `gorm:"not null"`
	Points       int    `gorm:"not null"`
	LastPlayed   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
