package models

import "time"

// PlayerInfo is the database model for a tracked player account.
type PlayerInfo struct {
	ID             uint   `gorm:"primaryKey"`
	RiotIdGameName string `gorm:"type:varchar(50);not null;index:idx_riot_id,unique"`
	RiotIdTagline  string `gorm:"type:varchar(10);not null;index:idx_riot_id,unique"`
	Puuid          string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Region         string `gorm:"type:varchar(10);index:idx_riot_id,unique"`
	CreatedAt      time.Time
	LastUpdated    time.Time `gorm:"autoUpdateTime"`
}
