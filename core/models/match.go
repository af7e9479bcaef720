package models

import (
	"time"
)

// Winner designators stored on a match
const (
	WinnerTeam1 = 1
	WinnerTeam2 = 2
)

type Match struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Team1Player1ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"team1_player1_id"`
	Team1Player2ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"team1_player2_id"`
	Team2Player1ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"team2_player1_id"`
	Team2Player2ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"team2_player2_id"`
	Winner         int       `gorm:"not null" json:"winner"` // 1 or 2
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Team1Player1 Player `gorm:"foreignKey:Team1Player1ID;references:ID" json:"team1_player1,omitempty"`
	Team1Player2 Player `gorm:"foreignKey:Team1Player2ID;references:ID" json:"team1_player2,omitempty"`
	Team2Player1 Player `gorm:"foreignKey:Team2Player1ID;references:ID" json:"team2_player1,omitempty"`
	Team2Player2 Player `gorm:"foreignKey:Team2Player2ID;references:ID" json:"team2_player2,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

type RecordMatchRequest struct {
	Team1  []uint `json:"team1" binding:"required,len=2"`
	Team2  []uint `json:"team2" binding:"required,len=2"`
	Winner int    `json:"winner" binding:"required,oneof=1 2"`
}

// RatingChangeResult carries the per-team rating movement produced by one
// recorded match. It is returned to the caller, never persisted; the deltas
// are reconstructable from the players' before/after ratings.
type RatingChangeResult struct {
	Match  *Match `json:"match"`
	Delta1 int    `json:"team1_delta"`
	Delta2 int    `json:"team2_delta"`
}
