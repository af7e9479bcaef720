package models

import (
	"time"
)

// Player roles on a two-a-side table
const (
	RoleGoalkeeper = "goalkeeper"
	RoleForward    = "forward"
)

type Player struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null;unique" json:"name"`
	Role          string    `gorm:"size:20;not null" json:"role"` // goalkeeper or forward
	Rating        int       `gorm:"default:1500" json:"rating"`
	Rank          int       `gorm:"default:0" json:"rank"`
	MatchesPlayed int       `gorm:"default:0" json:"matches_played"`
	Wins          int       `gorm:"default:0" json:"wins"`
	Losses        int       `gorm:"default:0" json:"losses"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Role string `json:"role" binding:"required,oneof=goalkeeper forward"`
}
