package services

import (
	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"gorm.io/gorm"
)

type RankingService struct {
	db *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{
		db: db,
	}
}

// RecalculateRanks rewrites every player's rank from the current rating
// order. Players with equal ratings share a rank.
func (s *RankingService) RecalculateRanks() error {
	var players []models.Player
	if err := s.db.Order("rating DESC, name ASC").Find(&players).Error; err != nil {
		return classifyStoreError(err)
	}

	currentRank := 1
	var previousRating int

	for i, player := range players {
		if i > 0 && player.Rating != previousRating {
			currentRank = i + 1
		}

		if err := s.db.Model(&models.Player{}).
			Where("id = ?", player.ID).
			Update("rank", currentRank).Error; err != nil {
			return classifyStoreError(err)
		}

		previousRating = player.Rating
	}

	return nil
}
