package services

import (
	"errors"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/utils"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

// GetAllPlayers returns every player ordered by rating descending, with name
// as the tiebreak.
func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("rating DESC, name ASC").Find(&players)
	if result.Error != nil {
		return nil, classifyStoreError(result.Error)
	}

	return players, nil
}

func (s *PlayerService) GetTopPlayers(limit int) ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("rating DESC, name ASC").
		Limit(limit).
		Find(&players)

	if result.Error != nil {
		return nil, classifyStoreError(result.Error)
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnknownPlayer
		}
		return nil, classifyStoreError(result.Error)
	}

	return &player, nil
}

// CreatePlayer registers a new player with the initial rating. Names must be
// unique case-insensitively.
func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	var count int64
	if err := s.db.Model(&models.Player{}).
		Where("LOWER(name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		return nil, classifyStoreError(err)
	}
	if count > 0 {
		return nil, models.ErrDuplicatePlayer
	}

	player := &models.Player{
		Name:          req.Name,
		Role:          req.Role,
		Rating:        utils.InitialRating,
		MatchesPlayed: 0,
		Wins:          0,
		Losses:        0,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, classifyStoreError(err)
	}

	return player, nil
}
