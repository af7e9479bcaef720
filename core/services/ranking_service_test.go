package services

import (
	"testing"

	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RankingServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *RankingService
}

func TestRankingServiceSuite(t *testing.T) {
	suite.Run(t, new(RankingServiceSuite))
}

func (s *RankingServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewRankingService(s.db)
}

func (s *RankingServiceSuite) TestRecalculateRanksWithTies() {
	playerService := NewPlayerService(s.db)
	for _, seed := range []struct {
		name   string
		rating int
	}{
		{"Anna", 1600},
		{"Bruno", 1500},
		{"Carla", 1500},
		{"Dino", 1400},
	} {
		player, err := playerService.CreatePlayer(models.CreatePlayerRequest{
			Name: seed.name,
			Role: models.RoleGoalkeeper,
		})
		s.Require().NoError(err)
		s.Require().NoError(s.db.Model(&models.Player{}).
			Where("id = ?", player.ID).
			Update("rating", seed.rating).Error)
	}

	s.Require().NoError(s.service.RecalculateRanks())

	ranks := make(map[string]int, 4)
	var players []models.Player
	s.Require().NoError(s.db.Find(&players).Error)
	for _, player := range players {
		ranks[player.Name] = player.Rank
	}

	s.Equal(1, ranks["Anna"])
	s.Equal(2, ranks["Bruno"])
	s.Equal(2, ranks["Carla"])
	s.Equal(4, ranks["Dino"])
}
