package services

import (
	"testing"

	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AdminServiceSuite struct {
	suite.Suite
	db            *gorm.DB
	playerService *PlayerService
	matchService  *MatchService
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceSuite))
}

func (s *AdminServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.playerService = NewPlayerService(s.db)
	s.matchService = NewMatchService(s.db)
}

func (s *AdminServiceSuite) seedMatch() {
	ids := make([]uint, 0, 4)
	for _, name := range []string{"Anna", "Bruno", "Carla", "Dino"} {
		player, err := s.playerService.CreatePlayer(models.CreatePlayerRequest{
			Name: name,
			Role: models.RoleForward,
		})
		s.Require().NoError(err)
		ids = append(ids, player.ID)
	}

	_, err := s.matchService.RecordMatch(models.RecordMatchRequest{
		Team1:  []uint{ids[0], ids[1]},
		Team2:  []uint{ids[2], ids[3]},
		Winner: models.WinnerTeam1,
	})
	s.Require().NoError(err)
}

func (s *AdminServiceSuite) count(model interface{}) int64 {
	var count int64
	s.Require().NoError(s.db.Model(model).Count(&count).Error)
	return count
}

func (s *AdminServiceSuite) TestResetAllInDevelopment() {
	s.seedMatch()
	service := NewAdminService(s.db, "development")

	s.Require().NoError(service.ResetAll())

	s.Zero(s.count(&models.Player{}))
	s.Zero(s.count(&models.Match{}))
}

func (s *AdminServiceSuite) TestResetAllForbiddenInProduction() {
	s.seedMatch()
	service := NewAdminService(s.db, "production")

	err := service.ResetAll()
	s.Require().ErrorIs(err, models.ErrOperationForbidden)

	// Store untouched
	s.Equal(int64(4), s.count(&models.Player{}))
	s.Equal(int64(1), s.count(&models.Match{}))
}
