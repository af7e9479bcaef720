package services

import (
	"testing"

	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PlayerServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *PlayerService
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceSuite))
}

func (s *PlayerServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewPlayerService(s.db)
}

func (s *PlayerServiceSuite) TestCreatePlayerInitialState() {
	player, err := s.service.CreatePlayer(models.CreatePlayerRequest{
		Name: "Marco",
		Role: models.RoleGoalkeeper,
	})
	s.Require().NoError(err)

	s.NotZero(player.ID)
	s.Equal("Marco", player.Name)
	s.Equal(models.RoleGoalkeeper, player.Role)
	s.Equal(1500, player.Rating)
	s.Equal(0, player.MatchesPlayed)
	s.Equal(0, player.Wins)
	s.Equal(0, player.Losses)
}

func (s *PlayerServiceSuite) TestCreatePlayerDuplicateNameCaseInsensitive() {
	_, err := s.service.CreatePlayer(models.CreatePlayerRequest{
		Name: "Marco",
		Role: models.RoleGoalkeeper,
	})
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(models.CreatePlayerRequest{
		Name: "marco",
		Role: models.RoleForward,
	})
	s.Require().ErrorIs(err, models.ErrDuplicatePlayer)

	var count int64
	s.Require().NoError(s.db.Model(&models.Player{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PlayerServiceSuite) TestGetAllPlayersOrdering() {
	for _, seed := range []struct {
		name   string
		rating int
	}{
		{"Bruno", 1550},
		{"Anna", 1550},
		{"Carla", 1620},
		{"Dino", 1480},
	} {
		player, err := s.service.CreatePlayer(models.CreatePlayerRequest{
			Name: seed.name,
			Role: models.RoleForward,
		})
		s.Require().NoError(err)
		s.Require().NoError(s.db.Model(&models.Player{}).
			Where("id = ?", player.ID).
			Update("rating", seed.rating).Error)
	}

	players, err := s.service.GetAllPlayers()
	s.Require().NoError(err)
	s.Require().Len(players, 4)

	// Rating descending, name ascending as tiebreak
	s.Equal("Carla", players[0].Name)
	s.Equal("Anna", players[1].Name)
	s.Equal("Bruno", players[2].Name)
	s.Equal("Dino", players[3].Name)
}

func (s *PlayerServiceSuite) TestGetTopPlayersLimit() {
	for _, name := range []string{"Anna", "Bruno", "Carla"} {
		_, err := s.service.CreatePlayer(models.CreatePlayerRequest{
			Name: name,
			Role: models.RoleForward,
		})
		s.Require().NoError(err)
	}

	players, err := s.service.GetTopPlayers(2)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *PlayerServiceSuite) TestGetPlayerByIDUnknown() {
	_, err := s.service.GetPlayerByID(42)
	s.Require().ErrorIs(err, models.ErrUnknownPlayer)
}
