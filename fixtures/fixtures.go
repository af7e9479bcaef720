package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"gorm.io/gorm"
)

type Fixtures struct {
	db             *gorm.DB
	playerService  *services.PlayerService
	matchService   *services.MatchService
	rankingService *services.RankingService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:             db,
		playerService:  services.NewPlayerService(db),
		matchService:   services.NewMatchService(db),
		rankingService: services.NewRankingService(db),
	}
}

var seedPlayers = []models.CreatePlayerRequest{
	{Name: "Marco", Role: models.RoleGoalkeeper},
	{Name: "Giulia", Role: models.RoleForward},
	{Name: "Luca", Role: models.RoleGoalkeeper},
	{Name: "Sofia", Role: models.RoleForward},
	{Name: "Matteo", Role: models.RoleGoalkeeper},
	{Name: "Elena", Role: models.RoleForward},
	{Name: "Davide", Role: models.RoleGoalkeeper},
	{Name: "Chiara", Role: models.RoleForward},
}

// GenerateTestData seeds players and plays matches through the real recorder
// so ratings, counters and ranks end up internally consistent.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players := make([]*models.Player, 0, len(seedPlayers))
	for _, req := range seedPlayers {
		player, err := f.playerService.CreatePlayer(req)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", req.Name, err)
		}
		players = append(players, player)
	}

	const matchCount = 40
	for i := 0; i < matchCount; i++ {
		ids := rand.Perm(len(players))[:4]
		req := models.RecordMatchRequest{
			Team1:  []uint{players[ids[0]].ID, players[ids[1]].ID},
			Team2:  []uint{players[ids[2]].ID, players[ids[3]].ID},
			Winner: 1 + rand.Intn(2),
		}
		if _, err := f.matchService.RecordMatch(req); err != nil {
			return fmt.Errorf("failed to record match %d: %w", i+1, err)
		}
	}

	if err := f.rankingService.RecalculateRanks(); err != nil {
		return fmt.Errorf("failed to recalculate ranks: %w", err)
	}

	log.Printf("Created %d players and %d matches", len(players), matchCount)
	return nil
}

// ClearAllData deletes every match and player.
func (f *Fixtures) ClearAllData() error {
	if err := f.db.Exec("DELETE FROM matches").Error; err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	if err := f.db.Exec("DELETE FROM players").Error; err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	return nil
}
