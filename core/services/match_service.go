package services

import (
	"log"
	"time"

	"github.com/xXTechXx/scalcetting-tracker/core/models"
	"github.com/xXTechXx/scalcetting-tracker/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

func (s *MatchService) GetMatches() ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Order("created_at DESC").
		Preload("Team1Player1").
		Preload("Team1Player2").
		Preload("Team2Player1").
		Preload("Team2Player2").
		Find(&matches)

	if result.Error != nil {
		return nil, classifyStoreError(result.Error)
	}

	return matches, nil
}

func (s *MatchService) GetRecentMatches(limit int) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Order("created_at DESC").
		Limit(limit).
		Preload("Team1Player1").
		Preload("Team1Player2").
		Preload("Team2Player1").
		Preload("Team2Player2").
		Find(&matches)

	if result.Error != nil {
		return nil, classifyStoreError(result.Error)
	}

	return matches, nil
}

// RecordMatch applies the outcome of one two-a-side match: it recomputes the
// four involved players' ratings, updates their match counters and inserts
// the match row, all inside a single transaction. Either every write commits
// or none does. The returned result carries the per-team rating deltas so the
// caller can report rating movement without re-reading player state.
//
// Concurrent calls sharing a player serialize on the locked roster read: the
// second transaction observes the first's committed rating, never a stale one.
func (s *MatchService) RecordMatch(req models.RecordMatchRequest) (*models.RatingChangeResult, error) {
	if err := validateRosters(req); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, classifyStoreError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	ids := []uint{req.Team1[0], req.Team1[1], req.Team2[0], req.Team2[1]}

	// Fetch all four ratings in one locked read so the read-modify-write is
	// protected against lost updates.
	var players []models.Player
	query := tx.Where("id IN ?", ids)
	if tx.Dialector.Name() != "sqlite" {
		// sqlite (used in tests) has no FOR UPDATE; its single-writer lock
		// already serializes transactions.
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Find(&players).Error; err != nil {
		tx.Rollback()
		return nil, classifyStoreError(err)
	}
	if len(players) != 4 {
		tx.Rollback()
		return nil, models.ErrUnknownPlayer
	}

	ratingByID := make(map[uint]int, 4)
	for _, player := range players {
		ratingByID[player.ID] = player.Rating
	}

	teamRating1 := utils.TeamRating(ratingByID[req.Team1[0]], ratingByID[req.Team1[1]])
	teamRating2 := utils.TeamRating(ratingByID[req.Team2[0]], ratingByID[req.Team2[1]])

	outcome1, outcome2 := 0, 1
	if req.Winner == models.WinnerTeam1 {
		outcome1, outcome2 = 1, 0
	}

	delta1 := utils.ComputeRating(teamRating1, teamRating2, outcome1, utils.KFactor) - teamRating1
	delta2 := utils.ComputeRating(teamRating2, teamRating1, outcome2, utils.KFactor) - teamRating2

	if err := applyTeamResult(tx, req.Team1, delta1, req.Winner == models.WinnerTeam1); err != nil {
		tx.Rollback()
		return nil, classifyStoreError(err)
	}
	if err := applyTeamResult(tx, req.Team2, delta2, req.Winner == models.WinnerTeam2); err != nil {
		tx.Rollback()
		return nil, classifyStoreError(err)
	}

	match := models.Match{
		Team1Player1ID: req.Team1[0],
		Team1Player2ID: req.Team1[1],
		Team2Player1ID: req.Team2[0],
		Team2Player2ID: req.Team2[1],
		Winner:         req.Winner,
		CreatedAt:      time.Now(),
	}
	if err := tx.Create(&match).Error; err != nil {
		tx.Rollback()
		return nil, classifyStoreError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, classifyStoreError(err)
	}

	// Reload the match with participant names for display. The write is
	// committed at this point, so a failed reload must not surface as an
	// error: a retrying caller would record the match twice.
	var loaded models.Match
	if err := s.db.Preload("Team1Player1").
		Preload("Team1Player2").
		Preload("Team2Player1").
		Preload("Team2Player2").
		First(&loaded, match.ID).Error; err != nil {
		log.Printf("Failed to reload match %d with participants: %v", match.ID, err)
	} else {
		match = loaded
	}

	return &models.RatingChangeResult{
		Match:  &match,
		Delta1: delta1,
		Delta2: delta2,
	}, nil
}

// applyTeamResult moves both teammates by the same team delta and bumps their
// counters in lock-step, keeping matches_played == wins + losses.
func applyTeamResult(tx *gorm.DB, team []uint, delta int, won bool) error {
	updates := map[string]interface{}{
		"rating":         gorm.Expr("rating + ?", delta),
		"matches_played": gorm.Expr("matches_played + 1"),
	}
	if won {
		updates["wins"] = gorm.Expr("wins + 1")
	} else {
		updates["losses"] = gorm.Expr("losses + 1")
	}

	return tx.Model(&models.Player{}).
		Where("id IN ?", []uint{team[0], team[1]}).
		Updates(updates).Error
}

// validateRosters defends the recorder against malformed teams even though
// the HTTP layer validates payload shapes before calling in.
func validateRosters(req models.RecordMatchRequest) error {
	if len(req.Team1) != 2 || len(req.Team2) != 2 {
		return models.ErrInvalidTeamComposition
	}
	if req.Winner != models.WinnerTeam1 && req.Winner != models.WinnerTeam2 {
		return models.ErrInvalidTeamComposition
	}

	seen := make(map[uint]bool, 4)
	for _, id := range [4]uint{req.Team1[0], req.Team1[1], req.Team2[0], req.Team2[1]} {
		if seen[id] {
			return models.ErrInvalidTeamComposition
		}
		seen[id] = true
	}

	return nil
}
