package services

import (
	"github.com/xXTechXx/scalcetting-tracker/core/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db     *gorm.DB
	appEnv string
}

func NewAdminService(db *gorm.DB, appEnv string) *AdminService {
	return &AdminService{
		db:     db,
		appEnv: appEnv,
	}
}

// ResetAll truncates all player and match data. It is a development helper
// and refuses to run in a production deployment; the guard lives here rather
// than in the HTTP layer so no other caller can bypass it.
func (s *AdminService) ResetAll() error {
	if s.appEnv == "production" {
		return models.ErrOperationForbidden
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return classifyStoreError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Matches first because of the player foreign keys
	if err := tx.Exec("DELETE FROM matches").Error; err != nil {
		tx.Rollback()
		return classifyStoreError(err)
	}
	if err := tx.Exec("DELETE FROM players").Error; err != nil {
		tx.Rollback()
		return classifyStoreError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return classifyStoreError(err)
	}

	return nil
}
