package core

import (
	"log"

	"github.com/xXTechXx/scalcetting-tracker/core/cron"
	"github.com/xXTechXx/scalcetting-tracker/core/handlers"
	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler  *handlers.PlayerHandler
	PlayerService  *services.PlayerService
	MatchHandler   *handlers.MatchHandler
	MatchService   *services.MatchService
	StatsHandler   *handlers.StatsHandler
	StatsService   *services.StatsService
	AdminHandler   *handlers.AdminHandler
	AdminService   *services.AdminService
	RankingService *services.RankingService
	Scheduler      *cron.Scheduler
	db             *gorm.DB
}

func NewModule(db *gorm.DB, appEnv string) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	adminService := services.NewAdminService(db, appEnv)
	adminHandler := handlers.NewAdminHandler(adminService)

	rankingService := services.NewRankingService(db)
	scheduler := cron.NewScheduler(rankingService)

	return &Module{
		PlayerHandler:  playerHandler,
		PlayerService:  playerService,
		MatchHandler:   matchHandler,
		MatchService:   matchService,
		StatsHandler:   statsHandler,
		StatsService:   statsService,
		AdminHandler:   adminHandler,
		AdminService:   adminService,
		RankingService: rankingService,
		Scheduler:      scheduler,
		db:             db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/top", m.PlayerHandler.GetTopPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.POST("", m.PlayerHandler.CreatePlayer)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/recent", m.MatchHandler.GetRecentMatches)
		matches.GET("/export", m.MatchHandler.ExportMatches)
		matches.POST("", m.MatchHandler.RecordMatch)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
	r.POST("/admin/reset", m.AdminHandler.ResetAll)
}

// StartScheduler starts the cron scheduler for rank recalculation
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
