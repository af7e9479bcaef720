package cron

import (
	"log"

	"github.com/xXTechXx/scalcetting-tracker/core/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron           *cron.Cron
	rankingService *services.RankingService
}

func NewScheduler(rankingService *services.RankingService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:           c,
		rankingService: rankingService,
	}
}

// Start schedules the periodic jobs and starts the scheduler
func (s *Scheduler) Start() error {
	// Recalculate player ranks at minute 0 of every hour
	_, err := s.cron.AddFunc("0 0 * * * *", s.runRankRecalculation)
	if err != nil {
		log.Printf("Error scheduling rank recalculation job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

// RunNow triggers the rank recalculation immediately (useful for testing)
func (s *Scheduler) RunNow() {
	s.runRankRecalculation()
}

func (s *Scheduler) runRankRecalculation() {
	if err := s.rankingService.RecalculateRanks(); err != nil {
		log.Printf("Rank recalculation failed: %v", err)
		return
	}
	log.Println("Rank recalculation completed")
}
