package cron

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/AWLL-inc/work-management-sub003/internal/repository"
)

// Scheduler handles scheduled maintenance tasks
type Scheduler struct {
	cron     *cron.Cron
	userRepo repository.UserRepository
}

// NewScheduler creates a new scheduler
func NewScheduler(userRepo repository.UserRepository) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		userRepo: userRepo,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every day at 3 AM - Clean up expired refresh tokens
	s.cron.AddFunc("0 3 * * *", func() {
		log.Println("[Cron] Running refresh token cleanup...")
		s.cleanupExpiredRefreshTokens()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

func (s *Scheduler) cleanupExpiredRefreshTokens() {
	ctx := context.Background()

	deleted, err := s.userRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		log.Printf("[Cron] Error deleting expired refresh tokens: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[Cron] Deleted %d expired refresh tokens", deleted)
	}
}
