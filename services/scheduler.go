// services/scheduler.go - Midnight rollover scheduling
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"ecoverse/database"
)

// ResetScheduler drives the day-boundary rollover. The cron entry fires at
// 00:00 UTC; an hourly catch-up and a run at startup cover missed ticks,
// which is safe because RunDailyReset decides from persisted state whether
// a user still needs today's reset.
type ResetScheduler struct {
	scheduler *gocron.Scheduler
}

var resetScheduler *ResetScheduler

// InitResetScheduler initializes the singleton scheduler.
func InitResetScheduler() {
	resetScheduler = &ResetScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// GetResetScheduler returns the initialized scheduler.
func GetResetScheduler() *ResetScheduler {
	return resetScheduler
}

// Start schedules the rollover jobs and runs one catch-up pass immediately.
func (s *ResetScheduler) Start() {
	s.scheduler.Cron("0 0 * * *").Do(s.runReset)
	s.scheduler.Every(1).Hour().Do(s.runReset)
	s.scheduler.StartAsync()

	go s.runReset()

	log.Println("🕒 Kunlik yangilanish scheduler'i ishga tushdi")
}

// Stop terminates the scheduled jobs.
func (s *ResetScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *ResetScheduler) runReset() {
	if err := RunDailyReset(database.GetDB()); err != nil {
		log.Printf("Daily reset tick failed: %v", err)
	}
}
