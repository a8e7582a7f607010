package bot

import (
	"log"
	"sync"
	"time"

	"personnel-bot/utils"
)

const (
	cacheSweepInterval    = 10 * time.Minute
	cartSweepInterval     = 30 * time.Minute
	cooldownSweepInterval = 1 * time.Hour
)

// Scheduler manages all scheduled tasks.
type Scheduler struct {
	bot  *Bot
	done chan struct{}
	wg   sync.WaitGroup
}

// NewScheduler creates a new scheduler.
func NewScheduler(bot *Bot) *Scheduler {
	return &Scheduler{
		bot:  bot,
		done: make(chan struct{}),
	}
}

// Start begins all scheduled tasks.
func (s *Scheduler) Start() {
	s.wg.Add(4)

	go s.runLeaveCleanup()
	go s.runCacheSweep()
	go s.runCartSweep()
	go s.runCooldownSweep()
}

// Stop terminates all scheduled tasks gracefully.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

// runLeaveCleanup drops yesterday's leave requests at midnight Moscow
// time, every day.
func (s *Scheduler) runLeaveCleanup() {
	defer s.wg.Done()
	for {
		now := utils.MoscowTime()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		wait := midnight.Sub(now)
		log.Printf("Leave request cleanup scheduled in %s", wait.Round(time.Minute))

		select {
		case <-s.done:
			return
		case <-time.After(wait):
			if err := s.bot.Leave.CleanupOldData(); err != nil {
				log.Printf("Error cleaning up leave requests: %v", err)
				utils.LogError(s.bot.GetConfig().LogWebhookURL, "scheduler", "leave_cleanup", err.Error())
			}
			// Avoid re-running within the same minute.
			select {
			case <-s.done:
				return
			case <-time.After(time.Minute):
			}
		}
	}
}

func (s *Scheduler) runCacheSweep() {
	defer s.wg.Done()
	ticker := time.NewTicker(cacheSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.bot.Personnel.SweepCache()
		}
	}
}

func (s *Scheduler) runCartSweep() {
	defer s.wg.Done()
	ticker := time.NewTicker(cartSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if removed := s.bot.Carts.SweepStale(); removed > 0 {
				log.Printf("Removed %d stale warehouse carts", removed)
			}
		}
	}
}

func (s *Scheduler) runCooldownSweep() {
	defer s.wg.Done()
	ticker := time.NewTicker(cooldownSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.bot.Warehouse.SweepCooldowns()
		}
	}
}
