package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweepable is any cache that can evict its expired entries. Sweeping only
// bounds memory; lazy expiry on read keeps the caches correct without it.
type Sweepable interface {
	Sweep() int
}

// Target names a cache for log output.
type Target struct {
	Name  string
	Cache Sweepable
}

// Scheduler periodically sweeps expired entries out of the caches.
type Scheduler struct {
	scheduler *gocron.Scheduler
	targets   []Target
	interval  time.Duration
}

// New creates a new Scheduler.
func New(targets []Target, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		targets:   targets,
		interval:  interval,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.targets) == 0 {
		log.Println("scheduler: no caches configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		for _, t := range s.targets {
			if removed := t.Cache.Sweep(); removed > 0 {
				log.Printf("scheduler: swept %d expired entries from %s cache", removed, t.Name)
			}
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
