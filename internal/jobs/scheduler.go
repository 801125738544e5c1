package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic background jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
	lowStock  *LowStockChecker
}

func NewScheduler(lowStock *LowStockChecker, lowStockInterval time.Duration) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{scheduler: scheduler, lowStock: lowStock}

	_, err = scheduler.NewJob(
		gocron.DurationJob(lowStockInterval),
		gocron.NewTask(func() {
			if _, err := s.lowStock.Check(context.Background()); err != nil {
				log.Error().Err(err).Msg("low stock sweep failed")
			}
		}),
		gocron.WithName("low-stock-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	log.Info().Msg("starting background job scheduler")
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	log.Info().Msg("stopping background job scheduler")
	return s.scheduler.Shutdown()
}
