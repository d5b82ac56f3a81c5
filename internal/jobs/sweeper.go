package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/RxV00/Forgptabinote/domain"
)

// Sweeper periodically purges expired reset token rows. Pure storage
// hygiene: expiry is enforced lazily at read time, so nothing breaks if
// this never runs.
type Sweeper struct {
	cron      *cron.Cron
	tokenRepo domain.ResetTokenRepository
	log       zerolog.Logger
}

// NewSweeper creates a new sweeper
func NewSweeper(tokenRepo domain.ResetTokenRepository, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		cron:      cron.New(),
		tokenRepo: tokenRepo,
		log:       log,
	}
}

// Start schedules the nightly sweep
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule, waiting briefly for a running sweep
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reset token sweep failed")
		return
	}
	if removed > 0 {
		s.log.Info().Int64("removed", removed).Msg("swept expired reset tokens")
	}
}
