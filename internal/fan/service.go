package fan

import (
	"context"
	"fmt"
	"time"

	"argonone-ng/internal/config"
)

var afterFn = time.After

// Service owns the fan: it is the only writer of the fan level for the life
// of the process, and it leaves the fan off on the way out.
type Service struct {
	interval time.Duration
	table    StepTable
	constant *int

	writer   LevelWriter
	readTemp func() (float64, error)

	// current is the last applied level; owned by the Run loop.
	current int
}

func New(cfg config.FanConfig, w LevelWriter, readTemp func() (float64, error)) (*Service, error) {
	s := &Service{
		interval: cfg.Delay,
		writer:   w,
		readTemp: readTemp,
	}
	if s.interval <= 0 {
		s.interval = 30 * time.Second
	}

	if cfg.Dynamic {
		t, err := NewStepTable(cfg.Steps)
		if err != nil {
			return nil, err
		}
		s.table = t
	} else {
		if cfg.ConstantLevel == nil {
			return nil, fmt.Errorf("fan: constant level not configured")
		}
		s.constant = cfg.ConstantLevel
	}
	return s, nil
}

// Run drives the fan until ctx is canceled. Any temperature-read or I2C
// failure is returned as-is; the caller is expected to treat it as fatal.
func (s *Service) Run(ctx context.Context) error {
	if s.constant != nil {
		if err := s.writer.SetLevel(byte(*s.constant)); err != nil {
			return fmt.Errorf("fan: write level: %w", err)
		}
		<-ctx.Done()
		return s.stop()
	}

	for {
		if ctx.Err() != nil {
			return s.stop()
		}

		tempC, err := s.readTemp()
		if err != nil {
			return fmt.Errorf("fan: %w", err)
		}
		target := s.table.Level(tempC)

		// Hold the higher speed one extra interval before dropping, so a
		// temperature tick back up does not immediately re-raise it.
		if target < s.current {
			if !s.sleep(ctx) {
				return s.stop()
			}
		}
		s.current = target
		if err := s.writer.SetLevel(byte(target)); err != nil {
			return fmt.Errorf("fan: write level: %w", err)
		}

		if !s.sleep(ctx) {
			return s.stop()
		}
	}
}

func (s *Service) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-afterFn(s.interval):
		return true
	}
}

func (s *Service) stop() error {
	if err := s.writer.SetLevel(0); err != nil {
		return fmt.Errorf("fan: write level: %w", err)
	}
	return nil
}
