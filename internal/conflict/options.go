package conflict

import (
	"fmt"

	"github.com/alexanderramin/chairside/internal/domain"
)

// Options configures an Engine. Use DefaultOptions and override fields.
type Options struct {
	BufferMin               int
	AllowBackToBack         bool
	RespectWorkingHours     bool
	RespectBreaks           bool
	MaxReschedulingRangeMin int
	SlotStepMin             int
	StrategyOrder           []domain.StrategyKind
}

func DefaultOptions() Options {
	return Options{
		BufferMin:               15,
		AllowBackToBack:         false,
		RespectWorkingHours:     true,
		RespectBreaks:           true,
		MaxReschedulingRangeMin: 240,
		SlotStepMin:             15,
		StrategyOrder: []domain.StrategyKind{
			domain.StrategyReschedule,
			domain.StrategyReassignBarber,
			domain.StrategyAdjustDuration,
			domain.StrategySplit,
		},
	}
}

// Validate rejects option sets the engine cannot run with.
func (o Options) Validate() error {
	if o.BufferMin < 0 {
		return fmt.Errorf("buffer must not be negative, got %d", o.BufferMin)
	}
	if o.MaxReschedulingRangeMin < 0 {
		return fmt.Errorf("max rescheduling range must not be negative, got %d", o.MaxReschedulingRangeMin)
	}
	if o.SlotStepMin <= 0 {
		return fmt.Errorf("slot step must be positive, got %d", o.SlotStepMin)
	}
	seen := make(map[domain.StrategyKind]bool, len(o.StrategyOrder))
	for _, k := range o.StrategyOrder {
		if !domain.ValidStrategyKinds[string(k)] {
			return fmt.Errorf("unknown strategy %q in strategy order", k)
		}
		if seen[k] {
			return fmt.Errorf("strategy %q listed twice in strategy order", k)
		}
		seen[k] = true
	}
	return nil
}
