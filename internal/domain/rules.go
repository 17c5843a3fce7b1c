package domain

import "fmt"

// BusinessRules are the shop-wide constraints the auto-rescheduler honours.
type BusinessRules struct {
	PeakHours                 []TimeWindow
	MinimumNoticeHours        int
	MaxReschedulingsPerClient int
	TargetUtilizationPct      float64
	AllowWeekendScheduling    bool
}

func DefaultBusinessRules() BusinessRules {
	return BusinessRules{
		PeakHours: []TimeWindow{
			{Start: 10 * 60, End: 12 * 60},
			{Start: 16 * 60, End: 19 * 60},
		},
		MinimumNoticeHours:        24,
		MaxReschedulingsPerClient: 3,
		TargetUtilizationPct:      85,
		AllowWeekendScheduling:    false,
	}
}

func (r BusinessRules) Validate() error {
	if r.MinimumNoticeHours < 0 {
		return fmt.Errorf("minimum notice hours must not be negative, got %d", r.MinimumNoticeHours)
	}
	if r.MaxReschedulingsPerClient < 0 {
		return fmt.Errorf("max reschedulings per client must not be negative, got %d", r.MaxReschedulingsPerClient)
	}
	if r.TargetUtilizationPct < 0 || r.TargetUtilizationPct > 100 {
		return fmt.Errorf("target utilization must be between 0 and 100, got %.1f", r.TargetUtilizationPct)
	}
	return nil
}

// InPeakHours reports whether c falls in any peak window.
func (r BusinessRules) InPeakHours(c ClockTime) bool {
	return anyWindowContains(r.PeakHours, c)
}

// BusinessRulesPatch carries a partial update; nil fields are left unchanged.
type BusinessRulesPatch struct {
	PeakHours                 *[]TimeWindow
	MinimumNoticeHours        *int
	MaxReschedulingsPerClient *int
	TargetUtilizationPct      *float64
	AllowWeekendScheduling    *bool
}

// Merge returns a copy of r with every non-nil patch field applied.
func (r BusinessRules) Merge(p BusinessRulesPatch) BusinessRules {
	if p.PeakHours != nil {
		r.PeakHours = append([]TimeWindow(nil), (*p.PeakHours)...)
	}
	r.MinimumNoticeHours = ValueOr(r.MinimumNoticeHours, p.MinimumNoticeHours)
	r.MaxReschedulingsPerClient = ValueOr(r.MaxReschedulingsPerClient, p.MaxReschedulingsPerClient)
	r.TargetUtilizationPct = ValueOr(r.TargetUtilizationPct, p.TargetUtilizationPct)
	r.AllowWeekendScheduling = ValueOr(r.AllowWeekendScheduling, p.AllowWeekendScheduling)
	return r
}
