package reschedule

import (
	"fmt"

	"github.com/alexanderramin/chairside/internal/domain"
)

// Preferences bound the candidate search. Use DefaultPreferences and
// override fields.
type Preferences struct {
	MaxDaysFromOriginal  int
	PreferredWindows     []domain.TimeWindow
	SkipWeekends         bool
	RespectClientDays    bool
	PreferSameBarber     bool
	AllowShorterDuration bool
	// MaxCascadeDepth is how many rounds of knock-on shifts are explored.
	// Zero disables cascade analysis.
	MaxCascadeDepth  int
	CandidateStepMin int
}

func DefaultPreferences() Preferences {
	return Preferences{
		MaxDaysFromOriginal:  7,
		PreferredWindows:     []domain.TimeWindow{{Start: 9 * 60, End: 18 * 60}},
		SkipWeekends:         true,
		RespectClientDays:    true,
		PreferSameBarber:     true,
		AllowShorterDuration: false,
		MaxCascadeDepth:      1,
		CandidateStepMin:     15,
	}
}

func (p Preferences) Validate() error {
	if p.MaxDaysFromOriginal < 0 {
		return fmt.Errorf("max days from original must not be negative, got %d", p.MaxDaysFromOriginal)
	}
	if len(p.PreferredWindows) == 0 {
		return fmt.Errorf("at least one preferred window is required")
	}
	for _, w := range p.PreferredWindows {
		if w.End <= w.Start || w.Start < 0 || w.End > domain.MinutesPerDay {
			return fmt.Errorf("invalid preferred window %s", w)
		}
	}
	if p.MaxCascadeDepth < 0 {
		return fmt.Errorf("max cascade depth must not be negative, got %d", p.MaxCascadeDepth)
	}
	if p.CandidateStepMin <= 0 {
		return fmt.Errorf("candidate step must be positive, got %d", p.CandidateStepMin)
	}
	return nil
}

func (p Preferences) clone() Preferences {
	p.PreferredWindows = append([]domain.TimeWindow(nil), p.PreferredWindows...)
	return p
}
