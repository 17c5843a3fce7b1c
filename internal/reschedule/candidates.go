package reschedule

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const (
	maxRanked        = 5
	maxAlternatives  = 3
	confidenceFloor  = 50
	minimumDuration  = 15
	revenuePerMinute = 1.0
)

var shorterCuts = []int{15, 30}

type slot struct {
	start    time.Time
	barberID string
	duration int
}

type candidate struct {
	slot
	distance time.Duration
	score    score
	business BusinessImpact
}

func (c *candidate) suggestion(original *domain.Appointment) Suggestion {
	return Suggestion{
		AppointmentID:       original.ID,
		ClientKey:           original.ClientKey(),
		OriginalStart:       original.StartTime,
		OriginalBarberID:    original.BarberID,
		OriginalDurationMin: original.Range().Minutes(),
		NewStartTime:        c.start,
		NewBarberID:         c.barberID,
		NewDurationMin:      c.duration,
		Confidence:          c.score.Confidence(),
		Satisfaction:        c.score.Satisfaction(),
		Impact:              c.score.Impact(),
		Reasons:             c.score.reasons,
		Business:            c.business,
	}
}

func (c *candidate) alternative() Alternative {
	return Alternative{
		StartTime:    c.start,
		BarberID:     c.barberID,
		DurationMin:  c.duration,
		Confidence:   c.score.Confidence(),
		Satisfaction: c.score.Satisfaction(),
		Impact:       c.score.Impact(),
	}
}

// rankCandidates scores every slot for a and returns the best few that clear
// the confidence floor, highest confidence first.
func (e *Engine) rankCandidates(a *domain.Appointment, client *domain.ClientPreferences, board []domain.Appointment, barbers []domain.Barber, now time.Time) []candidate {
	baseline := e.analyzer.Analyze(*a, board, barbers).UtilizationPct
	originalMin := a.Range().Minutes()

	var out []candidate
	for _, s := range e.slots(a, client, barbers, e.noticeCutoff(now)) {
		moved := a.MoveTo(s.start, s.barberID, s.duration)
		analysis := e.analyzer.Analyze(moved, board, barbers)
		sc := scoreCandidate(scoreInput{
			original: a,
			start:    s.start,
			barberID: s.barberID,
			duration: s.duration,
			risk:     analysis.RiskScore,
			client:   client,
			rules:    e.rules,
		})
		if sc.Confidence() <= confidenceFloor {
			continue
		}
		out = append(out, candidate{
			slot:     s,
			distance: absDuration(s.start.Sub(a.StartTime)),
			score:    sc,
			business: BusinessImpact{
				RevenueDelta:     -float64(originalMin-s.duration) * revenuePerMinute,
				UtilizationDelta: math.Round((analysis.UtilizationPct-baseline)*10) / 10,
				RetentionRisk:    retentionRisk(sc.Satisfaction()),
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].score.Confidence(), out[j].score.Confidence()
		if ci != cj {
			return ci > cj
		}
		if out[i].distance != out[j].distance {
			return out[i].distance < out[j].distance
		}
		return out[i].start.Before(out[j].start)
	})
	if len(out) > maxRanked {
		out = out[:maxRanked]
	}
	return out
}

// slots enumerates every start, barber and duration worth scoring for a.
// Starts sit on the step grid inside each preferred window and the whole
// appointment must fit the window.
func (e *Engine) slots(a *domain.Appointment, client *domain.ClientPreferences, barbers []domain.Barber, cutoff time.Time) []slot {
	originalMin := a.Range().Minutes()
	durations := e.durations(originalMin)
	barberIDs := e.barberOrder(a.BarberID, barbers)
	origin := domain.StartOfDay(a.StartTime)
	step := domain.ClockTime(e.prefs.CandidateStepMin)

	type key struct {
		unix     int64
		barberID string
		duration int
	}
	seen := make(map[key]bool)
	var out []slot
	for offset := -e.prefs.MaxDaysFromOriginal; offset <= e.prefs.MaxDaysFromOriginal; offset++ {
		day := origin.AddDate(0, 0, offset)
		if e.prefs.SkipWeekends && domain.IsWeekend(day) {
			continue
		}
		if e.prefs.RespectClientDays && client != nil && len(client.PreferredDays) > 0 && !client.PrefersDay(day.Weekday()) {
			continue
		}
		for _, w := range e.prefs.PreferredWindows {
			for _, d := range durations {
				for c := w.Start; c+domain.ClockTime(d) <= w.End; c += step {
					start := c.On(day)
					if start.Before(cutoff) {
						continue
					}
					for _, b := range barberIDs {
						if b == a.BarberID && d == originalMin && start.Equal(a.StartTime) {
							continue
						}
						k := key{start.Unix(), b, d}
						if seen[k] {
							continue
						}
						seen[k] = true
						out = append(out, slot{start: start, barberID: b, duration: d})
					}
				}
			}
		}
	}
	return out
}

func (e *Engine) durations(original int) []int {
	out := []int{original}
	if !e.prefs.AllowShorterDuration {
		return out
	}
	for _, cut := range shorterCuts {
		d := max(minimumDuration, original-cut)
		if d < original && d != out[len(out)-1] {
			out = append(out, d)
		}
	}
	return out
}

// barberOrder lists the barbers to try, the original barber first.
func (e *Engine) barberOrder(original string, barbers []domain.Barber) []string {
	out := []string{original}
	if e.prefs.PreferSameBarber {
		return out
	}
	for _, b := range barbers {
		if b.ID != original && b.Available {
			out = append(out, b.ID)
		}
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
