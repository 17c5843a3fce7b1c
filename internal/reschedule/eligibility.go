package reschedule

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

// eligible applies the gate every appointment must pass before any slot is
// searched for it.
func (e *Engine) eligible(a *domain.Appointment, client *domain.ClientPreferences, now time.Time) (IneligibleReason, string, bool) {
	if a.Status.Terminal() {
		return IneligibleTerminal, fmt.Sprintf("Appointment is %s", a.Status), false
	}
	if a.Status == domain.StatusCancelled {
		return IneligibleCancelled, "Appointment was cancelled", false
	}
	if a.StartTime.Before(e.noticeCutoff(now)) {
		return IneligibleNotice, fmt.Sprintf("Starts within the %d-hour notice window", e.rules.MinimumNoticeHours), false
	}
	if client != nil && client.ReschedulingCount >= e.rules.MaxReschedulingsPerClient {
		return IneligibleLimit, fmt.Sprintf("Client already rescheduled %d times (limit %d)",
			client.ReschedulingCount, e.rules.MaxReschedulingsPerClient), false
	}
	return "", "", true
}

func (e *Engine) noticeCutoff(now time.Time) time.Time {
	return now.Add(time.Duration(e.rules.MinimumNoticeHours) * time.Hour)
}
