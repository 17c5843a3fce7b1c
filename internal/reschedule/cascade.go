package reschedule

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const (
	cascadeShiftMin     = 15
	cascadeConfidence   = 60
	cascadeImpact       = 2
	cascadeSatisfaction = 70
)

// cascade lists the bookings that moved would collide with, each shifted a
// quarter hour later. Shifted bookings are re-checked against the updated
// board up to MaxCascadeDepth rounds; a booking is never shifted twice.
// The result is advisory: a shifted slot is not guaranteed to be free.
func (e *Engine) cascade(moved domain.Appointment, existing []domain.Appointment) []Suggestion {
	if e.prefs.MaxCascadeDepth == 0 {
		return nil
	}
	visited := map[string]bool{moved.ID: true}
	var out []Suggestion
	e.cascadeFrom(moved, withMoved(existing, moved), visited, 1, &out)
	return out
}

func (e *Engine) cascadeFrom(moved domain.Appointment, board []domain.Appointment, visited map[string]bool, depth int, out *[]Suggestion) {
	var shifted []domain.Appointment
	for i := range board {
		other := &board[i]
		if visited[other.ID] || other.Status.Terminal() {
			continue
		}
		if !e.analyzer.Collides(&moved, other) {
			continue
		}
		visited[other.ID] = true
		duration := other.Range().Minutes()
		next := other.MoveTo(other.StartTime.Add(cascadeShiftMin*time.Minute), other.BarberID, duration)
		*out = append(*out, Suggestion{
			AppointmentID:       other.ID,
			ClientKey:           other.ClientKey(),
			OriginalStart:       other.StartTime,
			OriginalBarberID:    other.BarberID,
			OriginalDurationMin: duration,
			NewStartTime:        next.StartTime,
			NewBarberID:         other.BarberID,
			NewDurationMin:      duration,
			Confidence:          cascadeConfidence,
			Satisfaction:        cascadeSatisfaction,
			Impact:              cascadeImpact,
			Reasons: []Reason{{
				Code:    ReasonCascadeShift,
				Message: fmt.Sprintf("Displaced by moving %s; shifted %d minutes later", moved.ID, cascadeShiftMin),
			}},
			Business:     BusinessImpact{RetentionRisk: retentionRisk(cascadeSatisfaction)},
			CascadeOf:    moved.ID,
			CascadeDepth: depth,
		})
		shifted = append(shifted, next)
	}
	if depth >= e.prefs.MaxCascadeDepth || len(shifted) == 0 {
		return
	}
	for _, s := range shifted {
		board = withMoved(board, s)
	}
	for _, s := range shifted {
		e.cascadeFrom(s, board, visited, depth+1, out)
	}
}

// withMoved returns a copy of board with the booking sharing moved's id
// replaced by moved.
func withMoved(board []domain.Appointment, moved domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, len(board))
	copy(out, board)
	for i := range out {
		if out[i].ID == moved.ID {
			out[i] = moved
		}
	}
	return out
}

// withPlaced is withMoved that also adds moved when the board lacks it.
func withPlaced(board []domain.Appointment, moved domain.Appointment) []domain.Appointment {
	for _, a := range board {
		if a.ID == moved.ID {
			return withMoved(board, moved)
		}
	}
	return append(append([]domain.Appointment(nil), board...), moved)
}
