package reschedule

import (
	"testing"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/stretchr/testify/assert"
)

func baseInput() scoreInput {
	orig := appt("c1", "b1", at(monday, 10, 30), 60)
	return scoreInput{
		original: &orig,
		start:    orig.StartTime,
		barberID: "b1",
		duration: 60,
		rules:    domain.DefaultBusinessRules(),
	}
}

func TestScoreCandidate_ClampsAtTheFloor(t *testing.T) {
	in := baseInput()
	saturday := monday.AddDate(0, 0, 5)
	in.start = at(saturday, 17, 0)
	in.barberID = "b2"
	in.duration = 30
	in.risk = 100
	in.client = &domain.ClientPreferences{
		ClientID:          "c",
		AvoidTimes:        []domain.TimeWindow{{Start: 0, End: domain.MinutesPerDay}},
		ReschedulingCount: 5,
	}

	s := scoreCandidate(in)

	assert.Equal(t, 0, s.Confidence())
	assert.GreaterOrEqual(t, s.Satisfaction(), 0)
	assert.Equal(t, 10, s.Impact())
	assert.NotEmpty(t, s.reasons)
}

func TestScoreCandidate_ClampsAtTheCeiling(t *testing.T) {
	in := baseInput()
	in.start = at(monday, 14, 0)
	in.client = &domain.ClientPreferences{
		ClientID:         "c",
		PreferredTimes:   []domain.TimeWindow{{Start: 13 * 60, End: 15 * 60}},
		PreferredDays:    []time.Weekday{time.Monday},
		FlexibilityScore: 1,
	}

	s := scoreCandidate(in)

	assert.Equal(t, 100, s.Confidence())
	assert.Equal(t, 100, s.Satisfaction())
	assert.Equal(t, 2, s.Impact())
}

func TestScoreCandidate_RangesHoldAcrossInputs(t *testing.T) {
	clients := []*domain.ClientPreferences{
		nil,
		{ClientID: "a", FlexibilityScore: 0},
		{ClientID: "b", FlexibilityScore: 1, ReschedulingCount: 9,
			AvoidTimes: []domain.TimeWindow{{Start: 9 * 60, End: 12 * 60}}},
		{ClientID: "c", PreferredDays: []time.Weekday{time.Friday},
			PreferredTimes: []domain.TimeWindow{{Start: 9 * 60, End: 18 * 60}}},
	}
	for _, client := range clients {
		for offset := -7; offset <= 7; offset++ {
			for _, risk := range []int{0, 10, 50, 100} {
				for _, dur := range []int{60, 45, 30} {
					for _, barber := range []string{"b1", "b2"} {
						in := baseInput()
						in.start = at(monday.AddDate(0, 0, offset), 9+offset%3, 15)
						in.duration = dur
						in.risk = risk
						in.barberID = barber
						in.client = client
						s := scoreCandidate(in)
						assert.True(t, s.Confidence() >= 0 && s.Confidence() <= 100)
						assert.True(t, s.Satisfaction() >= 0 && s.Satisfaction() <= 100)
						assert.True(t, s.Impact() >= 1 && s.Impact() <= 10)
					}
				}
			}
		}
	}
}

func TestScoreDistance(t *testing.T) {
	in := baseInput()
	in.start = in.original.StartTime.Add(4 * time.Hour)

	r := scoreDistance(in)
	assert.Equal(t, -5.0, r.ConfidenceDelta)
	assert.Equal(t, 1.0, r.ImpactDelta)

	in.client = &domain.ClientPreferences{ClientID: "c", FlexibilityScore: 0.7}
	r = scoreDistance(in)
	assert.Equal(t, -2.5, r.ConfidenceDelta, "flexible clients halve the penalty")

	in.client = nil
	in.start = in.original.StartTime.AddDate(0, 0, 5)
	r = scoreDistance(in)
	assert.Equal(t, -30.0, r.ConfidenceDelta)
	assert.Equal(t, 3.0, r.ImpactDelta)

	in.start = in.original.StartTime
	assert.Nil(t, scoreDistance(in))
}

func TestScoreShorter(t *testing.T) {
	in := baseInput()
	in.duration = 30

	r := scoreShorter(in)

	assert.Equal(t, ReasonShorter, r.Code)
	assert.Equal(t, -10.0, r.ConfidenceDelta)
	assert.Equal(t, -15.0, r.SatisfactionDelta)
	assert.Equal(t, 2.0, r.ImpactDelta)
}

func TestScoreOffPeakAndWeekend(t *testing.T) {
	in := baseInput()
	in.start = at(monday, 10, 30)
	assert.Nil(t, scoreOffPeak(in), "10:30 is peak")

	in.start = at(monday, 13, 0)
	assert.Equal(t, 5.0, scoreOffPeak(in).ConfidenceDelta)
	assert.Nil(t, scoreWeekend(in))

	in.start = at(monday.AddDate(0, 0, -1), 13, 0)
	assert.Equal(t, -40.0, scoreWeekend(in).ConfidenceDelta)

	in.rules.AllowWeekendScheduling = true
	assert.Nil(t, scoreWeekend(in))
}

func TestScoreHistoryThreshold(t *testing.T) {
	in := baseInput()
	in.client = &domain.ClientPreferences{ClientID: "c", ReschedulingCount: 1}
	assert.Nil(t, scoreHistory(in))

	in.client.ReschedulingCount = 2
	r := scoreHistory(in)
	assert.Equal(t, -10.0, r.ConfidenceDelta)
	assert.Equal(t, -15.0, r.SatisfactionDelta)
	assert.Equal(t, 2.0, r.ImpactDelta)
}
