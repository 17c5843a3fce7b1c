package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayHours() *WorkingHours {
	return &WorkingHours{
		Start: MustClock("09:00"),
		End:   MustClock("18:00"),
		Days:  []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
}

func TestWorkingHours_Covers(t *testing.T) {
	wh := weekdayHours()
	span := func(day time.Time, from, to string) TimeRange {
		return TimeRange{Start: MustClock(from).On(day), End: MustClock(to).On(day)}
	}

	assert.True(t, wh.Covers(span(testMonday, "09:00", "18:00")))
	assert.False(t, wh.Covers(span(testMonday, "08:45", "09:30")))
	assert.False(t, wh.Covers(span(testMonday, "17:30", "18:15")))
	assert.False(t, wh.Covers(span(testMonday.AddDate(0, 0, 5), "10:00", "11:00")), "saturday is off")
}

func TestBreakTime_AppliesOn(t *testing.T) {
	daily := BreakTime{Start: MustClock("13:00"), End: MustClock("13:30")}
	assert.True(t, daily.AppliesOn(testMonday))
	assert.True(t, daily.AppliesOn(testMonday.AddDate(0, 0, 6)))

	fridays := BreakTime{Start: MustClock("13:00"), End: MustClock("14:00"), Days: []time.Weekday{time.Friday}}
	assert.False(t, fridays.AppliesOn(testMonday))
	assert.True(t, fridays.AppliesOn(testMonday.AddDate(0, 0, 4)))

	once := testMonday.AddDate(0, 0, 1)
	oneOff := BreakTime{Start: MustClock("15:00"), End: MustClock("16:00"), Date: &once, Days: []time.Weekday{time.Monday}}
	assert.True(t, oneOff.AppliesOn(once.Add(17*time.Hour)))
	assert.False(t, oneOff.AppliesOn(testMonday), "a dated break ignores its weekdays")

	r := oneOff.RangeOn(once)
	assert.Equal(t, once.Add(15*time.Hour), r.Start)
	assert.Equal(t, 60, r.Minutes())
}

func TestBarber_Validate(t *testing.T) {
	b := &Barber{Name: "Ana", WorkingHours: weekdayHours(), Available: true}
	require.NoError(t, b.Validate())

	b.Name = ""
	assert.ErrorContains(t, b.Validate(), "name")

	b.Name = "Ana"
	b.WorkingHours = &WorkingHours{Start: MustClock("18:00"), End: MustClock("09:00"), Days: []time.Weekday{time.Monday}}
	assert.ErrorContains(t, b.Validate(), "working hours")

	b.WorkingHours = &WorkingHours{Start: MustClock("09:00"), End: MustClock("18:00")}
	assert.ErrorContains(t, b.Validate(), "active day")

	b.WorkingHours = nil
	b.Breaks = []BreakTime{{Start: MustClock("14:00"), End: MustClock("13:00")}}
	assert.ErrorContains(t, b.Validate(), "break 0")
}

func TestBarber_WorkdayAndSkills(t *testing.T) {
	b := &Barber{Name: "Ana", Skills: []string{"fade", "beard"}}
	assert.Equal(t, 8*60, b.WorkdayMinutes(), "default workday without hours")

	b.WorkingHours = weekdayHours()
	assert.Equal(t, 9*60, b.WorkdayMinutes())

	assert.True(t, b.HasSkill("beard"))
	assert.False(t, b.HasSkill("color"))
}

func TestFindBarber(t *testing.T) {
	barbers := []Barber{{ID: "b1", Name: "Ana"}, {ID: "b2", Name: "Ben"}}
	got := FindBarber(barbers, "b2")
	require.NotNil(t, got)
	assert.Equal(t, "Ben", got.Name)
	assert.Nil(t, FindBarber(barbers, "b3"))
}

func TestClientPreferences(t *testing.T) {
	p := &ClientPreferences{
		ClientID:         "c1",
		PreferredTimes:   []TimeWindow{{Start: MustClock("09:00"), End: MustClock("12:00")}},
		AvoidTimes:       []TimeWindow{{Start: MustClock("17:00"), End: MustClock("19:00")}},
		PreferredDays:    []time.Weekday{time.Saturday},
		FlexibilityScore: 0.5,
	}
	require.NoError(t, p.Validate())
	assert.True(t, p.PrefersTime(MustClock("11:59")))
	assert.False(t, p.PrefersTime(MustClock("12:00")))
	assert.True(t, p.AvoidsTime(MustClock("18:00")))
	assert.True(t, p.PrefersDay(time.Saturday))
	assert.False(t, p.PrefersDay(time.Monday))

	p.FlexibilityScore = 1.5
	assert.ErrorContains(t, p.Validate(), "flexibility")
	p.FlexibilityScore = 1
	p.ClientID = ""
	assert.ErrorContains(t, p.Validate(), "client id")
}

func TestBusinessRules_ValidateAndMerge(t *testing.T) {
	r := DefaultBusinessRules()
	require.NoError(t, r.Validate())
	assert.True(t, r.InPeakHours(MustClock("10:30")))
	assert.False(t, r.InPeakHours(MustClock("13:00")))
	assert.True(t, r.InPeakHours(MustClock("18:59")))

	notice := 12
	weekends := true
	merged := r.Merge(BusinessRulesPatch{MinimumNoticeHours: &notice, AllowWeekendScheduling: &weekends})
	assert.Equal(t, 12, merged.MinimumNoticeHours)
	assert.True(t, merged.AllowWeekendScheduling)
	assert.Equal(t, 3, merged.MaxReschedulingsPerClient, "unset fields stay")
	assert.Equal(t, 85.0, merged.TargetUtilizationPct)
	assert.Equal(t, 24, r.MinimumNoticeHours, "merge does not mutate the receiver")

	peaks := []TimeWindow{{Start: MustClock("12:00"), End: MustClock("13:00")}}
	merged = r.Merge(BusinessRulesPatch{PeakHours: &peaks})
	assert.True(t, merged.InPeakHours(MustClock("12:30")))
	assert.False(t, merged.InPeakHours(MustClock("10:30")))

	over := 120.0
	assert.ErrorContains(t, r.Merge(BusinessRulesPatch{TargetUtilizationPct: &over}).Validate(), "target utilization")
	negative := -1
	assert.ErrorContains(t, r.Merge(BusinessRulesPatch{MaxReschedulingsPerClient: &negative}).Validate(), "max reschedulings")
}
