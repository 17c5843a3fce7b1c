package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a shop snapshot.
type ImportSchema struct {
	Barbers      []BarberImport      `json:"barbers"`
	Appointments []AppointmentImport `json:"appointments"`
	Clients      []ClientImport      `json:"clients,omitempty"`
	Rules        *RulesImport        `json:"rules,omitempty"`
}

// BarberImport defines a barber in the import file. Ref is local to the file
// and is replaced by a generated id.
type BarberImport struct {
	Ref          string              `json:"ref"`
	Name         string              `json:"name"`
	Email        string              `json:"email,omitempty"`
	WorkingHours *WorkingHoursImport `json:"working_hours,omitempty"`
	Breaks       []BreakImport       `json:"breaks,omitempty"`
	Skills       []string            `json:"skills,omitempty"`
	Available    *bool               `json:"available,omitempty"`
}

type WorkingHoursImport struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// BreakImport is recurring on Days (every day when empty) or one-off on Date.
type BreakImport struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days,omitempty"`
	Date  *string  `json:"date,omitempty"`
	Label string   `json:"label,omitempty"`
}

type AppointmentImport struct {
	BarberRef       string  `json:"barber_ref"`
	Start           string  `json:"start"`
	End             *string `json:"end,omitempty"`
	DurationMin     int     `json:"duration_min"`
	ClientID        string  `json:"client_id,omitempty"`
	Client          string  `json:"client"`
	Service         string  `json:"service,omitempty"`
	Status          string  `json:"status,omitempty"`
	BufferBeforeMin *int    `json:"buffer_before_min,omitempty"`
	BufferAfterMin  *int    `json:"buffer_after_min,omitempty"`
	Priority        *int    `json:"priority,omitempty"`
}

type ClientImport struct {
	ClientID          string   `json:"client_id"`
	PreferredTimes    []string `json:"preferred_times,omitempty"`
	AvoidTimes        []string `json:"avoid_times,omitempty"`
	PreferredDays     []string `json:"preferred_days,omitempty"`
	Flexibility       *float64 `json:"flexibility,omitempty"`
	ReschedulingCount int      `json:"rescheduling_count,omitempty"`
}

// RulesImport is a partial business-rules update; omitted fields keep their
// stored values.
type RulesImport struct {
	PeakHours                 []string `json:"peak_hours,omitempty"`
	MinimumNoticeHours        *int     `json:"minimum_notice_hours,omitempty"`
	MaxReschedulingsPerClient *int     `json:"max_reschedulings_per_client,omitempty"`
	TargetUtilizationPct      *float64 `json:"target_utilization_pct,omitempty"`
	AllowWeekendScheduling    *bool    `json:"allow_weekend_scheduling,omitempty"`
}

// LoadImportSchema reads and parses a snapshot JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
