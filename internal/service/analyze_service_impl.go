package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/google/uuid"
)

type analyzeService struct {
	appointments repository.AppointmentRepo
	barbers      repository.BarberRepo
	runs         repository.AnalysisRunRepo
	engine       *conflict.Engine
	observer     UseCaseObserver
}

func NewAnalyzeService(
	appointments repository.AppointmentRepo,
	barbers repository.BarberRepo,
	runs repository.AnalysisRunRepo,
	engine *conflict.Engine,
	observers ...UseCaseObserver,
) AnalyzeService {
	return &analyzeService{
		appointments: appointments,
		barbers:      barbers,
		runs:         runs,
		engine:       engine,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *analyzeService) Analyze(ctx context.Context, req contract.AnalyzeRequest) (resp *contract.AnalyzeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { reportUseCase(ctx, s.observer, "analyze", startedAt, fields, &err) }()

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	if (req.AppointmentID == "") == (req.Candidate == nil) {
		return nil, &contract.AnalyzeError{
			Code:    contract.AnalyzeErrInvalidCandidate,
			Message: "exactly one of appointment id or candidate is required",
		}
	}

	var candidate domain.Appointment
	if req.AppointmentID != "" {
		stored, getErr := s.appointments.GetByID(ctx, req.AppointmentID)
		if getErr != nil {
			if errors.Is(getErr, repository.ErrNotFound) {
				return nil, &contract.AnalyzeError{
					Code:    contract.AnalyzeErrUnknownAppointment,
					Message: fmt.Sprintf("appointment %s not found", req.AppointmentID),
				}
			}
			return nil, getErr
		}
		candidate = *stored
	} else {
		candidate = *req.Candidate
		if vErr := candidate.Validate(); vErr != nil {
			return nil, &contract.AnalyzeError{Code: contract.AnalyzeErrInvalidCandidate, Message: vErr.Error()}
		}
	}
	fields["barber_id"] = candidate.BarberID

	roster, bookings, err := loadDayBoard(ctx, s.barbers, s.appointments, candidate.StartTime)
	if err != nil {
		return nil, err
	}

	analysis := s.engine.Analyze(candidate, bookings, roster)
	fields["risk_score"] = analysis.RiskScore
	fields["conflicts"] = len(analysis.Conflicts)

	resp = &contract.AnalyzeResponse{Analysis: analysis, Barbers: roster}
	if req.Record {
		run := analysisRun(&analysis, now)
		if err = s.runs.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("recording analysis: %w", err)
		}
		resp.RunID = run.ID
	}
	return resp, nil
}

func (s *analyzeService) History(ctx context.Context, limit int) ([]*domain.AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.runs.ListRecent(ctx, limit)
}

func analysisRun(a *conflict.Analysis, now time.Time) *domain.AnalysisRun {
	run := &domain.AnalysisRun{
		ID:            uuid.New().String(),
		AppointmentID: a.Candidate.ID,
		BarberID:      a.Candidate.BarberID,
		StartTime:     a.Candidate.StartTime,
		DurationMin:   a.Candidate.Range().Minutes(),
		RiskScore:     a.RiskScore,
		ConflictCount: len(a.Conflicts),
		CreatedAt:     now,
	}
	if len(a.Recommendations) > 0 {
		run.TopStrategy = string(a.Recommendations[0].Kind)
	}
	return run
}
