// file: internals/features/students/marks/service/student_mark_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	model "studentmarks_backend/internals/features/students/marks/model"
	"studentmarks_backend/internals/features/students/marks/repository"
)

const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeInvalidID = "invalid_id"
	OutcomeError     = "error"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "student_marks_submissions_total",
		Help: "Student mark submissions by outcome.",
	}, []string{"outcome"})

	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "student_marks_lookups_total",
		Help: "Student mark lookups by outcome.",
	}, []string{"outcome"})
)

type StudentMarkService struct {
	Store repository.StudentMarkStore
	// Timeout bounds each storage call; 0 = pakai deadline dari ctx saja.
	Timeout time.Duration
}

func NewStudentMarkService(store repository.StudentMarkStore, timeout time.Duration) *StudentMarkService {
	return &StudentMarkService{Store: store, Timeout: timeout}
}

func (s *StudentMarkService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

// Submit persists one record and returns the identifier the store assigned.
// No retry: a failure is reported once to the caller.
func (s *StudentMarkService) Submit(ctx context.Context, rec *model.StudentMarkModel) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.Store.Create(ctx, rec)
	if err != nil {
		submissionsTotal.WithLabelValues(OutcomeError).Inc()
		log.Printf("[STUDENT_MARKS][SUBMIT] ❌ store error: %v", err)
		return "", err
	}

	submissionsTotal.WithLabelValues(OutcomeSuccess).Inc()
	log.Printf("[STUDENT_MARKS][SUBMIT] ✅ id=%s total=%d avg=%.2f",
		id, rec.StudentMarkTotalMarks, rec.StudentMarkAverageMarks)
	return id, nil
}

// GetByID performs exactly one lookup. Not-found is returned as
// repository.ErrStudentMarkNotFound and is not logged as a failure.
func (s *StudentMarkService) GetByID(ctx context.Context, id string) (*model.StudentMarkModel, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.Store.FindByID(ctx, id)
	switch {
	case err == nil:
		lookupsTotal.WithLabelValues(OutcomeSuccess).Inc()
		return rec, nil
	case errors.Is(err, repository.ErrStudentMarkNotFound):
		lookupsTotal.WithLabelValues(OutcomeNotFound).Inc()
		return nil, err
	case errors.Is(err, repository.ErrInvalidStudentMarkID):
		lookupsTotal.WithLabelValues(OutcomeInvalidID).Inc()
		log.Printf("[STUDENT_MARKS][RESULT] ❌ invalid id: %v", err)
		return nil, err
	default:
		lookupsTotal.WithLabelValues(OutcomeError).Inc()
		log.Printf("[STUDENT_MARKS][RESULT] ❌ store error id=%q: %v", id, err)
		return nil, err
	}
}

// Ping dipakai /health.
func (s *StudentMarkService) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Store.Ping(ctx)
}
