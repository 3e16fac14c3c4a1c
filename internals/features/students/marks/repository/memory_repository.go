// file: internals/features/students/marks/repository/memory_repository.go
package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	model "studentmarks_backend/internals/features/students/marks/model"
)

// MemoryStudentMarkStore keeps records in process memory (STORE_DRIVER=memory).
// Data hilang saat restart; dipakai untuk dev lokal dan test.
type MemoryStudentMarkStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]model.StudentMarkModel
}

func NewMemoryStudentMarkStore() *MemoryStudentMarkStore {
	return &MemoryStudentMarkStore{records: map[uuid.UUID]model.StudentMarkModel{}}
}

func cloneStudentMark(rec model.StudentMarkModel) model.StudentMarkModel {
	rec.Subjects = append([]model.StudentMarkSubjectModel(nil), rec.Subjects...)
	return rec
}

func (s *MemoryStudentMarkStore) Create(ctx context.Context, rec *model.StudentMarkModel) (string, error) {
	if rec == nil {
		return "", errors.New("nil student mark")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec.StudentMarkID = uuid.New()
	rec.StudentMarkCreatedAt = time.Now()
	for i := range rec.Subjects {
		rec.Subjects[i].StudentMarkSubjectID = uuid.New()
		rec.Subjects[i].StudentMarkSubjectStudentMarkID = rec.StudentMarkID
	}

	s.mu.Lock()
	s.records[rec.StudentMarkID] = cloneStudentMark(*rec)
	s.mu.Unlock()

	return rec.StudentMarkID.String(), nil
}

func (s *MemoryStudentMarkStore) FindByID(ctx context.Context, id string) (*model.StudentMarkModel, error) {
	uid, err := ParseStudentMarkID(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	rec, ok := s.records[uid]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrStudentMarkNotFound
	}
	out := cloneStudentMark(rec)
	return &out, nil
}

// Len returns the number of stored records.
func (s *MemoryStudentMarkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStudentMarkStore) Ping(context.Context) error  { return nil }
func (s *MemoryStudentMarkStore) Close(context.Context) error { return nil }
