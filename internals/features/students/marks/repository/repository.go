// file: internals/features/students/marks/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	model "studentmarks_backend/internals/features/students/marks/model"
)

var (
	// ErrStudentMarkNotFound: id well-formed, tapi tidak ada record-nya.
	ErrStudentMarkNotFound = errors.New("student mark not found")
	// ErrInvalidStudentMarkID: id tidak sesuai format yang diterbitkan store.
	ErrInvalidStudentMarkID = errors.New("invalid student mark id")
)

// StudentMarkStore is the storage collaborator: it assigns the identifier on
// Create and looks records up by it.
type StudentMarkStore interface {
	Create(ctx context.Context, rec *model.StudentMarkModel) (string, error)
	FindByID(ctx context.Context, id string) (*model.StudentMarkModel, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// ParseStudentMarkID validates the textual identifier issued by a store.
func ParseStudentMarkID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil || u == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidStudentMarkID, id)
	}
	return u, nil
}

var (
	_ StudentMarkStore = (*GormStudentMarkStore)(nil)
	_ StudentMarkStore = (*MongoStudentMarkStore)(nil)
	_ StudentMarkStore = (*MemoryStudentMarkStore)(nil)
)
