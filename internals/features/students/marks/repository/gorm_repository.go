// file: internals/features/students/marks/repository/gorm_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "studentmarks_backend/internals/features/students/marks/model"
)

type GormStudentMarkStore struct {
	DB *gorm.DB
}

func NewGormStudentMarkStore(db *gorm.DB) *GormStudentMarkStore {
	return &GormStudentMarkStore{DB: db}
}

// AutoMigrate creates student_marks and student_mark_subjects.
func (s *GormStudentMarkStore) AutoMigrate() error {
	return s.DB.AutoMigrate(&model.StudentMarkModel{}, &model.StudentMarkSubjectModel{})
}

func (s *GormStudentMarkStore) Create(ctx context.Context, rec *model.StudentMarkModel) (string, error) {
	if rec == nil {
		return "", errors.New("nil student mark")
	}
	rec.StudentMarkID = uuid.New()

	// parent + subjects dalam satu transaksi: all-or-nothing
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	if err != nil {
		rec.StudentMarkID = uuid.Nil
		return "", fmt.Errorf("create student mark: %w", err)
	}
	return rec.StudentMarkID.String(), nil
}

func (s *GormStudentMarkStore) FindByID(ctx context.Context, id string) (*model.StudentMarkModel, error) {
	uid, err := ParseStudentMarkID(id)
	if err != nil {
		return nil, err
	}

	var rec model.StudentMarkModel
	err = s.DB.WithContext(ctx).
		Preload("Subjects", func(db *gorm.DB) *gorm.DB {
			return db.Order("student_mark_subject_position ASC")
		}).
		Where("student_mark_id = ?", uid).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentMarkNotFound
		}
		return nil, fmt.Errorf("find student mark %s: %w", uid, err)
	}
	return &rec, nil
}

func (s *GormStudentMarkStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStudentMarkStore) Close(context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
