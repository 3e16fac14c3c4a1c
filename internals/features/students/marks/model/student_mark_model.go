// file: internals/features/students/marks/model/student_mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectsPerSubmission is the number of subject/marks pairs the form carries.
const SubjectsPerSubmission = 4

// MaxMarks caps a single mark so the sum of a submission fits in int on every platform.
const MaxMarks = 100_000_000

type StudentMarkModel struct {
	/* ============ PK ============ */
	StudentMarkID uuid.UUID `gorm:"column:student_mark_id;type:uuid;primaryKey" json:"student_mark_id"`

	/* ============ Identitas siswa ============ */
	StudentMarkName     string `gorm:"column:student_mark_name;type:varchar(160)"     json:"student_mark_name"`
	StudentMarkRollNo   string `gorm:"column:student_mark_roll_no;type:varchar(80)"   json:"student_mark_roll_no"`
	StudentMarkSemester string `gorm:"column:student_mark_semester;type:varchar(40)"  json:"student_mark_semester"`

	/* ============ Aggregates (computed once at write time) ============ */
	StudentMarkTotalMarks   int     `gorm:"column:student_mark_total_marks;not null"   json:"student_mark_total_marks"`
	StudentMarkAverageMarks float64 `gorm:"column:student_mark_average_marks;not null" json:"student_mark_average_marks"`

	StudentMarkCreatedAt time.Time `gorm:"column:student_mark_created_at;not null;autoCreateTime" json:"student_mark_created_at"`

	Subjects []StudentMarkSubjectModel `gorm:"foreignKey:StudentMarkSubjectStudentMarkID;references:StudentMarkID" json:"subjects"`
}

func (StudentMarkModel) TableName() string { return "student_marks" }

// BeforeCreate assigns the identifier when the caller left it empty.
func (m *StudentMarkModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentMarkID == uuid.Nil {
		m.StudentMarkID = uuid.New()
	}
	return nil
}

type StudentMarkSubjectModel struct {
	StudentMarkSubjectID            uuid.UUID `gorm:"column:student_mark_subject_id;type:uuid;primaryKey"                                json:"student_mark_subject_id"`
	StudentMarkSubjectStudentMarkID uuid.UUID `gorm:"column:student_mark_subject_student_mark_id;type:uuid;not null;index:idx_sms_parent" json:"student_mark_subject_student_mark_id"`

	// 0-based, urutan sesuai submit
	StudentMarkSubjectPosition int    `gorm:"column:student_mark_subject_position;not null"          json:"student_mark_subject_position"`
	StudentMarkSubjectName     string `gorm:"column:student_mark_subject_name;type:varchar(160)"     json:"student_mark_subject_name"`
	StudentMarkSubjectMarks    int    `gorm:"column:student_mark_subject_marks;not null"             json:"student_mark_subject_marks"`
}

func (StudentMarkSubjectModel) TableName() string { return "student_mark_subjects" }

func (s *StudentMarkSubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentMarkSubjectID == uuid.Nil {
		s.StudentMarkSubjectID = uuid.New()
	}
	return nil
}

// SubjectMark is one (subject, marks) pair as entered on the form.
type SubjectMark struct {
	SubjectName string
	Marks       int
}

// ComputeAggregates returns the sum and the mean of the marks.
// An empty list yields (0, 0).
func ComputeAggregates(subjects []SubjectMark) (int, float64) {
	if len(subjects) == 0 {
		return 0, 0
	}
	total := 0
	for _, s := range subjects {
		total += s.Marks
	}
	return total, float64(total) / float64(len(subjects))
}

// NewStudentMark builds an immutable record: positions follow the given order
// and the aggregates are computed here and nowhere else.
func NewStudentMark(name, rollNo, semester string, subjects []SubjectMark) *StudentMarkModel {
	total, avg := ComputeAggregates(subjects)

	rows := make([]StudentMarkSubjectModel, 0, len(subjects))
	for i, s := range subjects {
		rows = append(rows, StudentMarkSubjectModel{
			StudentMarkSubjectPosition: i,
			StudentMarkSubjectName:     s.SubjectName,
			StudentMarkSubjectMarks:    s.Marks,
		})
	}

	return &StudentMarkModel{
		StudentMarkName:         name,
		StudentMarkRollNo:       rollNo,
		StudentMarkSemester:     semester,
		StudentMarkTotalMarks:   total,
		StudentMarkAverageMarks: avg,
		Subjects:                rows,
	}
}

// SubjectMarks returns the subjects in submission order.
func (m *StudentMarkModel) SubjectMarks() []SubjectMark {
	out := make([]SubjectMark, len(m.Subjects))
	for i, s := range m.Subjects {
		out[i] = SubjectMark{SubjectName: s.StudentMarkSubjectName, Marks: s.StudentMarkSubjectMarks}
	}
	return out
}
