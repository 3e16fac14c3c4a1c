// file: internals/features/students/marks/dto/student_mark_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	m "studentmarks_backend/internals/features/students/marks/model"
)

/* =========================================================
   FORM (POST /submit, application/x-www-form-urlencoded)
   ========================================================= */

type SubmitStudentMarkForm struct {
	Name     string `form:"name"`
	RollNo   string `form:"roll_no"`
	Semester string `form:"semester"`

	Subject1 string `form:"subject1"`
	Marks1   string `form:"marks1" validate:"required,number"`
	Subject2 string `form:"subject2"`
	Marks2   string `form:"marks2" validate:"required,number"`
	Subject3 string `form:"subject3"`
	Marks3   string `form:"marks3" validate:"required,number"`
	Subject4 string `form:"subject4"`
	Marks4   string `form:"marks4" validate:"required,number"`
}

func (f *SubmitStudentMarkForm) Normalize() {
	for _, p := range []*string{
		&f.Name, &f.RollNo, &f.Semester,
		&f.Subject1, &f.Marks1, &f.Subject2, &f.Marks2,
		&f.Subject3, &f.Marks3, &f.Subject4, &f.Marks4,
	} {
		*p = strings.TrimSpace(*p)
	}
}

type formPair struct {
	field   string
	subject string
	marks   string
}

func (f SubmitStudentMarkForm) pairs() []formPair {
	return []formPair{
		{"marks1", f.Subject1, f.Marks1},
		{"marks2", f.Subject2, f.Marks2},
		{"marks3", f.Subject3, f.Marks3},
		{"marks4", f.Subject4, f.Marks4},
	}
}

// ToModel parses the marks and builds the record. Call it after the validator
// accepted the form; what is left to reject is a mark above model.MaxMarks.
func (f SubmitStudentMarkForm) ToModel() (*m.StudentMarkModel, map[string][]string) {
	subjects := make([]m.SubjectMark, 0, m.SubjectsPerSubmission)
	errs := map[string][]string{}

	for _, p := range f.pairs() {
		v, err := strconv.Atoi(p.marks)
		if err != nil {
			errs[p.field] = append(errs[p.field], "integer")
			continue
		}
		if v > m.MaxMarks {
			errs[p.field] = append(errs[p.field], "max")
			continue
		}
		subjects = append(subjects, m.SubjectMark{SubjectName: p.subject, Marks: v})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return m.NewStudentMark(f.Name, f.RollNo, f.Semester, subjects), nil
}

/* =========================================================
   JSON (POST /api/students/marks)
   ========================================================= */

type SubjectMarkInput struct {
	SubjectName string `json:"subject_name"`
	Marks       *int   `json:"marks" validate:"required,gte=0,lte=100000000"`
}

type CreateStudentMarkRequest struct {
	Name     string             `json:"name"`
	RollNo   string             `json:"roll_no"`
	Semester string             `json:"semester"`
	Subjects []SubjectMarkInput `json:"subjects" validate:"len=4,dive"`
}

func (r *CreateStudentMarkRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RollNo = strings.TrimSpace(r.RollNo)
	r.Semester = strings.TrimSpace(r.Semester)
	for i := range r.Subjects {
		r.Subjects[i].SubjectName = strings.TrimSpace(r.Subjects[i].SubjectName)
	}
}

func (r CreateStudentMarkRequest) ToModel() *m.StudentMarkModel {
	subjects := make([]m.SubjectMark, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		marks := 0
		if s.Marks != nil {
			marks = *s.Marks
		}
		subjects = append(subjects, m.SubjectMark{SubjectName: s.SubjectName, Marks: marks})
	}
	return m.NewStudentMark(r.Name, r.RollNo, r.Semester, subjects)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectMarkResponse struct {
	SubjectName string `json:"subject_name"`
	Marks       int    `json:"marks"`
}

type StudentMarkResponse struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	RollNo              string                `json:"roll_no"`
	Semester            string                `json:"semester"`
	Subjects            []SubjectMarkResponse `json:"subjects"`
	TotalMarks          int                   `json:"total_marks"`
	AverageMarks        float64               `json:"average_marks"`
	AverageMarksDisplay string                `json:"average_marks_display"`
	CreatedAt           time.Time             `json:"created_at"`
}

func FromModel(x *m.StudentMarkModel) StudentMarkResponse {
	subjects := make([]SubjectMarkResponse, 0, len(x.Subjects))
	for _, s := range x.SubjectMarks() {
		subjects = append(subjects, SubjectMarkResponse{SubjectName: s.SubjectName, Marks: s.Marks})
	}
	return StudentMarkResponse{
		ID:                  x.StudentMarkID.String(),
		Name:                x.StudentMarkName,
		RollNo:              x.StudentMarkRollNo,
		Semester:            x.StudentMarkSemester,
		Subjects:            subjects,
		TotalMarks:          x.StudentMarkTotalMarks,
		AverageMarks:        x.StudentMarkAverageMarks,
		AverageMarksDisplay: FormatAverage(x.StudentMarkAverageMarks),
		CreatedAt:           x.StudentMarkCreatedAt,
	}
}

// FormatAverage always renders exactly two decimals (75 → "75.00").
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
