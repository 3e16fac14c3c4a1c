package dto

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "studentmarks_backend/internals/features/students/marks/model"
	helper "studentmarks_backend/internals/helpers"
)

func aliceForm() SubmitStudentMarkForm {
	return SubmitStudentMarkForm{
		Name: " Alice ", RollNo: "R1", Semester: "3",
		Subject1: "Math", Marks1: "80",
		Subject2: "Sci", Marks2: "70",
		Subject3: "Eng", Marks3: " 90",
		Subject4: "Hist", Marks4: "60",
	}
}

func TestFormToModel(t *testing.T) {
	f := aliceForm()
	f.Normalize()
	require.NoError(t, helper.NewValidator().Struct(f))

	rec, errs := f.ToModel()
	require.Nil(t, errs)
	assert.Equal(t, "Alice", rec.StudentMarkName)
	assert.Equal(t, 300, rec.StudentMarkTotalMarks)
	assert.Equal(t, 75.0, rec.StudentMarkAverageMarks)
	assert.Equal(t, []m.SubjectMark{{SubjectName: "Math", Marks: 80}, {SubjectName: "Sci", Marks: 70}, {SubjectName: "Eng", Marks: 90}, {SubjectName: "Hist", Marks: 60}}, rec.SubjectMarks())
}

func TestFormValidationRejectsBadMarks(t *testing.T) {
	f := aliceForm()
	f.Marks2 = "seventy"
	f.Marks4 = ""
	f.Normalize()

	err := helper.NewValidator().Struct(f)
	require.Error(t, err)
	fields := helper.ValidationErrorsToMap(err)
	assert.Equal(t, []string{"marks2", "marks4"}, helper.FieldNames(fields))
	assert.Equal(t, []string{"number"}, fields["marks2"])
	assert.Equal(t, []string{"required"}, fields["marks4"])
}

func TestFormValidationRejectsNegativeAndFractional(t *testing.T) {
	for _, bad := range []string{"-5", "7.5", "1e3"} {
		f := aliceForm()
		f.Marks1 = bad
		f.Normalize()
		assert.Error(t, helper.NewValidator().Struct(f), bad)
	}
}

func TestFormToModelOverflow(t *testing.T) {
	f := aliceForm()
	f.Marks1 = "99999999999999999999999"
	f.Normalize()

	rec, errs := f.ToModel()
	assert.Nil(t, rec)
	assert.Equal(t, []string{"integer"}, errs["marks1"])
}

func TestFormToModelRejectsMarksAboveMax(t *testing.T) {
	f := aliceForm()
	f.Marks1 = "9223372036854775807"
	f.Marks2 = "9223372036854775807"
	f.Marks3 = "1"
	f.Marks4 = "0"
	f.Normalize()

	rec, errs := f.ToModel()
	assert.Nil(t, rec)
	assert.Equal(t, []string{"max"}, errs["marks1"])
	assert.Equal(t, []string{"max"}, errs["marks2"])
	assert.NotContains(t, errs, "marks3")

	f = aliceForm()
	f.Marks1 = "100000000"
	f.Marks2 = "100000000"
	f.Marks3 = "100000000"
	f.Marks4 = "100000000"
	rec, errs = f.ToModel()
	require.Nil(t, errs)
	assert.Equal(t, 400000000, rec.StudentMarkTotalMarks)
	assert.Equal(t, 100000000.0, rec.StudentMarkAverageMarks)
}

func TestJSONRequestValidation(t *testing.T) {
	v := helper.NewValidator()
	mk := func(n int) *int { return &n }

	ok := CreateStudentMarkRequest{
		Name: "Bob", RollNo: "R2", Semester: "1",
		Subjects: []SubjectMarkInput{
			{"A", mk(100)}, {"B", mk(100)}, {"C", mk(100)}, {"D", mk(100)},
		},
	}
	require.NoError(t, v.Struct(ok))
	rec := ok.ToModel()
	assert.Equal(t, 400, rec.StudentMarkTotalMarks)
	assert.Equal(t, 100.0, rec.StudentMarkAverageMarks)

	short := ok
	short.Subjects = ok.Subjects[:3]
	assert.Error(t, v.Struct(short))

	missing := ok
	missing.Subjects = append([]SubjectMarkInput{{"A", nil}}, ok.Subjects[1:]...)
	err := v.Struct(missing)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "subjects[0].marks")

	huge := ok
	huge.Subjects = append([]SubjectMarkInput{{"A", mk(m.MaxMarks + 1)}}, ok.Subjects[1:]...)
	err = v.Struct(huge)
	require.Error(t, err)
	assert.Contains(t, helper.ValidationErrorsToMap(err), "subjects[0].marks")
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "75.00", FormatAverage(75))
	assert.Equal(t, "100.00", FormatAverage(100))
	assert.Equal(t, "1.75", FormatAverage(1.75))
	assert.Equal(t, "33.33", FormatAverage(100.0/3))
	assert.Equal(t, "NaN", FormatAverage(math.NaN()))
}

func TestFromModel(t *testing.T) {
	rec := m.NewStudentMark("Alice", "R1", "3", []m.SubjectMark{{SubjectName: "Math", Marks: 80}, {SubjectName: "Sci", Marks: 70}, {SubjectName: "Eng", Marks: 90}, {SubjectName: "Hist", Marks: 60}})
	rec.StudentMarkID = uuid.New()
	rec.StudentMarkCreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	out := FromModel(rec)
	assert.Equal(t, rec.StudentMarkID.String(), out.ID)
	assert.Equal(t, 300, out.TotalMarks)
	assert.Equal(t, "75.00", out.AverageMarksDisplay)
	assert.Equal(t, SubjectMarkResponse{SubjectName: "Hist", Marks: 60}, out.Subjects[3])
	assert.Equal(t, rec.StudentMarkCreatedAt, out.CreatedAt)
}
