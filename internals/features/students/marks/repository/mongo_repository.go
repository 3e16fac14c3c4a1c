// file: internals/features/students/marks/repository/mongo_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	model "studentmarks_backend/internals/features/students/marks/model"
)

const StudentMarkCollection = "students"

/* ============ Document shape (one doc per submission, subjects embedded) ============ */

type subjectDocument struct {
	SubjectName string `bson:"subject_name"`
	Marks       int    `bson:"marks"`
}

type studentMarkDocument struct {
	ID           string            `bson:"_id"`
	Name         string            `bson:"name"`
	RollNo       string            `bson:"roll_no"`
	Semester     string            `bson:"semester"`
	Subjects     []subjectDocument `bson:"subjects"`
	TotalMarks   int               `bson:"total_marks"`
	AverageMarks float64           `bson:"average_marks"`
	CreatedAt    time.Time         `bson:"created_at"`
}

func toDocument(rec *model.StudentMarkModel) studentMarkDocument {
	subjects := make([]subjectDocument, 0, len(rec.Subjects))
	for _, s := range rec.SubjectMarks() {
		subjects = append(subjects, subjectDocument{SubjectName: s.SubjectName, Marks: s.Marks})
	}
	return studentMarkDocument{
		ID:           rec.StudentMarkID.String(),
		Name:         rec.StudentMarkName,
		RollNo:       rec.StudentMarkRollNo,
		Semester:     rec.StudentMarkSemester,
		Subjects:     subjects,
		TotalMarks:   rec.StudentMarkTotalMarks,
		AverageMarks: rec.StudentMarkAverageMarks,
		CreatedAt:    rec.StudentMarkCreatedAt,
	}
}

func fromDocument(doc studentMarkDocument) (*model.StudentMarkModel, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("stored document has bad _id %q: %w", doc.ID, err)
	}

	rows := make([]model.StudentMarkSubjectModel, 0, len(doc.Subjects))
	for i, s := range doc.Subjects {
		rows = append(rows, model.StudentMarkSubjectModel{
			StudentMarkSubjectStudentMarkID: id,
			StudentMarkSubjectPosition:      i,
			StudentMarkSubjectName:          s.SubjectName,
			StudentMarkSubjectMarks:         s.Marks,
		})
	}

	// aggregates dibaca apa adanya, tidak dihitung ulang
	return &model.StudentMarkModel{
		StudentMarkID:           id,
		StudentMarkName:         doc.Name,
		StudentMarkRollNo:       doc.RollNo,
		StudentMarkSemester:     doc.Semester,
		StudentMarkTotalMarks:   doc.TotalMarks,
		StudentMarkAverageMarks: doc.AverageMarks,
		StudentMarkCreatedAt:    doc.CreatedAt,
		Subjects:                rows,
	}, nil
}

/* ============ Store ============ */

type MongoStudentMarkStore struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

func NewMongoStudentMarkStore(client *mongo.Client, database string) *MongoStudentMarkStore {
	return &MongoStudentMarkStore{
		Client:     client,
		Collection: client.Database(database).Collection(StudentMarkCollection),
	}
}

func (s *MongoStudentMarkStore) Create(ctx context.Context, rec *model.StudentMarkModel) (string, error) {
	if rec == nil {
		return "", errors.New("nil student mark")
	}
	rec.StudentMarkID = uuid.New()
	rec.StudentMarkCreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := s.Collection.InsertOne(ctx, toDocument(rec)); err != nil {
		rec.StudentMarkID = uuid.Nil
		return "", fmt.Errorf("insert student mark: %w", err)
	}
	return rec.StudentMarkID.String(), nil
}

func (s *MongoStudentMarkStore) FindByID(ctx context.Context, id string) (*model.StudentMarkModel, error) {
	uid, err := ParseStudentMarkID(id)
	if err != nil {
		return nil, err
	}

	var doc studentMarkDocument
	err = s.Collection.FindOne(ctx, bson.M{"_id": uid.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentMarkNotFound
		}
		return nil, fmt.Errorf("find student mark %s: %w", uid, err)
	}
	return fromDocument(doc)
}

func (s *MongoStudentMarkStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *MongoStudentMarkStore) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
