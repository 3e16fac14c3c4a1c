package seeds

import (
	"context"
	"log"

	"studentmarks_backend/internals/features/students/marks/service"
	studentMarks "studentmarks_backend/internals/seeds/students/marks"
)

func RunAllSeeds(ctx context.Context, svc *service.StudentMarkService, studentMarksFile string) {
	//* Student marks
	n, err := studentMarks.SeedStudentMarksFromJSON(ctx, svc, studentMarksFile)
	if err != nil {
		log.Printf("❌ Seed student marks gagal: %v", err)
		return
	}
	log.Printf("✅ Seed student marks: %d record", n)
}
