package marks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"studentmarks_backend/internals/features/students/marks/dto"
	"studentmarks_backend/internals/features/students/marks/service"
	helper "studentmarks_backend/internals/helpers"
)

// StudentMarkSeed uses the JSON API request shape.
type StudentMarkSeed = dto.CreateStudentMarkRequest

// SeedStudentMarksFromJSON submits every entry through the normal aggregation
// path. Invalid entries are skipped and logged; returns how many were stored.
func SeedStudentMarksFromJSON(ctx context.Context, svc *service.StudentMarkService, filePath string) (int, error) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("baca file seed: %w", err)
	}

	var data []StudentMarkSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return 0, fmt.Errorf("decode seed JSON: %w", err)
	}

	v := helper.NewValidator()
	stored := 0
	for i, item := range data {
		item.Normalize()
		if err := v.Struct(&item); err != nil {
			log.Printf("⚠️ Seed #%d (%s) tidak valid, lewati: %v", i, item.RollNo, helper.ValidationErrorsToMap(err))
			continue
		}

		id, err := svc.Submit(ctx, item.ToModel())
		if err != nil {
			return stored, fmt.Errorf("seed #%d (%s): %w", i, item.RollNo, err)
		}
		log.Printf("✅ Berhasil insert %s (%s) id=%s", item.Name, item.RollNo, id)
		stored++
	}
	return stored, nil
}
