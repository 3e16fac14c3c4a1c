package marks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentmarks_backend/internals/features/students/marks/repository"
	"studentmarks_backend/internals/features/students/marks/service"
)

func TestSeedBundledFile(t *testing.T) {
	store := repository.NewMemoryStudentMarkStore()
	n, err := SeedStudentMarksFromJSON(context.Background(), service.NewStudentMarkService(store, 0), "data_student_marks.json")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, store.Len())
}

func TestSeedSkipsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"Ok","roll_no":"A","subjects":[{"subject_name":"a","marks":1},{"subject_name":"b","marks":2},{"subject_name":"c","marks":3},{"subject_name":"d","marks":4}]},
		{"name":"Short","roll_no":"B","subjects":[{"subject_name":"a","marks":1}]}
	]`), 0o644))

	store := repository.NewMemoryStudentMarkStore()
	n, err := SeedStudentMarksFromJSON(context.Background(), service.NewStudentMarkService(store, 0), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedMissingFile(t *testing.T) {
	_, err := SeedStudentMarksFromJSON(context.Background(),
		service.NewStudentMarkService(repository.NewMemoryStudentMarkStore(), 0), "does-not-exist.json")
	assert.Error(t, err)
}
