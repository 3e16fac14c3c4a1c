package configs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("RATE_LIMIT_MAX", "7")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 7, cfg.RateLimitMax)
}

func TestLoadFallsBackOnBadValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := Load()
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.True(t, cfg.AutoMigrate)
}

func TestGetEnvDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("SURELY_NOT_SET_STUDENT_MARKS", "fallback"))
	t.Setenv("SURELY_NOT_SET_STUDENT_MARKS", "")
	assert.Equal(t, "", GetEnv("SURELY_NOT_SET_STUDENT_MARKS", "fallback"))
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	l := NewGormLogger()
	sql := func() (string, int64) { return "SELECT * FROM student_marks", 0 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sql, fmt.Errorf("wrapped: %w", gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sql, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "connection reset")
}
