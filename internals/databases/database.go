package database

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"studentmarks_backend/internals/configs"
	"studentmarks_backend/internals/features/students/marks/repository"
)

// PostgresDSN escapes user and password, so characters like '@' or '/' are safe.
func PostgresDSN(cfg configs.Config) string {
	q := url.Values{}
	q.Set("sslmode", cfg.DBSSLMode)
	q.Set("application_name", "studentmarks")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     net.JoinHostPort(cfg.DBHost, cfg.DBPort),
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func ConnectPostgres(cfg configs.Config) (*gorm.DB, error) {
	log.Printf("🔌 Koneksi ke PostgreSQL %s:%s/%s ...", cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: PostgresDSN(cfg),
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	TunePool(db)
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func ConnectMongo(ctx context.Context, cfg configs.Config) (*mongo.Client, error) {
	log.Printf("🔌 Koneksi ke MongoDB %s ...", cfg.MongoURI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("✅ Mongo connected.")
	return client, nil
}

// OpenStore builds the storage client selected by STORE_DRIVER.
// Caller owns it and must Close it at shutdown.
func OpenStore(ctx context.Context, cfg configs.Config) (repository.StudentMarkStore, error) {
	switch cfg.StoreDriver {
	case configs.StoreDriverMongo:
		client, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewMongoStudentMarkStore(client, cfg.MongoDatabase), nil

	case configs.StoreDriverMemory:
		log.Println("⚠️ STORE_DRIVER=memory: data hilang saat restart")
		return repository.NewMemoryStudentMarkStore(), nil

	default:
		db, err := ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		store := repository.NewGormStudentMarkStore(db)
		if cfg.AutoMigrate {
			if err := store.AutoMigrate(); err != nil {
				_ = store.Close(ctx)
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
			log.Println("✅ AutoMigrate student_marks selesai.")
		}
		return store, nil
	}
}

// WarmUp pings the store in the background so the first request
// does not pay for pool setup.
func WarmUp(store repository.StudentMarkStore) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}
