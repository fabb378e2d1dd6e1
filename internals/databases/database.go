package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	financeModel "madrasahku_backend/internals/features/finance/reports/model"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	reportModel "madrasahku_backend/internals/features/school/reports/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	userModel "madrasahku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=madrasahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menjalankan AutoMigrate untuk seluruh model aplikasi.
// Urutan penting: parent dulu (teachers, halaqas) sebelum child (students, dst).
func MigrateAll(db *gorm.DB) error {
	// gen_random_uuid() untuk PK; builtin di PG >= 13, extension di versi lama
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&halaqaModel.HalaqaModel{},
		&studentModel.StudentModel{},
		&txModel.TransactionModel{},
		&lrModel.LearningRecordModel{},
		&reportModel.ReportModel{},
		&financeModel.FinancialReportSnapshotModel{},
	)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
