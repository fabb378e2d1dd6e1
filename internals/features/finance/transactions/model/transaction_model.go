package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "madrasahku_backend/internals/features/school/students/model"
)

type TransactionModel struct {
	// PK
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"transaction_id"`

	// REGISTRATION_FEE | SCHOOL_FEE | UNIFORM_FEE | OTHER_FEE | WITHDRAWAL
	TransactionType   string  `gorm:"column:transaction_type;type:varchar(20);not null;index" json:"transaction_type"`
	TransactionAmount float64 `gorm:"column:transaction_amount;not null" json:"transaction_amount"`

	TransactionDate        time.Time `gorm:"column:transaction_date;not null;index" json:"transaction_date"`
	TransactionDescription *string   `gorm:"column:transaction_description;type:text" json:"transaction_description,omitempty"`
	TransactionPhotoURL    *string   `gorm:"column:transaction_photo_url;type:text" json:"transaction_photo_url,omitempty"`

	// NULL untuk WITHDRAWAL (pengeluaran sekolah, tidak terikat siswa)
	TransactionStudentID *uuid.UUID `gorm:"column:transaction_student_id;type:uuid;index" json:"transaction_student_id,omitempty"`

	// timestamps
	TransactionCreatedAt time.Time `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt time.Time `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at"`

	// Relasi (diisi lewat Preload)
	Student *studentModel.StudentModel `gorm:"foreignKey:TransactionStudentID;references:StudentID" json:"student,omitempty"`
}

func (TransactionModel) TableName() string { return "transactions" }
