package model

import (
	"time"

	"github.com/google/uuid"

	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Nomor induk siswa, format STU-YYYY-NNNN (di-generate saat create)
	StudentCode string `gorm:"column:student_code;type:varchar(16);not null;uniqueIndex" json:"student_code"`

	// Identitas
	StudentFirstName  string    `gorm:"column:student_first_name;type:varchar(50);not null" json:"student_first_name"`
	StudentFatherName string    `gorm:"column:student_father_name;type:varchar(50);not null" json:"student_father_name"`
	StudentLastName   string    `gorm:"column:student_last_name;type:varchar(50);not null" json:"student_last_name"`
	StudentDOB        time.Time `gorm:"column:student_dob;type:date;not null" json:"student_dob"`
	StudentAddress    string    `gorm:"column:student_address;type:text;not null" json:"student_address"`
	StudentGender     string    `gorm:"column:student_gender;type:varchar(10);not null" json:"student_gender"` // MALE | FEMALE

	// Kontak (opsional)
	StudentPhone         *string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(20)" json:"student_guardian_phone,omitempty"`
	StudentPhotoURL      *string `gorm:"column:student_photo_url;type:text" json:"student_photo_url,omitempty"`

	// Tanggal daftar: default sekarang; scope sequence tahunan nomor induk
	StudentRegistrationDate time.Time `gorm:"column:student_registration_date;not null;index;default:now()" json:"student_registration_date"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	// Relasi ke halaqa (opsional)
	StudentHalaqaID *uuid.UUID `gorm:"column:student_halaqa_id;type:uuid;index" json:"student_halaqa_id,omitempty"`

	// timestamps
	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`

	// Relasi (diisi lewat Preload)
	Halaqa *halaqaModel.HalaqaModel `gorm:"foreignKey:StudentHalaqaID;references:HalaqaID" json:"halaqa,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
