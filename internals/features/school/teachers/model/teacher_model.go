package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	// Nomor induk guru, format TCH-YYYY-NNN (di-generate saat create)
	TeacherCode string `gorm:"column:teacher_code;type:varchar(16);not null;uniqueIndex" json:"teacher_code"`

	// Identitas
	TeacherFirstName   string  `gorm:"column:teacher_first_name;type:varchar(50);not null" json:"teacher_first_name"`
	TeacherLastName    string  `gorm:"column:teacher_last_name;type:varchar(50);not null" json:"teacher_last_name"`
	TeacherGender      string  `gorm:"column:teacher_gender;type:varchar(10);not null" json:"teacher_gender"` // MALE | FEMALE
	TeacherCertificate *string `gorm:"column:teacher_certificate;type:varchar(100)" json:"teacher_certificate,omitempty"`
	TeacherDOB         time.Time `gorm:"column:teacher_dob;type:date;not null" json:"teacher_dob"`
	TeacherPhotoURL    *string `gorm:"column:teacher_photo_url;type:text" json:"teacher_photo_url,omitempty"`
	TeacherAddress     string  `gorm:"column:teacher_address;type:text;not null" json:"teacher_address"`
	TeacherPhone       *string `gorm:"column:teacher_phone;type:varchar(20)" json:"teacher_phone,omitempty"`

	// Kepegawaian
	TeacherEmploymentType string    `gorm:"column:teacher_employment_type;type:varchar(20);not null" json:"teacher_employment_type"` // FULL_TIME | PART_TIME | VOLUNTEER
	TeacherHireDate       time.Time `gorm:"column:teacher_hire_date;not null;index" json:"teacher_hire_date"`                        // scope sequence tahunan
	TeacherIsActive       bool      `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`

	// timestamps
	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
