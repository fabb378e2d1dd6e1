package model

import (
	"time"

	"github.com/google/uuid"

	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

// Laporan naratif guru ke management. is_read di-set true sekali
// saat pertama kali dibuka oleh MANAGEMENT.
type ReportModel struct {
	// PK
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`

	ReportTitle   string `gorm:"column:report_title;type:varchar(150);not null" json:"report_title"`
	ReportContent string `gorm:"column:report_content;type:text;not null" json:"report_content"`

	// WEEKLY | MONTHLY
	ReportType string `gorm:"column:report_type;type:varchar(10);not null" json:"report_type"`

	ReportIsRead bool `gorm:"column:report_is_read;not null;default:false" json:"report_is_read"`

	ReportTeacherID uuid.UUID `gorm:"column:report_teacher_id;type:uuid;not null;index" json:"report_teacher_id"`

	// timestamps
	ReportCreatedAt time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`

	// Relasi (diisi lewat Preload)
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:ReportTeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (ReportModel) TableName() string { return "reports" }
