package model

import (
	"time"

	"github.com/google/uuid"

	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

type HalaqaModel struct {
	// PK
	HalaqaID uuid.UUID `gorm:"column:halaqa_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"halaqa_id"`

	HalaqaName         string  `gorm:"column:halaqa_name;type:varchar(100);not null" json:"halaqa_name"`
	HalaqaStudentLevel *string `gorm:"column:halaqa_student_level;type:varchar(50)" json:"halaqa_student_level,omitempty"`

	// Setiap halaqa wajib punya satu guru pengampu
	HalaqaTeacherID uuid.UUID `gorm:"column:halaqa_teacher_id;type:uuid;not null;index" json:"halaqa_teacher_id"`

	HalaqaIsActive bool `gorm:"column:halaqa_is_active;not null;default:true" json:"halaqa_is_active"`

	// timestamps
	HalaqaCreatedAt time.Time `gorm:"column:halaqa_created_at;autoCreateTime" json:"halaqa_created_at"`
	HalaqaUpdatedAt time.Time `gorm:"column:halaqa_updated_at;autoUpdateTime" json:"halaqa_updated_at"`

	// Relasi (diisi lewat Preload)
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:HalaqaTeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (HalaqaModel) TableName() string { return "halaqas" }
