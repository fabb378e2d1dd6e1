package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

// Snapshot mingguan progres hafalan per siswa × guru.
// Immutable: tidak ada endpoint update setelah dibuat.
type LearningRecordModel struct {
	// PK
	LearningRecordID uuid.UUID `gorm:"column:learning_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"learning_record_id"`

	LearningRecordStudentID uuid.UUID `gorm:"column:learning_record_student_id;type:uuid;not null;index" json:"learning_record_student_id"`
	LearningRecordTeacherID uuid.UUID `gorm:"column:learning_record_teacher_id;type:uuid;not null;index" json:"learning_record_teacher_id"`

	LearningRecordWeekStartDate time.Time `gorm:"column:learning_record_week_start_date;type:date;not null;index" json:"learning_record_week_start_date"`

	// Kehadiran 0-7 hari
	LearningRecordAttendance int `gorm:"column:learning_record_attendance;not null;default:0" json:"learning_record_attendance"`

	// Hafalan (dars harian)
	LearningRecordSurah            *string `gorm:"column:learning_record_surah;type:varchar(50)" json:"learning_record_surah,omitempty"`
	LearningRecordDailyDars        *string `gorm:"column:learning_record_daily_dars;type:varchar(100)" json:"learning_record_daily_dars,omitempty"`
	LearningRecordMemorizedDays    int     `gorm:"column:learning_record_memorized_days;not null;default:0" json:"learning_record_memorized_days"`
	LearningRecordNotMemorizedDays int     `gorm:"column:learning_record_not_memorized_days;not null;default:0" json:"learning_record_not_memorized_days"`
	LearningRecordRubuAmount       float64 `gorm:"column:learning_record_rubu_amount;not null;default:0" json:"learning_record_rubu_amount"`

	// Murajaa (pengulangan hafalan lama)
	LearningRecordMurajaaFrom    *string `gorm:"column:learning_record_murajaa_from;type:varchar(50)" json:"learning_record_murajaa_from,omitempty"`
	LearningRecordMurajaaTo      *string `gorm:"column:learning_record_murajaa_to;type:varchar(50)" json:"learning_record_murajaa_to,omitempty"`
	LearningRecordMurajaaDays    int     `gorm:"column:learning_record_murajaa_days;not null;default:0" json:"learning_record_murajaa_days"`
	LearningRecordMurajaaNotDays int     `gorm:"column:learning_record_murajaa_not_days;not null;default:0" json:"learning_record_murajaa_not_days"`

	LearningRecordNotes *string `gorm:"column:learning_record_notes;type:text" json:"learning_record_notes,omitempty"`

	LearningRecordCreatedAt time.Time `gorm:"column:learning_record_created_at;autoCreateTime" json:"learning_record_created_at"`

	// Relasi (diisi lewat Preload)
	Student *studentModel.StudentModel `gorm:"foreignKey:LearningRecordStudentID;references:StudentID" json:"student,omitempty"`
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:LearningRecordTeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (LearningRecordModel) TableName() string { return "learning_records" }
