// internals/features/school/learning_records/dto/learning_record_dto.go
package dto

import "github.com/google/uuid"

type CreateLearningRecordRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	TeacherID     uuid.UUID `json:"teacher_id" validate:"required"`
	WeekStartDate string    `json:"week_start_date" validate:"required"` // YYYY-MM-DD

	Attendance int `json:"attendance" validate:"gte=0,lte=7"`

	Surah            *string `json:"surah"`
	DailyDars        *string `json:"daily_dars"`
	MemorizedDays    int     `json:"memorized_days" validate:"gte=0,lte=7"`
	NotMemorizedDays int     `json:"not_memorized_days" validate:"gte=0,lte=7"`
	RubuAmount       float64 `json:"rubu_amount" validate:"gte=0"`

	MurajaaFrom    *string `json:"murajaa_from"`
	MurajaaTo      *string `json:"murajaa_to"`
	MurajaaDays    int     `json:"murajaa_days" validate:"gte=0,lte=7"`
	MurajaaNotDays int     `json:"murajaa_not_days" validate:"gte=0,lte=7"`

	Notes *string `json:"notes"`
}
