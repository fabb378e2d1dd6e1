// internals/features/school/halaqas/dto/halaqa_dto.go
package dto

import (
	"github.com/google/uuid"

	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
)

type CreateHalaqaRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	StudentLevel *string   `json:"student_level"`
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
}

type UpdateHalaqaRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=100"`
	StudentLevel *string    `json:"student_level"`
	TeacherID    *uuid.UUID `json:"teacher_id"`
	IsActive     *bool      `json:"is_active"`
}

type AssignStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

// Halaqa beserta guru pengampu dan daftar siswanya.
type HalaqaWithStudents struct {
	halaqaModel.HalaqaModel
	Students []studentModel.StudentModel `json:"students"`
}
