// internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName       string  `json:"last_name" validate:"required,min=1,max=50"`
	Gender         string  `json:"gender" validate:"required"`
	Certificate    *string `json:"certificate"`
	DOB            string  `json:"dob" validate:"required"` // YYYY-MM-DD
	PhotoURL       *string `json:"photo_url"`
	Address        string  `json:"address" validate:"required"`
	Phone          *string `json:"phone"`
	EmploymentType string  `json:"employment_type" validate:"required"`
	HireDate       *string `json:"hire_date"` // opsional, default sekarang
}

type UpdateTeacherRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Gender         *string `json:"gender"`
	Certificate    *string `json:"certificate"`
	DOB            *string `json:"dob"`
	PhotoURL       *string `json:"photo_url"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	EmploymentType *string `json:"employment_type"`
	IsActive       *bool   `json:"is_active"`
}

// Halaqa milik guru beserta siswa-siswanya, untuk respons daftar/detail guru.
type TeacherHalaqa struct {
	halaqaModel.HalaqaModel
	Students []studentModel.StudentModel `json:"students"`
}

type TeacherWithHalaqas struct {
	teacherModel.TeacherModel
	Halaqas []TeacherHalaqa `json:"halaqas"`
}
