// internals/features/school/students/dto/student_dto.go
package dto

type CreateStudentRequest struct {
	FirstName        string  `json:"first_name" validate:"required,min=1,max=50"`
	FatherName       string  `json:"father_name" validate:"required,min=1,max=50"`
	LastName         string  `json:"last_name" validate:"required,min=1,max=50"`
	DOB              string  `json:"dob" validate:"required"` // YYYY-MM-DD
	Address          string  `json:"address" validate:"required"`
	Gender           string  `json:"gender" validate:"required"`
	Phone            *string `json:"phone"`
	GuardianPhone    *string `json:"guardian_phone"`
	PhotoURL         *string `json:"photo_url"`
	RegistrationDate *string `json:"registration_date"` // opsional, default sekarang
	HalaqaID         *string `json:"halaqa_id"`
}

// Semua field opsional: hanya yang dikirim yang diubah.
type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	FatherName    *string `json:"father_name" validate:"omitempty,min=1,max=50"`
	LastName      *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	DOB           *string `json:"dob"`
	Address       *string `json:"address"`
	Gender        *string `json:"gender"`
	Phone         *string `json:"phone"`
	GuardianPhone *string `json:"guardian_phone"`
	PhotoURL      *string `json:"photo_url"`
	IsActive      *bool   `json:"is_active"`
	HalaqaID      *string `json:"halaqa_id"`
}
