// internals/features/finance/transactions/dto/transaction_dto.go
package dto

import "github.com/google/uuid"

type CreateTransactionRequest struct {
	Type        string     `json:"type" validate:"required"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Date        *string    `json:"date"` // opsional, default sekarang
	Description *string    `json:"description"`
	PhotoURL    *string    `json:"photo_url"`
	StudentID   *uuid.UUID `json:"student_id"` // kosong untuk WITHDRAWAL
}

type UpdateTransactionRequest struct {
	Type        *string    `json:"type"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0"`
	Date        *string    `json:"date"`
	Description *string    `json:"description"`
	PhotoURL    *string    `json:"photo_url"`
	StudentID   *uuid.UUID `json:"student_id"`
}
