// internals/features/finance/transactions/controller/transaction_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	"madrasahku_backend/internals/features/finance/transactions/dto"
	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	helper "madrasahku_backend/internals/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// GET /api/transactions?student_id=...&type=...
func (tc *TransactionController) GetAll(c *fiber.Ctx) error {
	query := tc.DB.Model(&txModel.TransactionModel{}).
		Preload("Student").
		Order("transaction_date DESC")

	if studentID := c.Query("student_id"); studentID != "" {
		parsed, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		query = query.Where("transaction_student_id = ?", parsed)
	}
	if txType := c.Query("type"); txType != "" {
		if !constants.IsValidTransactionType(txType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis transaksi tidak valid")
		}
		query = query.Where("transaction_type = ?", txType)
	}

	var transactions []txModel.TransactionModel
	if err := query.Find(&transactions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi")
	}

	return helper.JsonOK(c, "Daftar transaksi berhasil diambil", transactions)
}

// GET /api/transactions/:id
func (tc *TransactionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var transaction txModel.TransactionModel
	if err := tc.DB.Preload("Student").First(&transaction, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transaction not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi")
	}

	return helper.JsonOK(c, "Detail transaksi berhasil diambil", transaction)
}

// POST /api/transactions
func (tc *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidTransactionType(req.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis transaksi tidak valid")
	}
	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be a positive number")
	}

	date := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		date = parsed
	}

	transaction := txModel.TransactionModel{
		TransactionType:        req.Type,
		TransactionAmount:      req.Amount,
		TransactionDate:        date,
		TransactionDescription: req.Description,
		TransactionPhotoURL:    req.PhotoURL,
		TransactionStudentID:   req.StudentID,
	}
	if err := tc.DB.Create(&transaction).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat transaksi")
	}

	return helper.JsonCreated(c, "Transaksi berhasil dicatat", transaction)
}

// PUT /api/transactions/:id
func (tc *TransactionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	var transaction txModel.TransactionModel
	if err := tc.DB.First(&transaction, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Transaction not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data transaksi")
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Type != nil {
		if !constants.IsValidTransactionType(*req.Type) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis transaksi tidak valid")
		}
		updates["transaction_type"] = *req.Type
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be a positive number")
		}
		updates["transaction_amount"] = *req.Amount
	}
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		updates["transaction_date"] = parsed
	}
	if req.Description != nil {
		updates["transaction_description"] = req.Description
	}
	if req.PhotoURL != nil {
		updates["transaction_photo_url"] = req.PhotoURL
	}
	if req.StudentID != nil {
		updates["transaction_student_id"] = req.StudentID
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", transaction)
	}

	if err := tc.DB.Model(&transaction).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui transaksi")
	}

	return helper.JsonUpdated(c, "Transaksi berhasil diperbarui", transaction)
}

// DELETE /api/transactions/:id
func (tc *TransactionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}

	result := tc.DB.Delete(&txModel.TransactionModel{}, "transaction_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaction not found")
	}

	return helper.JsonDeleted(c, "Transaction deleted successfully", nil)
}
