// internals/features/admin/controller/admin_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txModel "madrasahku_backend/internals/features/finance/transactions/model"
	halaqaModel "madrasahku_backend/internals/features/school/halaqas/model"
	lrModel "madrasahku_backend/internals/features/school/learning_records/model"
	reportModel "madrasahku_backend/internals/features/school/reports/model"
	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	helper "madrasahku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// DELETE /api/admin/delete-all
// Mengosongkan seluruh data sekolah (akun login tidak ikut terhapus).
// Urutan mengikuti arah foreign key, satu transaksi database.
func (ac *AdminController) DeleteAll(c *fiber.Ctx) error {
	deleted := map[string]int64{}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name  string
			model any
		}{
			{"learning_records", &lrModel.LearningRecordModel{}},
			{"transactions", &txModel.TransactionModel{}},
			{"students", &studentModel.StudentModel{}},
			{"halaqas", &halaqaModel.HalaqaModel{}},
			{"reports", &reportModel.ReportModel{}},
			{"teachers", &teacherModel.TeacherModel{}},
		}
		for _, step := range steps {
			result := tx.Where("1 = 1").Delete(step.model)
			if result.Error != nil {
				return result.Error
			}
			deleted[step.name] = result.RowsAffected
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal menghapus seluruh data:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete all data")
	}

	return helper.JsonDeleted(c, "All students and teachers deleted successfully", fiber.Map{
		"deleted": deleted,
	})
}
