// internals/features/finance/transactions/route/transaction_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	txController "madrasahku_backend/internals/features/finance/transactions/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

func TransactionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := txController.NewTransactionController(db)

	transactions := api.Group("/transactions", authMiddleware.AuthMiddleware(db))

	// ACCOUNTS dan MANAGEMENT bisa melihat transaksi
	transactions.Get("/", authMiddleware.RequirePermission(constants.PermViewTransactions), ctrl.GetAll)
	transactions.Get("/:id", authMiddleware.RequirePermission(constants.PermViewTransactions), ctrl.GetByID)

	// Hanya ACCOUNTS yang boleh mencatat dan mengubah transaksi
	transactions.Post("/", authMiddleware.RequirePermission(constants.PermEditTransactions), ctrl.Create)
	transactions.Put("/:id", authMiddleware.RequirePermission(constants.PermEditTransactions), ctrl.Update)
	transactions.Delete("/:id", authMiddleware.RequirePermission(constants.PermEditTransactions), ctrl.Delete)
}
