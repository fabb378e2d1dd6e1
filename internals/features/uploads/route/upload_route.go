// internals/features/uploads/route/upload_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	uploadController "madrasahku_backend/internals/features/uploads/controller"
	authMiddleware "madrasahku_backend/internals/middlewares/auth"
)

// Upload foto hanya untuk ACCOUNTS (foto siswa/guru/bukti transaksi).
func UploadRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := uploadController.NewUploadController()

	api.Post("/upload",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAccounts("upload gambar"), constants.RoleAccounts),
		ctrl.UploadImage)
}
