// internals/features/uploads/controller/upload_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	configs "madrasahku_backend/internals/configs"
	helper "madrasahku_backend/internals/helpers"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// POST /api/upload
// Multipart field "file", opsional field "prefix" (student/teacher/transaction).
// Gambar dikonversi ke WebP dan disajikan kembali lewat /uploads.
func (uc *UploadController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah (field: file)")
	}

	if fileHeader.Size > helper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file maksimal 4MB")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !helper.IsAllowedImageType(contentType) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Jenis file tidak didukung. Gunakan JPEG, PNG, GIF, atau WebP")
	}

	prefix := c.FormValue("prefix")
	if prefix == "" {
		prefix = "photo"
	}

	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
	filename, err := helper.SaveImageAsWebP(fileHeader, uploadDir, prefix)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}

	return helper.JsonCreated(c, "Gambar berhasil diunggah", fiber.Map{
		"filename": filename,
		"url":      fmt.Sprintf("/uploads/%s", filename),
	})
}
