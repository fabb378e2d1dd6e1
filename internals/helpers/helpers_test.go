package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := BuildPaginationFromPage(45, 1, 20)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := BuildPaginationFromPage(45, 3, 20)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}

func TestBuildPaginationFromPageEmpty(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages, "dataset kosong tetap punya 1 halaman")
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationFromPageDefaults(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestIsAllowedImageType(t *testing.T) {
	assert.True(t, IsAllowedImageType("image/jpeg"))
	assert.True(t, IsAllowedImageType("image/png"))
	assert.True(t, IsAllowedImageType("IMAGE/PNG"))
	assert.True(t, IsAllowedImageType(" image/webp "))

	assert.False(t, IsAllowedImageType("application/pdf"))
	assert.False(t, IsAllowedImageType("image/svg+xml"), "svg bisa membawa script")
	assert.False(t, IsAllowedImageType(""))
}

func TestGenerateUniqueFilename(t *testing.T) {
	name := GenerateUniqueFilename("student", "foto profil (1).jpg")

	assert.True(t, strings.HasPrefix(name, "student_"))
	assert.True(t, strings.HasSuffix(name, ".webp"))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	other := GenerateUniqueFilename("student", "foto profil (1).jpg")
	assert.NotEqual(t, name, other, "nama file harus unik antar panggilan")
}
