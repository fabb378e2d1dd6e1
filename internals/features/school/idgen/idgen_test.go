package idgen

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStudentCode(t *testing.T) {
	assert.Equal(t, "STU-2025-0001", FormatStudentCode(2025, 1))
	assert.Equal(t, "STU-2025-0042", FormatStudentCode(2025, 42))
	assert.Equal(t, "STU-2026-1234", FormatStudentCode(2026, 1234))
}

func TestFormatTeacherCode(t *testing.T) {
	assert.Equal(t, "TCH-2025-001", FormatTeacherCode(2025, 1))
	assert.Equal(t, "TCH-2025-099", FormatTeacherCode(2025, 99))
	assert.Equal(t, "TCH-2026-123", FormatTeacherCode(2026, 123))
}

func TestIsValidStudentCode(t *testing.T) {
	assert.True(t, IsValidStudentCode("STU-2025-0001"))
	assert.True(t, IsValidStudentCode(FormatStudentCode(time.Now().Year(), 7)))

	assert.False(t, IsValidStudentCode("STU-2025-001"), "suffix siswa 4 digit")
	assert.False(t, IsValidStudentCode("TCH-2025-0001"))
	assert.False(t, IsValidStudentCode("stu-2025-0001"))
	assert.False(t, IsValidStudentCode("STU-25-0001"))
	assert.False(t, IsValidStudentCode(""))
}

func TestIsValidTeacherCode(t *testing.T) {
	assert.True(t, IsValidTeacherCode("TCH-2025-001"))
	assert.True(t, IsValidTeacherCode(FormatTeacherCode(time.Now().Year(), 3)))

	assert.False(t, IsValidTeacherCode("TCH-2025-0001"), "suffix guru 3 digit")
	assert.False(t, IsValidTeacherCode("STU-2025-001"))
	assert.False(t, IsValidTeacherCode("TCH-2025-01"))
}

func TestFormatSequenceStrictlyIncreasing(t *testing.T) {
	year := 2025
	prev := ""
	for n := 1; n <= 50; n++ {
		code := FormatStudentCode(year, n)
		assert.True(t, IsValidStudentCode(code))
		assert.Greater(t, code, prev, "padding zero menjaga urutan leksikal = urutan numerik")
		prev = code
	}
}

func ExampleFormatStudentCode() {
	fmt.Println(FormatStudentCode(2025, 1))
	// Output: STU-2025-0001
}
