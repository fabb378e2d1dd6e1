// Package idgen menghasilkan nomor induk siswa/guru yang human-readable,
// ter-scope per tahun kalender: STU-YYYY-NNNN dan TCH-YYYY-NNN.
package idgen

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/gorm"

	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
)

var (
	studentCodePattern = regexp.MustCompile(`^STU-\d{4}-\d{4}$`)
	teacherCodePattern = regexp.MustCompile(`^TCH-\d{4}-\d{3}$`)
)

func FormatStudentCode(year, n int) string {
	return fmt.Sprintf("STU-%d-%04d", year, n)
}

func FormatTeacherCode(year, n int) string {
	return fmt.Sprintf("TCH-%d-%03d", year, n)
}

func IsValidStudentCode(code string) bool { return studentCodePattern.MatchString(code) }
func IsValidTeacherCode(code string) bool { return teacherCodePattern.MatchString(code) }

// GenerateStudentCode menghitung siswa yang terdaftar tahun ini lalu memakai
// count+1. Kalau kandidat sudah terpakai (race antara count dan insert), coba
// sekali lagi dengan count+2. Best-effort: race 3 arah masih bisa duplikat —
// penomoran dihitung dari count hidup, bukan counter tersimpan, jadi tidak
// dijamin bebas celah kalau ada record yang dihapus.
func GenerateStudentCode(db *gorm.DB) (string, error) {
	year := time.Now().Year()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)

	var count int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_registration_date >= ?", startOfYear).
		Count(&count).Error; err != nil {
		return "", err
	}

	candidate := FormatStudentCode(year, int(count)+1)

	var exists int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_code = ?", candidate).
		Count(&exists).Error; err != nil {
		return "", err
	}
	if exists > 0 {
		return FormatStudentCode(year, int(count)+2), nil
	}
	return candidate, nil
}

// GenerateTeacherCode: sama seperti siswa, di-scope oleh teacher_hire_date,
// suffix 3 digit.
func GenerateTeacherCode(db *gorm.DB) (string, error) {
	year := time.Now().Year()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)

	var count int64
	if err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_hire_date >= ?", startOfYear).
		Count(&count).Error; err != nil {
		return "", err
	}

	candidate := FormatTeacherCode(year, int(count)+1)

	var exists int64
	if err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_code = ?", candidate).
		Count(&exists).Error; err != nil {
		return "", err
	}
	if exists > 0 {
		return FormatTeacherCode(year, int(count)+2), nil
	}
	return candidate, nil
}
