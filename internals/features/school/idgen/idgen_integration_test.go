//go:build testutil
// +build testutil

package idgen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "madrasahku_backend/internals/features/school/students/model"
	teacherModel "madrasahku_backend/internals/features/school/teachers/model"
	"madrasahku_backend/internals/testutil/testdb"
)

func newStudent(code string, registered time.Time) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentCode:             code,
		StudentFirstName:        "Ahmad",
		StudentFatherName:       "Yusuf",
		StudentLastName:         "Rahman",
		StudentDOB:              time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
		StudentAddress:          "Jl. Mawar 1",
		StudentGender:           "MALE",
		StudentRegistrationDate: registered,
	}
}

func TestGenerateStudentCodeSequence(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	year := time.Now().Year()

	// Dua siswa pertama tahun ini: 0001 lalu 0002
	first, err := GenerateStudentCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-0001", year), first)

	require.NoError(t, db.Create(ptr(newStudent(first, time.Now()))).Error)

	second, err := GenerateStudentCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-0002", year), second)
}

func TestGenerateStudentCodeYearScoped(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	year := time.Now().Year()
	lastYear := time.Date(year-1, 7, 15, 0, 0, 0, 0, time.UTC)

	// Siswa tahun lalu tidak mempengaruhi urutan tahun ini
	old := newStudent(fmt.Sprintf("STU-%d-0001", year-1), lastYear)
	require.NoError(t, db.Create(&old).Error)

	code, err := GenerateStudentCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-0001", year), code)
}

func TestGenerateStudentCodeCollisionRetry(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	year := time.Now().Year()

	// Satu siswa terdaftar tahun ini tapi memegang kode 0002 (bukan 0001):
	// count=1 → kandidat 0002 sudah terpakai → retry memberi 0003.
	taken := newStudent(fmt.Sprintf("STU-%d-0002", year), time.Now())
	require.NoError(t, db.Create(&taken).Error)

	code, err := GenerateStudentCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("STU-%d-0003", year), code)
}

func TestGenerateTeacherCodeSequence(t *testing.T) {
	handle, err := testdb.Start(context.Background())
	require.NoError(t, err)
	defer handle.Close()
	db := handle.DB

	year := time.Now().Year()

	first, err := GenerateTeacherCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TCH-%d-001", year), first)

	teacher := teacherModel.TeacherModel{
		TeacherCode:           first,
		TeacherFirstName:      "Umar",
		TeacherLastName:       "Faruq",
		TeacherGender:         "MALE",
		TeacherDOB:            time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		TeacherAddress:        "Jl. Melati 2",
		TeacherEmploymentType: "FULL_TIME",
		TeacherHireDate:       time.Now(),
	}
	require.NoError(t, db.Create(&teacher).Error)

	second, err := GenerateTeacherCode(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("TCH-%d-002", year), second)
}

func ptr[T any](v T) *T { return &v }
