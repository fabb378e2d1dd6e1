package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	// Kredensial
	UserName     string `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex" json:"user_name"`
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	// Role: MANAGEMENT | ACCOUNTS | TEACHER
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`

	// Akun TEACHER terhubung ke record guru (untuk cek kepemilikan halaqa/laporan)
	UserTeacherID *uuid.UUID `gorm:"column:user_teacher_id;type:uuid;index" json:"user_teacher_id,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// timestamps
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
