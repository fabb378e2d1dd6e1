package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Arsip hasil generate laporan keuangan (ringkasan + filter yang dipakai),
// supaya laporan yang pernah dicetak bisa dibuka ulang tanpa hitung ulang.
type FinancialReportSnapshotModel struct {
	// PK
	SnapshotID uuid.UUID `gorm:"column:snapshot_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"snapshot_id"`

	// WEEKLY | MONTHLY | YEARLY (mengikuti parameter generate)
	SnapshotReportType string `gorm:"column:snapshot_report_type;type:varchar(10);not null" json:"snapshot_report_type"`

	SnapshotStartDate time.Time `gorm:"column:snapshot_start_date;not null" json:"snapshot_start_date"`
	SnapshotEndDate   time.Time `gorm:"column:snapshot_end_date;not null" json:"snapshot_end_date"`

	// Echo filter & ringkasan (JSONB)
	SnapshotFilters datatypes.JSON `gorm:"column:snapshot_filters;type:jsonb" json:"snapshot_filters"`
	SnapshotSummary datatypes.JSON `gorm:"column:snapshot_summary;type:jsonb" json:"snapshot_summary"`

	SnapshotGeneratedBy uuid.UUID `gorm:"column:snapshot_generated_by;type:uuid;not null;index" json:"snapshot_generated_by"`

	SnapshotCreatedAt time.Time `gorm:"column:snapshot_created_at;autoCreateTime" json:"snapshot_created_at"`
}

func (FinancialReportSnapshotModel) TableName() string { return "financial_report_snapshots" }
