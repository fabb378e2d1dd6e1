// internals/features/school/reports/dto/report_dto.go
package dto

type CreateReportRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=150"`
	Content    string `json:"content" validate:"required"`
	ReportType string `json:"report_type" validate:"required"`
}
