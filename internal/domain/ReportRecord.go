package domain

import "time"

// ReportKind define o tipo de relatório gerado
type ReportKind string

const (
	ReportKindWeekly  ReportKind = "weekly"
	ReportKindMonthly ReportKind = "monthly"
	ReportKindCustom  ReportKind = "custom"
)

// ReportRecord é o registro de um relatório compilado. Depois de
// is_ready=true com artifact_path preenchido o registro é imutável; a
// única mutação permitida é a transição de placeholder para pronto.
type ReportRecord struct {
	ID           string     `json:"id"`
	AccountID    AccountID  `json:"account_id"`
	Kind         ReportKind `json:"report_kind"`
	PeriodStart  time.Time  `json:"period_start"`
	PeriodEnd    time.Time  `json:"period_end"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	ArtifactPath *string    `json:"artifact_path,omitempty"`
	IsReady      bool       `json:"is_ready"`
	CreatedAt    time.Time  `json:"created_at"`
}
