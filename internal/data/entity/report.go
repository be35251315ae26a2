package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportCategory string

const (
	CategoryFinancialFraud ReportCategory = "financial_fraud"
	CategoryIdentityTheft  ReportCategory = "identity_theft"
	CategoryPhishing       ReportCategory = "phishing"
	CategoryOnlineHarass   ReportCategory = "online_harassment"
	CategoryOther          ReportCategory = "other"
)

type ReportStatus string

const (
	ReportSubmitted ReportStatus = "SUBMITTED"
)

// Report is one filed fraud/grievance complaint.
type Report struct {
	BaseSimple
	ReporterID   uuid.UUID      `db:"reporter_id"`
	Category     ReportCategory `db:"category"`
	Description  string         `db:"description"`
	IncidentDate time.Time      `db:"incident_date"`
	AmountLost   *float64       `db:"amount_lost"`
	Status       ReportStatus   `db:"status"`
}
