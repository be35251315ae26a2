package repository

import (
	"context"
	"fmt"

	"fraud-portal/internal/data/entity"
	"fraud-portal/pkg/database"

	"go.uber.org/zap"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (id, reporter_id, category, description, incident_date,
		                     amount_lost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.ReporterID,
		report.Category,
		report.Description,
		report.IncidentDate,
		report.AmountLost,
		report.Status,
		report.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create report",
			zap.Error(err),
			zap.String("reporter_id", report.ReporterID.String()),
			zap.String("category", string(report.Category)),
		)
		return fmt.Errorf("create report for %s: %w", report.ReporterID.String(), err)
	}

	return nil
}
