package repository

import (
	"context"
	"fmt"

	"fraud-portal/internal/data/entity"
	"fraud-portal/pkg/database"

	"go.uber.org/zap"
)

type DataRequestRepository interface {
	Create(ctx context.Context, req *entity.DataRequest) error
}

type dataRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDataRequestRepository(db database.PgxIface, log *zap.Logger) DataRequestRepository {
	return &dataRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "data_request")),
	}
}

func (r *dataRequestRepository) Create(ctx context.Context, req *entity.DataRequest) error {
	query := `
		INSERT INTO data_requests (id, officer_id, subject, provider,
		                           justification, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.OfficerID,
		req.Subject,
		req.Provider,
		req.Justification,
		req.Status,
		req.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create data request",
			zap.Error(err),
			zap.String("officer_id", req.OfficerID.String()),
			zap.String("provider", req.Provider),
		)
		return fmt.Errorf("create data request for %s: %w", req.OfficerID.String(), err)
	}

	return nil
}
