package repository

import (
	"context"
	"fmt"

	"fraud-portal/internal/data/entity"
	"fraud-portal/pkg/database"

	"go.uber.org/zap"
)

type SuspectFlagRepository interface {
	Create(ctx context.Context, flag *entity.SuspectFlag) error
}

type suspectFlagRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSuspectFlagRepository(db database.PgxIface, log *zap.Logger) SuspectFlagRepository {
	return &suspectFlagRepository{
		db:  db,
		log: log.With(zap.String("repository", "suspect_flag")),
	}
}

func (r *suspectFlagRepository) Create(ctx context.Context, flag *entity.SuspectFlag) error {
	query := `
		INSERT INTO suspect_flags (id, reporter_id, entity_type, entity_value,
		                           reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		flag.ID,
		flag.ReporterID,
		flag.EntityType,
		flag.EntityValue,
		flag.Reason,
		flag.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create suspect flag",
			zap.Error(err),
			zap.String("reporter_id", flag.ReporterID.String()),
			zap.String("entity_type", string(flag.EntityType)),
		)
		return fmt.Errorf("create suspect flag for %s: %w", flag.ReporterID.String(), err)
	}

	return nil
}
