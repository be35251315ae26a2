package repository

import (
	"fraud-portal/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Identity    IdentityRepository
	Report      ReportRepository
	SuspectFlag SuspectFlagRepository
	DataRequest DataRequestRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Identity:    NewIdentityRepository(db, log),
		Report:      NewReportRepository(db, log),
		SuspectFlag: NewSuspectFlagRepository(db, log),
		DataRequest: NewDataRequestRepository(db, log),
	}
}
