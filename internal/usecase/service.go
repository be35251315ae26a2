package usecase

import (
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/guard"
	"fraud-portal/internal/notify"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Profile ProfileService
	Report  ReportService
}

func NewService(
	repo *repository.Repository,
	g guard.Guard,
	sender notify.CodeSender,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.Identity, g, sender, config, log),
		Profile: NewProfileService(repo.Identity, log),
		Report:  NewReportService(repo, log),
	}
}
