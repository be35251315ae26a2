package usecase

import (
	"context"
	"fmt"
	"time"

	"fraud-portal/internal/data/entity"
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/dto/response"
	"fraud-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService covers the authenticated write paths of the portal: filing
// fraud reports, flagging suspicious entities and officer data requests. Each
// operation is a single insert.
type ReportService interface {
	FileReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateReportRequest) (*response.ReportResponse, error)
	FlagSuspect(ctx context.Context, reporterID uuid.UUID, req *request.FlagSuspectRequest) (*response.SuspectFlagResponse, error)
	CreateDataRequest(ctx context.Context, officerID uuid.UUID, req *request.CreateDataRequest) (*response.DataRequestResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log,
	}
}

func (s *reportService) FileReport(ctx context.Context, reporterID uuid.UUID, req *request.CreateReportRequest) (*response.ReportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("File report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	incidentDate, err := time.Parse(time.RFC3339, req.IncidentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: incident_date must be RFC 3339", ErrValidation)
	}

	report := &entity.Report{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReporterID:   reporterID,
		Category:     entity.ReportCategory(req.Category),
		Description:  req.Description,
		IncidentDate: incidentDate,
		AmountLost:   req.AmountLost,
		Status:       entity.ReportSubmitted,
	}

	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.log.Error("Failed to file report", zap.Error(err), zap.String("reporter_id", reporterID.String()))
		return nil, fmt.Errorf("file report: %w", err)
	}

	s.log.Info("Report filed",
		zap.String("report_id", report.ID.String()),
		zap.String("category", req.Category),
	)

	resp := response.ReportToResponse(report)
	return &resp, nil
}

func (s *reportService) FlagSuspect(ctx context.Context, reporterID uuid.UUID, req *request.FlagSuspectRequest) (*response.SuspectFlagResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Flag suspect validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	flag := &entity.SuspectFlag{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReporterID:  reporterID,
		EntityType:  entity.SuspectEntityType(req.EntityType),
		EntityValue: req.EntityValue,
		Reason:      req.Reason,
	}

	if err := s.repo.SuspectFlag.Create(ctx, flag); err != nil {
		s.log.Error("Failed to flag suspect", zap.Error(err), zap.String("reporter_id", reporterID.String()))
		return nil, fmt.Errorf("flag suspect: %w", err)
	}

	s.log.Info("Suspect flagged",
		zap.String("flag_id", flag.ID.String()),
		zap.String("entity_type", req.EntityType),
	)

	resp := response.SuspectFlagToResponse(flag)
	return &resp, nil
}

func (s *reportService) CreateDataRequest(ctx context.Context, officerID uuid.UUID, req *request.CreateDataRequest) (*response.DataRequestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Data request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	dataReq := &entity.DataRequest{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OfficerID:     officerID,
		Subject:       req.Subject,
		Provider:      req.Provider,
		Justification: req.Justification,
		Status:        entity.DataRequestOpen,
	}

	if err := s.repo.DataRequest.Create(ctx, dataReq); err != nil {
		s.log.Error("Failed to create data request", zap.Error(err), zap.String("officer_id", officerID.String()))
		return nil, fmt.Errorf("create data request: %w", err)
	}

	s.log.Info("Data request created",
		zap.String("request_id", dataReq.ID.String()),
		zap.String("provider", req.Provider),
	)

	resp := response.DataRequestToResponse(dataReq)
	return &resp, nil
}
