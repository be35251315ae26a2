package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fraud-portal/internal/data/entity"
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReportRepository struct {
	CreateFunc func(ctx context.Context, report *entity.Report) error
}

func (m *MockReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	return nil
}

type MockSuspectFlagRepository struct {
	CreateFunc func(ctx context.Context, flag *entity.SuspectFlag) error
}

func (m *MockSuspectFlagRepository) Create(ctx context.Context, flag *entity.SuspectFlag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, flag)
	}
	return nil
}

type MockDataRequestRepository struct {
	CreateFunc func(ctx context.Context, req *entity.DataRequest) error
}

func (m *MockDataRequestRepository) Create(ctx context.Context, req *entity.DataRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil
}

func newTestReportService(repo *repository.Repository) ReportService {
	return NewReportService(repo, zap.NewNop())
}

func validReportRequest() *request.CreateReportRequest {
	amount := 24999.50
	return &request.CreateReportRequest{
		Category:     "financial_fraud",
		Description:  "Caller posing as bank support drained my savings account.",
		IncidentDate: time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
		AmountLost:   &amount,
	}
}

func TestFileReport_Success(t *testing.T) {
	reporterID := uuid.New()
	var stored *entity.Report

	repo := &repository.Repository{
		Report: &MockReportRepository{
			CreateFunc: func(ctx context.Context, report *entity.Report) error {
				stored = report
				return nil
			},
		},
	}
	svc := newTestReportService(repo)

	resp, err := svc.FileReport(context.Background(), reporterID, validReportRequest())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, reporterID, stored.ReporterID)
	assert.Equal(t, entity.CategoryFinancialFraud, stored.Category)
	assert.Equal(t, entity.ReportSubmitted, stored.Status)
	assert.Equal(t, stored.ID.String(), resp.ID)
	assert.Equal(t, string(entity.ReportSubmitted), resp.Status)
}

func TestFileReport_BadIncidentDate(t *testing.T) {
	svc := newTestReportService(&repository.Repository{Report: &MockReportRepository{}})

	req := validReportRequest()
	req.IncidentDate = "31-08-2026"

	_, err := svc.FileReport(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileReport_UnknownCategory(t *testing.T) {
	svc := newTestReportService(&repository.Repository{Report: &MockReportRepository{}})

	req := validReportRequest()
	req.Category = "tax_evasion"

	_, err := svc.FileReport(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileReport_StoreFailure(t *testing.T) {
	repo := &repository.Repository{
		Report: &MockReportRepository{
			CreateFunc: func(ctx context.Context, report *entity.Report) error {
				return errors.New("connection reset")
			},
		},
	}
	svc := newTestReportService(repo)

	_, err := svc.FileReport(context.Background(), uuid.New(), validReportRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestFlagSuspect_Success(t *testing.T) {
	reporterID := uuid.New()
	var stored *entity.SuspectFlag

	repo := &repository.Repository{
		SuspectFlag: &MockSuspectFlagRepository{
			CreateFunc: func(ctx context.Context, flag *entity.SuspectFlag) error {
				stored = flag
				return nil
			},
		},
	}
	svc := newTestReportService(repo)

	resp, err := svc.FlagSuspect(context.Background(), reporterID, &request.FlagSuspectRequest{
		EntityType:  "phone",
		EntityValue: "+919800112233",
		Reason:      "Repeated calls demanding OTP codes.",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, entity.SuspectPhone, stored.EntityType)
	assert.Equal(t, "+919800112233", resp.EntityValue)
}

func TestFlagSuspect_RejectsUnknownEntityType(t *testing.T) {
	svc := newTestReportService(&repository.Repository{SuspectFlag: &MockSuspectFlagRepository{}})

	_, err := svc.FlagSuspect(context.Background(), uuid.New(), &request.FlagSuspectRequest{
		EntityType:  "ip_address",
		EntityValue: "10.0.0.1",
		Reason:      "Scanned my router last night.",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDataRequest_Success(t *testing.T) {
	officerID := uuid.New()
	var stored *entity.DataRequest

	repo := &repository.Repository{
		DataRequest: &MockDataRequestRepository{
			CreateFunc: func(ctx context.Context, req *entity.DataRequest) error {
				stored = req
				return nil
			},
		},
	}
	svc := newTestReportService(repo)

	resp, err := svc.CreateDataRequest(context.Background(), officerID, &request.CreateDataRequest{
		Subject:       "+919800112233",
		Provider:      "Airtel",
		Justification: "Subscriber records needed for case FR-2026-0183.",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, officerID, stored.OfficerID)
	assert.Equal(t, entity.DataRequestOpen, stored.Status)
	assert.Equal(t, "Airtel", resp.Provider)
}

func TestCreateDataRequest_ShortJustification(t *testing.T) {
	svc := newTestReportService(&repository.Repository{DataRequest: &MockDataRequestRepository{}})

	_, err := svc.CreateDataRequest(context.Background(), uuid.New(), &request.CreateDataRequest{
		Subject:       "+919800112233",
		Provider:      "Airtel",
		Justification: "need it",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := &MockIdentityRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
			return nil, nil
		},
	}
	svc := NewProfileService(repo, zap.NewNop())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile_Conflict(t *testing.T) {
	repo := &MockIdentityRepository{
		UpdateProfileFunc: func(ctx context.Context, id uuid.UUID, phone, email, address string) error {
			return repository.ErrDuplicateIdentity
		},
	}
	svc := NewProfileService(repo, zap.NewNop())

	err := svc.UpdateProfile(context.Background(), uuid.New(), &request.UpdateProfileRequest{
		Phone:   "+919812345678",
		Email:   "asha@example.com",
		Address: "14 MG Road, Pune",
	})
	assert.ErrorIs(t, err, ErrConflict)
}
