package response

import (
	"time"

	"fraud-portal/internal/data/entity"
)

type ReportResponse struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	IncidentDate time.Time `json:"incident_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type SuspectFlagResponse struct {
	ID          string    `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityValue string    `json:"entity_value"`
	CreatedAt   time.Time `json:"created_at"`
}

type DataRequestResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func ReportToResponse(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:           r.ID.String(),
		Category:     string(r.Category),
		Status:       string(r.Status),
		IncidentDate: r.IncidentDate,
		CreatedAt:    r.CreatedAt,
	}
}

func SuspectFlagToResponse(f *entity.SuspectFlag) SuspectFlagResponse {
	return SuspectFlagResponse{
		ID:          f.ID.String(),
		EntityType:  string(f.EntityType),
		EntityValue: f.EntityValue,
		CreatedAt:   f.CreatedAt,
	}
}

func DataRequestToResponse(d *entity.DataRequest) DataRequestResponse {
	return DataRequestResponse{
		ID:        d.ID.String(),
		Subject:   d.Subject,
		Provider:  d.Provider,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
	}
}
