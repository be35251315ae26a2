package request

type CreateReportRequest struct {
	Category     string   `json:"category" validate:"required,oneof=financial_fraud identity_theft phishing online_harassment other"`
	Description  string   `json:"description" validate:"required,min=20"`
	IncidentDate string   `json:"incident_date" validate:"required"` // RFC 3339
	AmountLost   *float64 `json:"amount_lost,omitempty" validate:"omitempty,gte=0"`
}

type FlagSuspectRequest struct {
	EntityType  string `json:"entity_type" validate:"required,oneof=phone email url bank_account"`
	EntityValue string `json:"entity_value" validate:"required,min=3,max=255"`
	Reason      string `json:"reason" validate:"required,min=10"`
}

type CreateDataRequest struct {
	Subject       string `json:"subject" validate:"required,min=3,max=255"`
	Provider      string `json:"provider" validate:"required,min=2,max=100"`
	Justification string `json:"justification" validate:"required,min=20"`
}
