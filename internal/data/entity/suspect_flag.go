package entity

import "github.com/google/uuid"

type SuspectEntityType string

const (
	SuspectPhone       SuspectEntityType = "phone"
	SuspectEmail       SuspectEntityType = "email"
	SuspectURL         SuspectEntityType = "url"
	SuspectBankAccount SuspectEntityType = "bank_account"
)

// SuspectFlag marks a phone number, email, URL or bank account as suspicious.
type SuspectFlag struct {
	BaseSimple
	ReporterID  uuid.UUID         `db:"reporter_id"`
	EntityType  SuspectEntityType `db:"entity_type"`
	EntityValue string            `db:"entity_value"`
	Reason      string            `db:"reason"`
}
