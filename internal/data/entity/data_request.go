package entity

import "github.com/google/uuid"

type DataRequestStatus string

const (
	DataRequestOpen DataRequestStatus = "OPEN"
)

// DataRequest is an officer-issued request for subscriber/transaction data
// from a provider, filed against a subject identifier under investigation.
type DataRequest struct {
	BaseSimple
	OfficerID     uuid.UUID         `db:"officer_id"`
	Subject       string            `db:"subject"`
	Provider      string            `db:"provider"`
	Justification string            `db:"justification"`
	Status        DataRequestStatus `db:"status"`
}
