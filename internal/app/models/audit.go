package models

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionBook   AuditAction = "book"
	AuditActionExport AuditAction = "export"
)

// AuditEntry records one successful mutation issued through the front-end.
type AuditEntry struct {
	TimeModel  `bson:",inline"`
	RequestID  string      `json:"request_id" bson:"request_id"`
	SessionID  string      `json:"session_id" bson:"session_id"`
	Resource   string      `json:"resource" bson:"resource"`
	Action     AuditAction `json:"action" bson:"action"`
	ResourceID int         `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	Summary    string      `json:"summary" bson:"summary"`
}
