package audit

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// auditLogRepository writes audit entries to the application log. It is
// used when no audit database is configured.
type auditLogRepository struct {
	Log *zap.Logger
}

func NewAuditLogRepository(logger *zap.Logger) contracts.AuditRepository {
	return &auditLogRepository{Log: logger}
}

func (r *auditLogRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.SetCreatedAt()
	}
	r.Log.Info("Audit entry recorded",
		zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
		zap.String(constvars.LoggingSessionIDKey, entry.SessionID),
		zap.String(constvars.LoggingResourceKey, entry.Resource),
		zap.String(constvars.LoggingOperationKey, string(entry.Action)),
		zap.Int(constvars.LoggingRowIDKey, entry.ResourceID),
		zap.String("summary", entry.Summary),
	)
	return nil
}
