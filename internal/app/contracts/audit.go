package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
)

type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
}

type EventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error
}
