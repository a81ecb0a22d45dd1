package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/dto/responses"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, body io.Reader, size int64) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}

// ExportService writes roster exports to object storage.
type ExportService interface {
	Enabled() bool
	ExportDoctors(ctx context.Context, doctors []models.Doctor, departments []models.Department) (*responses.Export, error)
}
