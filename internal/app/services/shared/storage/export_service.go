package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/responses"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var doctorExportHeader = []string{"id", "name", "surname", "address", "department", "is_available"}

type exportService struct {
	Storage    contracts.Storage
	BucketName string
	URLExpiry  time.Duration
	Log        *zap.Logger
	now        func() time.Time
}

// NewExportService writes CSV exports through storage. A nil storage yields
// a disabled service.
func NewExportService(storage contracts.Storage, bucketName string, urlExpiry time.Duration, logger *zap.Logger) contracts.ExportService {
	return &exportService{
		Storage:    storage,
		BucketName: bucketName,
		URLExpiry:  urlExpiry,
		Log:        logger,
		now:        time.Now,
	}
}

func (s *exportService) Enabled() bool {
	return s.Storage != nil
}

func (s *exportService) ExportDoctors(ctx context.Context, doctors []models.Doctor, departments []models.Department) (*responses.Export, error) {
	requestID := utils.GetRequestID(ctx)
	if !s.Enabled() {
		return nil, exceptions.ErrMinioNotConfigured()
	}

	body, err := BuildDoctorsCSV(doctors, departments)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	objectName := utils.GenerateExportObjectName(constvars.ViewDoctors, s.now())
	err = utils.LogOperation(s.Log, "exportService.ExportDoctors.upload", requestID, func() error {
		_, err := s.Storage.UploadObject(ctx, s.BucketName, objectName, constvars.MIMETextCSV, bytes.NewReader(body), int64(len(body)))
		return err
	})
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.GetObjectUrlWithExpiryTime(ctx, s.BucketName, objectName, s.URLExpiry)
	if err != nil {
		s.Log.Error("exportService.ExportDoctors error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, s.BucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("exportService.ExportDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
		zap.Int(constvars.LoggingItemsCountKey, len(doctors)),
	)
	return &responses.Export{Object: objectName, URL: url}, nil
}

// BuildDoctorsCSV renders the roster with department names resolved.
func BuildDoctorsCSV(doctors []models.Doctor, departments []models.Department) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(doctorExportHeader); err != nil {
		return nil, err
	}
	for _, doctor := range doctors {
		record := []string{
			strconv.Itoa(doctor.ID),
			doctor.Name,
			doctor.Surname,
			doctor.Address,
			doctor.DepartmentName(departments),
			strconv.FormatBool(doctor.IsAvailable),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
