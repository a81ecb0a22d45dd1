package appointments

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/dto/responses"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentBackendClient struct {
	Transport *transport.Transport
	Log       *zap.Logger
}

func NewAppointmentBackendClient(transport *transport.Transport, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentBackendClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *appointmentBackendClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	body, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("appointmentBackendClient.Create error marshaling request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:      constvars.MethodPost,
		URL:         c.Transport.URL(constvars.ResourceAppointments),
		Resource:    constvars.ResourceNameAppointment,
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		c.Log.Error("appointmentBackendClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendCreateResource(err, constvars.ResourceNameAppointment)
	}
	if !resp.IsSuccess() {
		c.Log.Error("appointmentBackendClient.Create backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendCreateResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameAppointment)
	}

	appointment := &responses.Appointment{
		DoctorID:    request.DoctorID,
		DoctorName:  request.DoctorName,
		PatientID:   request.PatientID,
		PatientName: request.PatientName,
		Start:       request.Start,
		End:         request.End,
	}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, appointment); err != nil {
			c.Log.Warn("appointmentBackendClient.Create response is not an appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(exceptions.ErrBackendDecodeResponse(err, constvars.ResourceNameAppointment)),
			)
		}
	}

	c.Log.Info("appointmentBackendClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorIDKey, appointment.DoctorID),
	)
	return appointment, nil
}
