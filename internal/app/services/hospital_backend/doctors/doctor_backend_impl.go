package doctors

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorBackendClient struct {
	Transport *transport.Transport
	Log       *zap.Logger
}

func NewDoctorBackendClient(transport *transport.Transport, logger *zap.Logger) contracts.DoctorClient {
	return &doctorBackendClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *doctorBackendClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("doctorBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:   constvars.MethodGet,
		URL:      c.Transport.URL(constvars.ResourceDoctors),
		Resource: constvars.ResourceNameDoctor,
	})
	if err != nil {
		c.Log.Error("doctorBackendClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendFetchResource(err, constvars.ResourceNameDoctor)
	}
	if !resp.IsSuccess() {
		c.Log.Error("doctorBackendClient.FindAll backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendFetchResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDoctor)
	}

	doctors := make([]models.Doctor, 0)
	err = json.Unmarshal(resp.Body, &doctors)
	if err != nil {
		c.Log.Error("doctorBackendClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err, constvars.ResourceNameDoctor)
	}

	c.Log.Info("doctorBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, len(doctors)),
	)
	return doctors, nil
}

func (c *doctorBackendClient) Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("doctorBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:      constvars.MethodPost,
		URL:         c.Transport.URL(constvars.ResourceDoctors),
		Resource:    constvars.ResourceNameDoctor,
		ContentType: constvars.MIMEApplicationForm,
		Body:        transport.FormBody(doctorFormValues(doctor)),
	})
	if err != nil {
		return nil, exceptions.ErrBackendCreateResource(err, constvars.ResourceNameDoctor)
	}
	if !resp.IsSuccess() {
		c.Log.Error("doctorBackendClient.Create backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendCreateResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDoctor)
	}

	return decodeDoctor(resp, doctor), nil
}

func (c *doctorBackendClient) Update(ctx context.Context, id int, doctor models.Doctor) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("doctorBackendClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowIDKey, id),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:      constvars.MethodPut,
		URL:         c.Transport.URL(constvars.ResourceDoctors, id),
		Resource:    constvars.ResourceNameDoctor,
		ContentType: constvars.MIMEApplicationForm,
		Body:        transport.FormBody(doctorFormValues(doctor)),
	})
	if err != nil {
		return nil, exceptions.ErrBackendUpdateResource(err, constvars.ResourceNameDoctor)
	}
	if !resp.IsSuccess() {
		c.Log.Error("doctorBackendClient.Update backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendUpdateResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDoctor)
	}

	doctor.ID = id
	return decodeDoctor(resp, doctor), nil
}

func (c *doctorBackendClient) Delete(ctx context.Context, id int) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("doctorBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowIDKey, id),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:   constvars.MethodDelete,
		URL:      c.Transport.URL(constvars.ResourceDoctors, id),
		Resource: constvars.ResourceNameDoctor,
	})
	if err != nil {
		return exceptions.ErrBackendDeleteResource(err, constvars.ResourceNameDoctor)
	}
	if !resp.IsSuccess() {
		c.Log.Error("doctorBackendClient.Delete backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrBackendDeleteResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDoctor)
	}
	return nil
}

func doctorFormValues(doctor models.Doctor) url.Values {
	values := url.Values{}
	values.Set(constvars.FormFieldName, doctor.Name)
	values.Set(constvars.FormFieldSurname, doctor.Surname)
	values.Set(constvars.FormFieldAddress, doctor.Address)
	values.Set(constvars.FormFieldDepartmentID, strconv.Itoa(doctor.DepartmentID))
	values.Set(constvars.FormFieldIsAvailable, strconv.FormatBool(doctor.IsAvailable))
	return values
}

// decodeDoctor reads the echoed doctor, falling back to what was sent when the
// body is empty or not a doctor.
func decodeDoctor(resp *transport.Response, sent models.Doctor) *models.Doctor {
	if len(resp.Body) == 0 {
		return &sent
	}
	doctor := new(models.Doctor)
	if err := json.Unmarshal(resp.Body, doctor); err != nil || (doctor.ID == 0 && doctor.Name == "") {
		return &sent
	}
	return doctor
}
