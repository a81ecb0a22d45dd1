package departments

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/app/services/hospital_backend/transport"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type departmentBackendClient struct {
	Transport *transport.Transport
	Log       *zap.Logger
}

func NewDepartmentBackendClient(transport *transport.Transport, logger *zap.Logger) contracts.DepartmentClient {
	return &departmentBackendClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *departmentBackendClient) FindAll(ctx context.Context) ([]models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("departmentBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:   constvars.MethodGet,
		URL:      c.Transport.URL(constvars.ResourceDepartments),
		Resource: constvars.ResourceNameDepartment,
	})
	if err != nil {
		c.Log.Error("departmentBackendClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendFetchResource(err, constvars.ResourceNameDepartment)
	}
	if !resp.IsSuccess() {
		c.Log.Error("departmentBackendClient.FindAll backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendFetchResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDepartment)
	}

	departments := make([]models.Department, 0)
	err = json.Unmarshal(resp.Body, &departments)
	if err != nil {
		c.Log.Error("departmentBackendClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err, constvars.ResourceNameDepartment)
	}

	c.Log.Info("departmentBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, len(departments)),
	)
	return departments, nil
}

func (c *departmentBackendClient) FindByID(ctx context.Context, id int) (*models.DepartmentDetails, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("departmentBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowIDKey, id),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:   constvars.MethodGet,
		URL:      c.Transport.URL(constvars.ResourceDepartments, id),
		Resource: constvars.ResourceNameDepartment,
	})
	if err != nil {
		return nil, exceptions.ErrBackendFetchResource(err, constvars.ResourceNameDepartment)
	}
	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrPageNotFound(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()))
	}
	if !resp.IsSuccess() {
		c.Log.Error("departmentBackendClient.FindByID backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendFetchResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDepartment)
	}

	details := new(models.DepartmentDetails)
	err = json.Unmarshal(resp.Body, details)
	if err != nil {
		return nil, exceptions.ErrBackendDecodeResponse(err, constvars.ResourceNameDepartment)
	}
	if details.ID == 0 {
		details.ID = id
	}
	return details, nil
}

func (c *departmentBackendClient) Create(ctx context.Context, department models.Department) (*models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("departmentBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:      constvars.MethodPost,
		URL:         c.Transport.URL(constvars.ResourceDepartments),
		Resource:    constvars.ResourceNameDepartment,
		ContentType: constvars.MIMEApplicationForm,
		Body:        transport.FormBody(departmentFormValues(department)),
	})
	if err != nil {
		return nil, exceptions.ErrBackendCreateResource(err, constvars.ResourceNameDepartment)
	}
	if !resp.IsSuccess() {
		c.Log.Error("departmentBackendClient.Create backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendCreateResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDepartment)
	}

	return decodeDepartment(resp, department), nil
}

func (c *departmentBackendClient) Update(ctx context.Context, id int, department models.Department) (*models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("departmentBackendClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowIDKey, id),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:      constvars.MethodPut,
		URL:         c.Transport.URL(constvars.ResourceDepartments, id),
		Resource:    constvars.ResourceNameDepartment,
		ContentType: constvars.MIMEApplicationForm,
		Body:        transport.FormBody(departmentFormValues(department)),
	})
	if err != nil {
		return nil, exceptions.ErrBackendUpdateResource(err, constvars.ResourceNameDepartment)
	}
	if !resp.IsSuccess() {
		c.Log.Error("departmentBackendClient.Update backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendUpdateResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDepartment)
	}

	department.ID = id
	return decodeDepartment(resp, department), nil
}

func (c *departmentBackendClient) Delete(ctx context.Context, id int) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("departmentBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowIDKey, id),
	)

	resp, err := c.Transport.Do(ctx, &transport.Request{
		Method:   constvars.MethodDelete,
		URL:      c.Transport.URL(constvars.ResourceDepartments, id),
		Resource: constvars.ResourceNameDepartment,
	})
	if err != nil {
		return exceptions.ErrBackendDeleteResource(err, constvars.ResourceNameDepartment)
	}
	if !resp.IsSuccess() {
		c.Log.Error("departmentBackendClient.Delete backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrBackendDeleteResource(exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, resp.Problem()), constvars.ResourceNameDepartment)
	}
	return nil
}

func departmentFormValues(department models.Department) url.Values {
	values := url.Values{}
	values.Set(constvars.FormFieldName, department.Name)
	return values
}

// decodeDepartment reads the echoed department, falling back to what was sent when the
// body is empty or not a department.
func decodeDepartment(resp *transport.Response, sent models.Department) *models.Department {
	if len(resp.Body) == 0 {
		return &sent
	}
	department := new(models.Department)
	if err := json.Unmarshal(resp.Body, department); err != nil || (department.ID == 0 && department.Name == "") {
		return &sent
	}
	return department
}
