package contracts

import (
	"context"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Mount(ctx context.Context) (*models.AppointmentState, error)
	OpenBooking(ctx context.Context, doctorID int) (*models.AppointmentState, error)
	CancelBooking(ctx context.Context) (*models.AppointmentState, error)
	ConfirmBooking(ctx context.Context, request *requests.BookAppointment) (*models.AppointmentState, error)
	DismissNotice(ctx context.Context) (*models.AppointmentState, error)
}

type AppointmentClient interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
}
