package appointments

import (
	"context"
	"fmt"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/dto/requests"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/metrics"
	"hospital-web-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	DoctorClient        contracts.DoctorClient
	AppointmentClient   contracts.AppointmentClient
	ViewStateRepository contracts.ViewStateRepository
	AuditRepository     contracts.AuditRepository
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewAppointmentUsecase(
	doctorClient contracts.DoctorClient,
	appointmentClient contracts.AppointmentClient,
	viewStateRepository contracts.ViewStateRepository,
	auditRepository contracts.AuditRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		DoctorClient:        doctorClient,
		AppointmentClient:   appointmentClient,
		ViewStateRepository: viewStateRepository,
		AuditRepository:     auditRepository,
		EventPublisher:      eventPublisher,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

// TimeSlots lists the bookable start times, hourly from 08:00 to 20:00.
func TimeSlots() []string {
	slots := make([]string, 0, constvars.AppointmentLastSlotHour-constvars.AppointmentFirstSlotHour+1)
	for hour := constvars.AppointmentFirstSlotHour; hour <= constvars.AppointmentLastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// BuildAppointment turns a filled booking into an appointment starting at
// the chosen date and slot in loc and lasting one hour.
func BuildAppointment(doctor models.Doctor, booking *models.Booking, loc *time.Location, patientID int) (*models.Appointment, error) {
	start, err := time.ParseInLocation(constvars.AppointmentDateLayout+" "+constvars.AppointmentSlotLayout, booking.Date+" "+booking.Time, loc)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return &models.Appointment{
		DoctorID:    doctor.ID,
		DoctorName:  doctor.FullName(),
		PatientID:   patientID,
		PatientName: booking.PatientName,
		Start:       start,
		End:         start.Add(models.AppointmentDuration),
	}, nil
}

func (uc *appointmentUsecase) Mount(ctx context.Context) (*models.AppointmentState, error) {
	return uc.apply(ctx, constvars.EventMount, func(state *models.AppointmentState) error {
		state.Booking = nil
		state.Notice = nil
		doctors, err := uc.DoctorClient.FindAll(ctx)
		if err != nil {
			state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeFetchFailed, constvars.ResourceNameDoctor))
			return err
		}
		state.Doctors = doctors
		state.Loaded = true
		return nil
	})
}

func (uc *appointmentUsecase) OpenBooking(ctx context.Context, doctorID int) (*models.AppointmentState, error) {
	return uc.apply(ctx, constvars.EventOpenBooking, func(state *models.AppointmentState) error {
		doctor, ok := state.FindDoctor(doctorID)
		if !ok {
			state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeRowMissing, constvars.ResourceNameDoctor))
			return exceptions.ErrViewStateRowNotFound(doctorID)
		}
		if !doctor.IsAvailable {
			state.Notice = models.NewErrorNotice(constvars.NoticeAppointmentUnavailable)
			return exceptions.ErrViewStateDoctorUnavailable(doctorID)
		}
		state.Booking = &models.Booking{DoctorID: doctorID}
		return nil
	})
}

func (uc *appointmentUsecase) CancelBooking(ctx context.Context) (*models.AppointmentState, error) {
	return uc.apply(ctx, constvars.EventCancelBooking, func(state *models.AppointmentState) error {
		state.Booking = nil
		return nil
	})
}

// ConfirmBooking posts the appointment. The modal closes only when the
// backend accepted it; otherwise it stays open with the entered values.
func (uc *appointmentUsecase) ConfirmBooking(ctx context.Context, request *requests.BookAppointment) (*models.AppointmentState, error) {
	return uc.apply(ctx, constvars.EventConfirmBook, func(state *models.AppointmentState) error {
		if state.Booking == nil {
			state.Notice = models.NewErrorNotice(constvars.NoticeAppointmentFailed)
			return exceptions.ErrViewStateNoBooking()
		}

		utils.SanitizeBookAppointment(request)
		state.Booking.Date = request.Date
		state.Booking.Time = request.Time
		state.Booking.PatientName = request.PatientName

		if err := utils.ValidateStruct(request); err != nil {
			state.Notice = models.NewErrorNotice(exceptions.FormatFirstValidationError(err))
			return exceptions.ErrInputValidation(err)
		}

		doctor, ok := state.FindDoctor(state.Booking.DoctorID)
		if !ok || !doctor.IsAvailable {
			state.Notice = models.NewErrorNotice(constvars.NoticeAppointmentUnavailable)
			return exceptions.ErrViewStateDoctorUnavailable(state.Booking.DoctorID)
		}

		appointment, err := BuildAppointment(doctor, state.Booking, uc.InternalConfig.App.Location(), uc.InternalConfig.Appointment.DefaultPatientID)
		if err != nil {
			state.Notice = models.NewErrorNotice(constvars.NoticeAppointmentFailed)
			return err
		}

		payload := toCreateAppointment(appointment)
		_, err = uc.AppointmentClient.Create(ctx, payload)
		if err != nil {
			state.Notice = models.NewErrorNotice(constvars.NoticeAppointmentFailed)
			return err
		}

		uc.afterBooked(ctx, payload)

		state.Booking = nil
		state.Notice = models.NewSuccessNotice(
			constvars.NoticeTitleAppointmentCreated,
			fmt.Sprintf(constvars.NoticeAppointmentCreated, doctor.Name, doctor.Surname, payload.Start),
		)
		return nil
	})
}

func (uc *appointmentUsecase) DismissNotice(ctx context.Context) (*models.AppointmentState, error) {
	return uc.apply(ctx, constvars.EventDismissNotice, func(state *models.AppointmentState) error {
		state.Notice = nil
		return nil
	})
}

// apply loads the scheduler state, runs op and stores the result. Only
// store failures are returned; op failures live in the notice.
func (uc *appointmentUsecase) apply(ctx context.Context, event string, op func(state *models.AppointmentState) error) (*models.AppointmentState, error) {
	requestID := utils.GetRequestID(ctx)
	sessionID := utils.GetSessionID(ctx)

	state := new(models.AppointmentState)
	if _, err := uc.ViewStateRepository.Load(ctx, sessionID, constvars.ViewAppointments, state); err != nil {
		uc.Log.Error("appointmentUsecase.apply error loading view state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	outcome := constvars.EventOutcomeOK
	if opErr := op(state); opErr != nil {
		outcome = constvars.EventOutcomeError
		uc.Log.Warn("appointmentUsecase.apply event ended with error notice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, event),
			zap.Error(opErr),
		)
	}
	metrics.ViewEventsTotal.WithLabelValues(constvars.ViewAppointments, event, outcome).Inc()

	if err := uc.ViewStateRepository.Save(ctx, sessionID, constvars.ViewAppointments, state); err != nil {
		uc.Log.Error("appointmentUsecase.apply error saving view state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return state, nil
}

// afterBooked fans a booked appointment out to the event queue and the
// audit trail. Neither failure undoes the booking.
func (uc *appointmentUsecase) afterBooked(ctx context.Context, payload *requests.CreateAppointment) {
	requestID := utils.GetRequestID(ctx)

	if uc.EventPublisher != nil {
		event := &models.AppointmentBookedEvent{
			RequestID:   requestID,
			DoctorID:    payload.DoctorID,
			DoctorName:  payload.DoctorName,
			PatientID:   payload.PatientID,
			PatientName: payload.PatientName,
			Start:       payload.Start,
			End:         payload.End,
		}
		if err := uc.EventPublisher.PublishAppointmentBooked(ctx, event); err != nil {
			uc.Log.Warn("appointmentUsecase.ConfirmBooking failed to publish event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	if uc.AuditRepository != nil {
		entry := &models.AuditEntry{
			RequestID:  requestID,
			SessionID:  utils.GetSessionID(ctx),
			Resource:   constvars.ResourceNameAppointment,
			Action:     models.AuditActionBook,
			ResourceID: payload.DoctorID,
			Summary:    fmt.Sprintf("%s with Dr. %s at %s", payload.PatientName, payload.DoctorName, payload.Start),
		}
		if err := uc.AuditRepository.Record(ctx, entry); err != nil {
			uc.Log.Warn("appointmentUsecase.ConfirmBooking failed to write audit entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	utils.LogBusinessEvent(uc.Log, "appointment_booked", requestID,
		zap.Int(constvars.LoggingDoctorIDKey, payload.DoctorID),
		zap.String("start", payload.Start),
	)
}

func toCreateAppointment(appointment *models.Appointment) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		Start:       appointment.Start.Format(constvars.AppointmentDateTimeLayout),
		End:         appointment.End.Format(constvars.AppointmentDateTimeLayout),
	}
}
