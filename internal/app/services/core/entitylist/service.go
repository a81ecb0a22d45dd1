package entitylist

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/metrics"
	"hospital-web-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Service runs one List event per call against the caller's stored view
// state: load, apply, save.
type Service[T models.Entity] struct {
	List  *List[T]
	Store contracts.ViewStateRepository
	View  string
	Log   *zap.Logger
}

func NewService[T models.Entity](list *List[T], store contracts.ViewStateRepository, view string, logger *zap.Logger) *Service[T] {
	return &Service[T]{
		List:  list,
		Store: store,
		View:  view,
		Log:   logger,
	}
}

// Load returns the stored state, or an empty one for a new session.
func (s *Service[T]) Load(ctx context.Context) (*models.ListState[T], error) {
	state := new(models.ListState[T])
	_, err := s.Store.Load(ctx, utils.GetSessionID(ctx), s.View, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Apply loads the state, runs op and persists the result. An op error is
// already reflected in the state's notice, so only store failures are
// returned.
func (s *Service[T]) Apply(ctx context.Context, event string, op func(state *models.ListState[T]) error) (*models.ListState[T], error) {
	requestID := utils.GetRequestID(ctx)

	state, err := s.Load(ctx)
	if err != nil {
		s.Log.Error("Service.Apply error loading view state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewKey, s.View),
			zap.Error(err),
		)
		return nil, err
	}

	outcome := constvars.EventOutcomeOK
	if opErr := op(state); opErr != nil {
		outcome = constvars.EventOutcomeError
		s.Log.Warn("Service.Apply event ended with error notice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewKey, s.View),
			zap.String(constvars.LoggingOperationKey, event),
			zap.Error(opErr),
		)
	}
	metrics.ViewEventsTotal.WithLabelValues(s.View, event, outcome).Inc()

	err = s.Store.Save(ctx, utils.GetSessionID(ctx), s.View, state)
	if err != nil {
		s.Log.Error("Service.Apply error saving view state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingViewKey, s.View),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Debug("Service.Apply event handled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, s.View),
		zap.String(constvars.LoggingOperationKey, event),
		zap.Int(constvars.LoggingItemsCountKey, len(state.Items)),
	)
	return state, nil
}

func (s *Service[T]) Mount(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventMount, func(state *models.ListState[T]) error {
		return s.List.Mount(ctx, state)
	})
}

func (s *Service[T]) BeginEdit(ctx context.Context, id int) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventBeginEdit, func(state *models.ListState[T]) error {
		return s.List.BeginEdit(state, id)
	})
}

func (s *Service[T]) CancelEdit(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventCancelEdit, s.List.CancelEdit)
}

// SaveEntity submits the edited row. invalid carries the form validation
// result; a non-nil value stops the event before any backend call.
func (s *Service[T]) SaveEntity(ctx context.Context, id int, pending T, invalid error) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventSave, func(state *models.ListState[T]) error {
		return s.List.Save(ctx, state, id, pending, invalid)
	})
}

func (s *Service[T]) RequestDelete(ctx context.Context, id int) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventRequestDelete, func(state *models.ListState[T]) error {
		return s.List.RequestDelete(state, id)
	})
}

func (s *Service[T]) DismissDelete(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventDismissDelete, s.List.DismissDelete)
}

func (s *Service[T]) ConfirmDelete(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventConfirmDelete, func(state *models.ListState[T]) error {
		return s.List.ConfirmDelete(ctx, state)
	})
}

func (s *Service[T]) OpenCreate(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventOpenCreate, s.List.OpenCreate)
}

func (s *Service[T]) CloseCreate(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventCloseCreate, s.List.CloseCreate)
}

// CreateEntity submits the create modal. invalid works as in SaveEntity.
func (s *Service[T]) CreateEntity(ctx context.Context, draft T, invalid error) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventCreate, func(state *models.ListState[T]) error {
		return s.List.Create(ctx, state, draft, invalid)
	})
}

func (s *Service[T]) DismissNotice(ctx context.Context) (*models.ListState[T], error) {
	return s.Apply(ctx, constvars.EventDismissNotice, s.List.DismissNotice)
}
