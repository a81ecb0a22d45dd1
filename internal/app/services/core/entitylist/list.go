package entitylist

import (
	"context"
	"fmt"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Names holds the wording a list uses in its notices.
type Names struct {
	// Resource is the lower case singular name, e.g. "department".
	Resource string
	// Display is the capitalized singular name, e.g. "Department".
	Display      string
	TitleCreated string
	TitleUpdated string
	TitleDeleted string
}

// List applies UI events to a ListState against the backend. Backend and
// validation failures never escape as page errors: they become an error
// notice and leave the state as it was before the event.
type List[T models.Entity] struct {
	Client contracts.EntityClient[T]
	Audit  contracts.AuditRepository
	Names  Names
	Log    *zap.Logger
}

func NewList[T models.Entity](client contracts.EntityClient[T], audit contracts.AuditRepository, names Names, logger *zap.Logger) *List[T] {
	return &List[T]{
		Client: client,
		Audit:  audit,
		Names:  names,
		Log:    logger,
	}
}

// Mount drops transient modes and replaces the items with a fresh read-all.
func (l *List[T]) Mount(ctx context.Context, state *models.ListState[T]) error {
	state.Edit = nil
	state.PendingDelete = nil
	state.CreateOpen = false
	state.CreateDraft = *new(T)
	state.Notice = nil
	return l.refetch(ctx, state)
}

func (l *List[T]) BeginEdit(state *models.ListState[T], id int) error {
	index := state.Find(id)
	if index < 0 {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeRowMissing, l.Names.Resource))
		return exceptions.ErrViewStateRowNotFound(id)
	}
	state.Edit = &models.RowEdit[T]{RowID: id, Pending: state.Items[index]}
	return nil
}

func (l *List[T]) CancelEdit(state *models.ListState[T]) error {
	state.Edit = nil
	return nil
}

// Save updates the edited row and then re-reads the whole list. Until both
// succeed the row stays in edit mode with the submitted values.
func (l *List[T]) Save(ctx context.Context, state *models.ListState[T], id int, pending T, invalid error) error {
	if !state.IsEditing(id) {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeUpdateFailed, l.Names.Resource))
		return exceptions.ErrViewStateNotEditing()
	}
	state.Edit.Pending = pending

	if invalid != nil {
		state.Notice = models.NewErrorNotice(exceptions.FormatFirstValidationError(invalid))
		return exceptions.ErrInputValidation(invalid)
	}

	_, err := l.Client.Update(ctx, id, pending)
	if err != nil {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeUpdateFailed, l.Names.Resource))
		return err
	}
	l.record(ctx, models.AuditActionUpdate, id, pending.Label())

	if err := l.refetch(ctx, state); err != nil {
		return err
	}

	state.Edit = nil
	state.Notice = models.NewSuccessNotice(l.Names.TitleUpdated, fmt.Sprintf(constvars.NoticeUpdated, l.Names.Display))
	return nil
}

func (l *List[T]) RequestDelete(state *models.ListState[T], id int) error {
	if state.Find(id) < 0 {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeRowMissing, l.Names.Resource))
		return exceptions.ErrViewStateRowNotFound(id)
	}
	state.PendingDelete = &id
	return nil
}

func (l *List[T]) DismissDelete(state *models.ListState[T]) error {
	state.PendingDelete = nil
	return nil
}

// ConfirmDelete deletes the pending row. The row leaves the local list only
// once the backend accepted the delete; no re-fetch follows.
func (l *List[T]) ConfirmDelete(ctx context.Context, state *models.ListState[T]) error {
	if state.PendingDelete == nil {
		return nil
	}
	id := *state.PendingDelete
	state.PendingDelete = nil

	err := l.Client.Delete(ctx, id)
	if err != nil {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeDeleteFailed, l.Names.Resource))
		return err
	}

	label := ""
	if index := state.Find(id); index >= 0 {
		label = state.Items[index].Label()
		state.Items = append(state.Items[:index:index], state.Items[index+1:]...)
	}
	if state.IsEditing(id) {
		state.Edit = nil
	}
	l.record(ctx, models.AuditActionDelete, id, label)

	state.Notice = models.NewSuccessNotice(l.Names.TitleDeleted, fmt.Sprintf(constvars.NoticeDeleted, l.Names.Display, label))
	return nil
}

func (l *List[T]) OpenCreate(state *models.ListState[T]) error {
	state.CreateOpen = true
	state.CreateDraft = *new(T)
	return nil
}

func (l *List[T]) CloseCreate(state *models.ListState[T]) error {
	state.CreateOpen = false
	state.CreateDraft = *new(T)
	return nil
}

// Create posts the draft, re-reads the list and closes the modal. A failed
// post keeps the modal open with the draft.
func (l *List[T]) Create(ctx context.Context, state *models.ListState[T], draft T, invalid error) error {
	state.CreateOpen = true
	state.CreateDraft = draft

	if invalid != nil {
		state.Notice = models.NewErrorNotice(exceptions.FormatFirstValidationError(invalid))
		return exceptions.ErrInputValidation(invalid)
	}

	created, err := l.Client.Create(ctx, draft)
	if err != nil {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeCreateFailed, l.Names.Resource))
		return err
	}
	createdID := 0
	if created != nil {
		createdID = (*created).GetID()
	}
	l.record(ctx, models.AuditActionCreate, createdID, draft.Label())

	state.CreateOpen = false
	state.CreateDraft = *new(T)

	if err := l.refetch(ctx, state); err != nil {
		return err
	}

	state.Notice = models.NewSuccessNotice(l.Names.TitleCreated, fmt.Sprintf(constvars.NoticeCreated, l.Names.Display))
	return nil
}

func (l *List[T]) DismissNotice(state *models.ListState[T]) error {
	state.Notice = nil
	return nil
}

// refetch replaces the items with a read-all. On failure the items are kept
// and an error notice is set.
func (l *List[T]) refetch(ctx context.Context, state *models.ListState[T]) error {
	items, err := l.Client.FindAll(ctx)
	if err != nil {
		state.Notice = models.NewErrorNotice(fmt.Sprintf(constvars.NoticeFetchFailed, l.Names.Resource))
		return err
	}
	state.Items = items
	state.Loaded = true
	return nil
}

func (l *List[T]) record(ctx context.Context, action models.AuditAction, id int, summary string) {
	if l.Audit == nil {
		return
	}
	entry := &models.AuditEntry{
		RequestID:  utils.GetRequestID(ctx),
		SessionID:  utils.GetSessionID(ctx),
		Resource:   l.Names.Resource,
		Action:     action,
		ResourceID: id,
		Summary:    summary,
	}
	if err := l.Audit.Record(ctx, entry); err != nil {
		l.Log.Warn("List.record failed to write audit entry",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.String(constvars.LoggingResourceKey, l.Names.Resource),
			zap.Error(err),
		)
	}
}
