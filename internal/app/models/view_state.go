package models

// RowEdit holds the row being edited and its unsaved values.
type RowEdit[T Entity] struct {
	RowID   int `json:"row_id"`
	Pending T   `json:"pending"`
}

// ListState is the per-session state of one entity list view. A nil Edit
// means the list is in viewing mode.
type ListState[T Entity] struct {
	Items         []T         `json:"items"`
	Loaded        bool        `json:"loaded"`
	Edit          *RowEdit[T] `json:"edit,omitempty"`
	PendingDelete *int        `json:"pending_delete,omitempty"`
	CreateOpen    bool        `json:"create_open"`
	CreateDraft   T           `json:"create_draft"`
	Notice        *Notice     `json:"notice,omitempty"`
}

func (s *ListState[T]) IsEditing(id int) bool {
	return s.Edit != nil && s.Edit.RowID == id
}

func (s *ListState[T]) IsPendingDelete(id int) bool {
	return s.PendingDelete != nil && *s.PendingDelete == id
}

// Find returns the index of the row with the given id, or -1.
func (s *ListState[T]) Find(id int) int {
	for i, item := range s.Items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// AppointmentState is the per-session state of the appointment scheduler.
// A nil Booking means no booking modal is open.
type AppointmentState struct {
	Doctors []Doctor `json:"doctors"`
	Loaded  bool     `json:"loaded"`
	Booking *Booking `json:"booking,omitempty"`
	Notice  *Notice  `json:"notice,omitempty"`
}

// FindDoctor returns the loaded doctor with the given id.
func (s *AppointmentState) FindDoctor(id int) (Doctor, bool) {
	for _, doctor := range s.Doctors {
		if doctor.ID == id {
			return doctor, true
		}
	}
	return Doctor{}, false
}
