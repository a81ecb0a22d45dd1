package models

// Entity is a backend record addressed by an integer id.
type Entity interface {
	GetID() int
	// Label names the record in user-facing messages.
	Label() string
}
