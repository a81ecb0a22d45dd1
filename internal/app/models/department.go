package models

type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (d Department) GetID() int {
	return d.ID
}

func (d Department) Label() string {
	return d.Name
}

// DepartmentDetails is a department together with the doctors assigned to it.
type DepartmentDetails struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Doctors []Doctor `json:"doctors"`
}
