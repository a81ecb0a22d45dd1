package models

import (
	"fmt"
	"hospital-web-service/internal/pkg/constvars"
)

type Doctor struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Address      string `json:"address"`
	DepartmentID int    `json:"departmentId"`
	IsAvailable  bool   `json:"isAvailable"`
}

func (d Doctor) GetID() int {
	return d.ID
}

func (d Doctor) FullName() string {
	return fmt.Sprintf("%s %s", d.Name, d.Surname)
}

func (d Doctor) Label() string {
	return d.FullName()
}

// DepartmentName resolves the doctor's department against a loaded list.
func (d Doctor) DepartmentName(departments []Department) string {
	for _, department := range departments {
		if department.ID == d.DepartmentID {
			return department.Name
		}
	}
	return constvars.UnknownDepartmentName
}
