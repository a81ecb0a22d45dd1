package requests

type DoctorForm struct {
	Name         string `json:"name" form:"name" validate:"required,max=100"`
	Surname      string `json:"surname" form:"surname" validate:"required,max=100"`
	Address      string `json:"address" form:"address" validate:"required,max=300"`
	DepartmentID int    `json:"departmentId" form:"departmentId" validate:"required,gt=0"`
	IsAvailable  bool   `json:"isAvailable" form:"isAvailable"`
}
