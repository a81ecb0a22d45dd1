package requests

type DepartmentForm struct {
	Name string `json:"name" form:"name" validate:"required,max=200"`
}
