package utils

import (
	"hospital-web-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(formTagName)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func formTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// validateTimeSlot accepts the whole hours between the first and the last
// bookable slot, formatted as HH:00.
func validateTimeSlot(fl validator.FieldLevel) bool {
	slot, err := time.Parse(constvars.AppointmentSlotLayout, fl.Field().String())
	if err != nil || slot.Minute() != 0 {
		return false
	}
	return slot.Hour() >= constvars.AppointmentFirstSlotHour && slot.Hour() <= constvars.AppointmentLastSlotHour
}
