package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"datetime":  "must be a valid date",
	"time_slot": "must be one of the offered time slots",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"gte": true,
}
