package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateExportObjectName builds a unique, time-sortable object key for a
// CSV export of the given view.
func GenerateExportObjectName(view string, now time.Time) string {
	return fmt.Sprintf("exports/%s/%s-%s.csv", view, now.UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
}
