package viewstate

import (
	"fmt"
	"hospital-web-service/internal/pkg/constvars"
)

func buildKey(sessionID, view string) string {
	return fmt.Sprintf(constvars.ViewStateKeyFormat, sessionID, view)
}
