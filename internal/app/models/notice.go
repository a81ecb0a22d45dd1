package models

import "hospital-web-service/internal/pkg/constvars"

type NoticeLevel string

const (
	NoticeLevelSuccess NoticeLevel = "success"
	NoticeLevelError   NoticeLevel = "error"
	NoticeLevelWarning NoticeLevel = "warning"
)

// Notice is the blocking modal notification shown on top of a view.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Title string      `json:"title"`
	Text  string      `json:"text"`
}

func NewErrorNotice(text string) *Notice {
	return &Notice{Level: NoticeLevelError, Title: constvars.NoticeTitleError, Text: text}
}

func NewSuccessNotice(title, text string) *Notice {
	return &Notice{Level: NoticeLevelSuccess, Title: title, Text: text}
}

func (n *Notice) IsError() bool {
	return n != nil && n.Level == NoticeLevelError
}
