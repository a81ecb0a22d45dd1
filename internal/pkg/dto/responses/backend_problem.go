package responses

// BackendProblem is the error body returned by the hospital backend
// (RFC 7807 problem details). Every field is optional.
type BackendProblem struct {
	Type   string              `json:"type,omitempty"`
	Title  string              `json:"title,omitempty"`
	Status int                 `json:"status,omitempty"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func (p BackendProblem) Summary() string {
	switch {
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	}
	for field, messages := range p.Errors {
		if len(messages) > 0 {
			return field + ": " + messages[0]
		}
	}
	return ""
}
