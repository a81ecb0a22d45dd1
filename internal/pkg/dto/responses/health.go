package responses

type Health struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	SessionStore string            `json:"session_store"`
	Backend      string            `json:"backend"`
	Components   map[string]string `json:"components,omitempty"`
}

type Export struct {
	Object string `json:"object"`
	URL    string `json:"url"`
}
