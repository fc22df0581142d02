package http

// Wire types for the JSON API. Field names match what the frontend already
// sends and renders.

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type submitRequest struct {
	// UserID must match the authenticated token subject.
	UserID string `json:"user_id"`
	// Score is a pointer so a missing field is distinguishable from zero.
	Score *int `json:"score"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *healthChecks `json:"checks,omitempty"`
}

type healthChecks struct {
	Database string `json:"database"`
}
