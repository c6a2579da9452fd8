package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the acknowledgment envelope for mutations with no payload.
type messageResponse struct {
	Message string `json:"message"`
}

type meResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// The API deliberately performs no schema validation on event fields: date,
// time, and category are stored as the caller sent them. Dates that do not
// parse simply sort last under sort=date.
type createEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
}
