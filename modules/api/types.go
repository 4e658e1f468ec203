package api

// ErrorResponse is the JSON body for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// loginForm is the login request body. htmx posts it form-encoded; JSON
// works too.
type loginForm struct {
	Username string `json:"username" form:"username"`
}

// roomForm is the create/update request body. Capacity stays a string
// because it arrives as a raw form value; the directory parses it.
type roomForm struct {
	RoomName string `json:"roomName" form:"roomName"`
	Category string `json:"category" form:"category"`
	Capacity string `json:"capacity" form:"capacity"`
}
