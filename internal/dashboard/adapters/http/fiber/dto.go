package fiber

type ThemeResponse struct {
	Theme string `json:"theme" example:"dark"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
