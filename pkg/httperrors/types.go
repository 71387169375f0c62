package httperrors

// HTTPError is the body of all error responses.
type HTTPError struct {
	Error string `json:"error" example:"month must be in YYYY-MM format, got \"05/2024\""`
}

// Error is an error with the corresponding HTTP status code.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
}

// Nil checks if the Error is the zero value.
func (e Error) Nil() bool {
	return e.Err == nil && e.Status == 0
}

// Error returns the error as a string.
func (e Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}
