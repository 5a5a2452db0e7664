package app

// ServerResponseError is returned by service methods that a HTTP
// server uses. These errors hold the HTTP response body and status
// code the server should return. Msg and StatusCode are safe to be
// seen by external sources; Err is not.
//
// Use the ServerErrorResponse method to get the data that is safe
// to be displayed to external sources.
type ServerResponseError struct {
	// The wrapped error.
	Err error

	// The HTTP response body.
	Msg string

	// The HTTP status code.
	StatusCode int
}

func (e *ServerResponseError) Error() string {
	return e.Err.Error()
}

func (e *ServerResponseError) Unwrap() error {
	return e.Err
}

// ServerErrorResponse returns the status code and the response body.
func (e *ServerResponseError) ServerErrorResponse() (int, string) {
	return e.StatusCode, e.Msg
}
