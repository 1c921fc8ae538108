package errors

// HTTPError is the JSON body returned to clients when a request fails
type HTTPError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ToHTTP converts an error to an HTTP status code and response body.
// Non-structured errors map to 500 with a generic message so internal
// details never leak to clients.
func ToHTTP(err error) (int, *HTTPError) {
	if err == nil {
		return CodeOK.HTTPStatus(), nil
	}

	var customErr *Error
	if As(err, &customErr) {
		body := &HTTPError{
			Code:    string(customErr.Code),
			Message: customErr.Message,
		}
		if len(customErr.Meta) > 0 {
			body.Meta = customErr.Meta
		}
		return customErr.Code.HTTPStatus(), body
	}

	return CodeInternal.HTTPStatus(), &HTTPError{
		Code:    string(CodeInternal),
		Message: "internal error",
	}
}
