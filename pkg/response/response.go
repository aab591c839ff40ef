package response

// JSON bodies shared by the HTTP API. Error responses always carry an
// "error" field with the raw error text; the callback flow relies on that
// for gateway-side debugging.

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// Err wraps an error message for a failure response.
func Err(msg string) *ErrorBody {
	return &ErrorBody{Error: msg}
}

// Msg wraps a human-readable message for a success response.
func Msg(msg string) *MessageBody {
	return &MessageBody{Message: msg}
}
