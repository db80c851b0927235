package resp

const (
	CodeBadRequest    = "bad_request"
	CodeUnauthorized  = "unauthorized"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
	CodeLoggedIn      = "logged_in"
)
