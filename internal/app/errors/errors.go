package errors

// ResponseCodeError carries the HTTP status and client-facing message an
// error should surface with. Handlers unwrap it in PrepareError; anything
// else falls through as a 500.
type ResponseCodeError struct {
	err  error
	msg  string
	code int
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: 500}
}

func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}

func (rce ResponseCodeError) Error() string {
	// Validation failures are built with no underlying error.
	if rce.err == nil {
		return rce.msg
	}
	return rce.err.Error()
}

func (rce ResponseCodeError) Msg() string {
	return rce.msg
}

func (rce ResponseCodeError) Code() int {
	return rce.code
}

func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}
