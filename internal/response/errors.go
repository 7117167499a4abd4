package response

import "net/http"

// BusinessError 业务错误，携带对外的HTTP状态码
type BusinessError struct {
	Status  int
	Msg     string
	Details any
	Err     error
}

func (be *BusinessError) Error() string {
	return be.Msg
}

func (be *BusinessError) Unwrap() error {
	return be.Err
}

type ErrorOption func(*BusinessError)

// WithStatus 设置HTTP状态码
func WithStatus(status int) ErrorOption {
	return func(be *BusinessError) {
		be.Status = status
	}
}

// WithErrorMessage 设置对外错误消息
func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

// WithDetails 设置字段级错误详情
func WithDetails(details any) ErrorOption {
	return func(be *BusinessError) {
		be.Details = details
	}
}

// WithError 设置底层错误（仅用于日志，不对外暴露）
func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Status: http.StatusInternalServerError,
		Msg:    "internal error",
		Err:    nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
