package response

import "net/http"

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// FTP 传输失败
	TransferFailed ResponseCode = 3
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Error 实现 error 接口, 方便在 service 层直接作为 error 返回. 底层错误通过 Unwrap 获取
func (e *BusinessError) Error() string {
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// Kind 返回错误类别名, 对应响应中的 details.name
func (e *BusinessError) Kind() string {
	switch e.Code {
	case ParseError, InvalidParameter:
		return "ValidationError"
	case TransferFailed:
		return "TransferError"
	default:
		return "InternalError"
	}
}

// HTTPStatus 错误码对应的 HTTP 状态码
func (e *BusinessError) HTTPStatus() int {
	switch e.Code {
	case ParseError, InvalidParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
