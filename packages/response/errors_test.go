package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorKind(t *testing.T) {
	tests := []struct {
		code   ResponseCode
		kind   string
		status int
	}{
		{Fail, "InternalError", http.StatusInternalServerError},
		{ParseError, "ValidationError", http.StatusBadRequest},
		{InvalidParameter, "ValidationError", http.StatusBadRequest},
		{TransferFailed, "TransferError", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		be := NewBusinessError(WithErrorCode(tt.code))
		assert.Equal(t, tt.kind, be.Kind())
		assert.Equal(t, tt.status, be.HTTPStatus())
	}
}

func TestBusinessErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	be := NewBusinessError(
		WithErrorCode(TransferFailed),
		WithErrorMessage("FTP 连接失败"),
		WithError(cause),
	)

	assert.Equal(t, "FTP 连接失败", be.Error())
	assert.ErrorIs(t, be, cause)

	body := ErrorResponse(be)
	assert.Equal(t, "FTP 连接失败", body.Error)
	assert.Equal(t, TransferFailed, body.Details.Code)
	assert.Equal(t, "TransferError", body.Details.Name)
}

func TestDefaults(t *testing.T) {
	be := NewBusinessError()
	assert.Equal(t, Fail, be.Code)
	assert.Equal(t, "business error", be.Error())
	assert.Nil(t, be.Unwrap())
}
