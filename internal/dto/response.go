package dto

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	res "terminal-terrace/image-relay/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func FilesResponse(c *gin.Context, files any) {
	c.JSON(http.StatusOK, res.FilesResult(files))
}

func RenameResponse(c *gin.Context, files any) {
	c.JSON(http.StatusOK, res.RenameResult(files))
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, res.MessageResult(message))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Err != nil {
		log.Printf("[image-relay] %s %s: %s: %v", c.Request.Method, c.Request.URL.Path, err.Msg, err.Err)
	}
	c.JSON(err.HTTPStatus(), res.ErrorResponse(err))
}

// Error 把任意 error 写成错误响应, 非 BusinessError 视为内部错误
func Error(c *gin.Context, err error) {
	var be *res.BusinessError
	if errors.As(err, &be) {
		ErrorResponse(c, be)
		return
	}
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.Fail),
		res.WithErrorMessage(err.Error()),
		res.WithError(err),
	))
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		firstErr := validationErrs[0]

		// 获取字段的JSON标签名
		jsonField := getJSONFieldName(firstErr)

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
		case "max":
			message = fmt.Sprintf("字段 '%s' 长度不能超过 %s", jsonField, firstErr.Param())
		case "min":
			message = fmt.Sprintf("字段 '%s' 长度不能少于 %s", jsonField, firstErr.Param())
		default:
			message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.InvalidParameter),
			res.WithErrorMessage(message),
		))
		return
	}

	// 如果不是 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// getJSONFieldName 获取字段名, 请求体字段均为 camelCase
func getJSONFieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
