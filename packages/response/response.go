package response

type ResponseCode int

// ErrorDetails 错误详情
type ErrorDetails struct {
	Code ResponseCode `json:"code"`
	Name string       `json:"name"`
}

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Error   string       `json:"error"`
	Details ErrorDetails `json:"details"`
}

// FilesResponse 上传结果
type FilesResponse struct {
	Files any `json:"files"`
}

// RenameResponse 重命名结果
type RenameResponse struct {
	Success bool `json:"success"`
	Files   any  `json:"files"`
}

// MessageResponse 只带提示信息的成功响应
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FilesResult(files any) FilesResponse {
	return FilesResponse{Files: files}
}

func RenameResult(files any) RenameResponse {
	return RenameResponse{
		Success: true,
		Files:   files,
	}
}

func MessageResult(message string) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(err *BusinessError) ErrorBody {
	return ErrorBody{
		Error: err.Msg,
		Details: ErrorDetails{
			Code: err.Code,
			Name: err.Kind(),
		},
	}
}
