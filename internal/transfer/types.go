package transfer

// TransferRequest 客户端当前列表, 仅供参考; 实际上传内容以服务端批次为准
type TransferRequest struct {
	Files []struct {
		ID string `json:"id"`
	} `json:"files"`
}

// TransferResponse 传输成功
type TransferResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"文件已上传到 uploads_2024-01-02T03-04-05-678Z"`
}
