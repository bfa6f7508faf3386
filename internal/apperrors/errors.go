package apperrors

import "errors"

// 核心错误分类，handler 层用 errors.Is 映射为 HTTP 状态码
var (
	// ErrMalformedInput 必填数值字段缺失或无法解析
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfDomain 字段存在但数值在生理上不可能
	ErrOutOfDomain = errors.New("value out of physical domain")

	// ErrNotFound 请求的患者/资源没有存储数据
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable 持久化网关失败或超时，读数视为未持久化
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDispatchFailed 通知下发失败，仅记录日志，不影响请求结果
	ErrDispatchFailed = errors.New("notification dispatch failed")
)
