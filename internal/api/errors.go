package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hmyjc/AICareLog/internal/transport"
)

// Kind 失败分类，驱动调用方的展示策略
type Kind string

const (
	// KindNotFound 档案不存在（GET 404）：新用户的正常状态，引导创建流程，不展示错误
	KindNotFound Kind = "not_found"
	// KindAuthentication 401/403：需要登录，不自动重试
	KindAuthentication Kind = "authentication"
	// KindNetwork 完全没拿到HTTP状态（DNS/超时/拒连），或5xx：可提示重试
	KindNetwork Kind = "network"
	// KindValidation 客户端前置校验失败，未发起网络请求
	KindValidation Kind = "validation"
	// KindUnknown 其余非2xx
	KindUnknown Kind = "unknown"
)

// Error 分类后的调用失败
type Error struct {
	Kind    Kind
	Status  int // 0 表示没有拿到HTTP状态
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf 提取错误分类；非本层错误返回 KindUnknown
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsNotFound 是否为"档案尚不存在"这一预期状态
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), cause: err}
}

// classify 按状态码分类失败
// 调用前提：err != nil 或 resp 状态在 [200,300) 之外
func classify(resp *transport.RawResponse, err error) *Error {
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "网络请求失败", cause: err}
	}

	msg := errorMessage(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindAuthentication, Status: resp.StatusCode, Message: msg}
	case resp.StatusCode >= 500:
		return &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: msg}
	default:
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: msg}
	}
}

// errorMessage 从错误响应体提取可展示的消息
// 兼容两种形式：{"detail": "..."} 和 {"status":"error","message":"..."}
func errorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "操作失败，请重试"
}
