// Package transport 平台HTTP调用的统一抽象
// 两个实现（resty / net/http）对同一逻辑请求必须产生一致的 RawResponse，
// 包括对非2xx状态的处理：保留原始状态码，不在本层吞掉
package transport

import (
	"context"
	"net/http"
	"net/url"
)

// RawResponse 规范化的HTTP响应：状态码 + 头 + 已读取的响应体
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport 统一的请求签名
// 返回 error 仅表示完全没有拿到HTTP响应（DNS失败、超时、连接被拒）
// 非2xx状态不是本层的 error，由上层分类处理
type Transport interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (*RawResponse, error)
}

// Indicator 请求期间的加载提示（小程序原生loading的等价物）
// Stop 必须在每条退出路径上被调用，包括网络失败
type Indicator interface {
	Start(label string)
	Stop()
}

// NopIndicator 无提示实现
type NopIndicator struct{}

func (NopIndicator) Start(string) {}
func (NopIndicator) Stop()        {}
