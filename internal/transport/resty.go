package transport

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestyTransport resty 实现
type RestyTransport struct {
	client    *resty.Client
	indicator Indicator
	logger    *zap.Logger
}

// NewRestyTransport 创建 resty 传输层
// 本层不做自动重试，失败立即交给调用方分类处理
func NewRestyTransport(baseURL string, timeout time.Duration, indicator Indicator, logger *zap.Logger) *RestyTransport {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if indicator == nil {
		indicator = NopIndicator{}
	}

	return &RestyTransport{
		client:    client,
		indicator: indicator,
		logger:    logger,
	}
}

func (t *RestyTransport) Do(ctx context.Context, method, path string, query url.Values, body any) (*RawResponse, error) {
	requestID := uuid.NewString()

	t.indicator.Start("加载中...")
	defer t.indicator.Stop()

	req := t.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		t.logger.Error("请求失败",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}

	t.logger.Debug("请求完成",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode()),
	)

	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
