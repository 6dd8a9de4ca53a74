package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPTransport 标准库 net/http 实现
// 与 RestyTransport 行为等价，用于不便引入 resty 的宿主环境
type HTTPTransport struct {
	baseURL   string
	client    *http.Client
	indicator Indicator
	logger    *zap.Logger
}

func NewHTTPTransport(baseURL string, timeout time.Duration, indicator Indicator, logger *zap.Logger) *HTTPTransport {
	if indicator == nil {
		indicator = NopIndicator{}
	}
	return &HTTPTransport{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		indicator: indicator,
		logger:    logger,
	}
}

func (t *HTTPTransport) Do(ctx context.Context, method, path string, query url.Values, body any) (*RawResponse, error) {
	requestID := uuid.NewString()

	t.indicator.Start("加载中...")
	defer t.indicator.Stop()

	fullURL := t.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Error("请求失败",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.logger.Debug("请求完成",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
	)

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
