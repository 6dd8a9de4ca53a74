package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingIndicator 记录 Start/Stop 次数，校验每条退出路径都收起加载提示
type countingIndicator struct {
	mu     sync.Mutex
	starts int
	stops  int
}

func (c *countingIndicator) Start(string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.starts++
}

func (c *countingIndicator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops++
}

func (c *countingIndicator) balanced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts > 0 && c.starts == c.stops
}

// 两个实现必须对同一逻辑请求产生一致的 RawResponse
func eachTransport(baseURL string, ind Indicator) map[string]Transport {
	logger := zap.NewNop()
	return map[string]Transport{
		"resty": NewRestyTransport(baseURL, 5*time.Second, ind, logger),
		"http":  NewHTTPTransport(baseURL, 5*time.Second, ind, logger),
	}
}

func TestDo_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health-profile/user_1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"user_id":"user_1"}}`))
	}))
	defer server.Close()

	for name, tr := range eachTransport(server.URL, nil) {
		t.Run(name, func(t *testing.T) {
			resp, err := tr.Do(context.Background(), http.MethodGet, "/health-profile/user_1", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"status":"success","data":{"user_id":"user_1"}}`, string(resp.Body))
		})
	}
}

func TestDo_BodyAndQuery(t *testing.T) {
	type received struct {
		query url.Values
		body  map[string]any
	}
	var got received
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.query = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got.body)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	body := map[string]string{"province": "浙江", "city": "杭州"}
	query := url.Values{"style_name": {"专业顾问"}}

	for name, tr := range eachTransport(server.URL, nil) {
		t.Run(name, func(t *testing.T) {
			got = received{}
			_, err := tr.Do(context.Background(), http.MethodPost, "/x", query, body)
			require.NoError(t, err)
			assert.Equal(t, "专业顾问", got.query.Get("style_name"))
			assert.Equal(t, "浙江", got.body["province"])
			assert.Equal(t, "杭州", got.body["city"])
		})
	}
}

// 非2xx状态必须原样保留在 RawResponse 里，而不是变成 error
func TestDo_Non2xxPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"健康档案不存在"}`))
	}))
	defer server.Close()

	for name, tr := range eachTransport(server.URL, nil) {
		t.Run(name, func(t *testing.T) {
			resp, err := tr.Do(context.Background(), http.MethodGet, "/health-profile/nobody", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"detail":"健康档案不存在"}`, string(resp.Body))
		})
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	// 先拿一个马上关闭的端口，保证连接被拒
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	for name, tr := range eachTransport(deadURL, nil) {
		t.Run(name, func(t *testing.T) {
			resp, err := tr.Do(context.Background(), http.MethodGet, "/x", nil, nil)
			require.Error(t, err)
			assert.Nil(t, resp)
		})
	}
}

func TestDo_IndicatorStoppedOnEveryPath(t *testing.T) {
	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer okServer.Close()

	errServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer errServer.Close()

	deadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := deadServer.URL
	deadServer.Close()

	cases := map[string]string{
		"成功":   okServer.URL,
		"HTTP错误": errServer.URL,
		"网络失败":  deadURL,
	}
	for label, base := range cases {
		for name := range eachTransport(base, nil) {
			t.Run(label+"/"+name, func(t *testing.T) {
				ind := &countingIndicator{}
				tr := eachTransport(base, ind)[name]
				_, _ = tr.Do(context.Background(), http.MethodGet, "/x", nil, nil)
				assert.True(t, ind.balanced(), "starts=%d stops=%d", ind.starts, ind.stops)
			})
		}
	}
}
