// Package api 后端接口的类型化封装：每个接口一个方法
// 方法只做三件事：按参数拼路径/查询串 → 调传输层 → 解释结果
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/hmyjc/AICareLog/internal/domain"
	"github.com/hmyjc/AICareLog/internal/transport"
)

// 推送历史默认返回条数；服务端上限100
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// envelope 统一响应包裹：{status, data?, content?, message?}
type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Content  string          `json:"content"`
	PushTime string          `json:"push_time"`
	Count    int             `json:"count"`
}

// PushResult 按需推送的返回：生成的内容随响应直接返回
// Status 为服务端报告的业务状态（success/error），2xx 响应也可能携带 error
type PushResult struct {
	Status   string
	Content  string
	PushTime string
	Message  string
}

// Client 后端API客户端
type Client struct {
	transport transport.Transport
	logger    *zap.Logger
}

func NewClient(t transport.Transport, logger *zap.Logger) *Client {
	return &Client{transport: t, logger: logger}
}

// do 发请求并按状态分类：2xx 返回解码后的包裹，否则返回分类错误
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	resp, err := c.transport.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, classify(nil, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classify(resp, nil)
		c.logger.Debug("接口返回非2xx",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("kind", string(apiErr.Kind)),
		)
		return nil, apiErr
	}

	env := &envelope{}
	if err := json.Unmarshal(resp.Body, env); err != nil {
		return nil, &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: "响应格式异常", cause: err}
	}
	return env, nil
}

// CreateHealthProfile 创建健康档案
// 必填基础信息和人物风格在发请求前校验，不合格不发网络请求
func (c *Client) CreateHealthProfile(ctx context.Context, profile *domain.HealthProfile) (*domain.HealthProfile, error) {
	if err := profile.ValidateForCreate(); err != nil {
		return nil, validationError(err)
	}

	env, err := c.do(ctx, http.MethodPost, "/health-profile", nil, profile)
	if err != nil {
		return nil, err
	}

	created := &domain.HealthProfile{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, created); err != nil {
			return nil, &Error{Kind: KindUnknown, Message: "档案数据解析失败", cause: err}
		}
	}
	c.logger.Info("健康档案创建成功", zap.String("user_id", profile.UserID))
	return created, nil
}

// GetHealthProfile 获取健康档案
// 新用户尚无档案时返回 KindNotFound，调用方据此进入创建流程而非报错
func (c *Client) GetHealthProfile(ctx context.Context, userID string) (*domain.HealthProfile, error) {
	env, err := c.do(ctx, http.MethodGet, "/health-profile/"+url.PathEscape(userID), nil, nil)
	if err != nil {
		return nil, err
	}

	profile := &domain.HealthProfile{}
	if err := json.Unmarshal(env.Data, profile); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "档案数据解析失败", cause: err}
	}
	return profile, nil
}

// UpdateHealthProfile 部分更新：只发送发生变化的顶层部分，服务端按部分合并
func (c *Client) UpdateHealthProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return validationError(errors.New("没有需要更新的内容"))
	}
	if update.BasicInfo != nil {
		if err := domain.ValidateBasicInfo(update.BasicInfo); err != nil {
			return validationError(err)
		}
	}
	if update.Location != nil {
		if err := update.Location.Validate(); err != nil {
			return validationError(err)
		}
	}

	_, err := c.do(ctx, http.MethodPut, "/health-profile/"+url.PathEscape(userID), nil, update)
	if err != nil {
		return err
	}
	c.logger.Info("健康档案更新成功", zap.String("user_id", userID))
	return nil
}

// SetUserLocation 设置所在地区（独立于档案创建）
func (c *Client) SetUserLocation(ctx context.Context, userID string, loc domain.Location) error {
	if err := loc.Validate(); err != nil {
		return validationError(err)
	}

	_, err := c.do(ctx, http.MethodPost, "/health-profile/"+url.PathEscape(userID)+"/location", nil, loc)
	if err != nil {
		return err
	}
	c.logger.Info("地区设置成功",
		zap.String("user_id", userID),
		zap.String("province", loc.Province),
		zap.String("city", loc.City),
	)
	return nil
}

// GetPersonaStyles 获取全部人物风格目录
func (c *Client) GetPersonaStyles(ctx context.Context) ([]domain.PersonaStyle, error) {
	env, err := c.do(ctx, http.MethodGet, "/persona-styles", nil, nil)
	if err != nil {
		return nil, err
	}

	var styles []domain.PersonaStyle
	if err := json.Unmarshal(env.Data, &styles); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "风格目录解析失败", cause: err}
	}
	return styles, nil
}

// SelectPersonaStyle 选择人物风格
// 前置条件（已有档案）由服务端检查，违反时以普通错误返回
func (c *Client) SelectPersonaStyle(ctx context.Context, userID, styleName string) (string, error) {
	if styleName == "" {
		return "", validationError(errors.New("风格名称不能为空"))
	}

	query := url.Values{"style_name": {styleName}}
	env, err := c.do(ctx, http.MethodPost, "/persona-styles/"+url.PathEscape(userID)+"/select", query, nil)
	if err != nil {
		return "", err
	}
	c.logger.Info("人物风格选择成功",
		zap.String("user_id", userID),
		zap.String("style_name", styleName),
	)
	return env.Message, nil
}

// GetCurrentPersonaStyle 获取当前人物风格；尚未选择时返回 nil
func (c *Client) GetCurrentPersonaStyle(ctx context.Context, userID string) (*domain.PersonaStyle, error) {
	env, err := c.do(ctx, http.MethodGet, "/persona-styles/"+url.PathEscape(userID)+"/current", nil, nil)
	if err != nil {
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	style := &domain.PersonaStyle{}
	if err := json.Unmarshal(env.Data, style); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "风格数据解析失败", cause: err}
	}
	return style, nil
}

// PushRestReminder 按需触发作息提醒，生成的内容随响应返回
func (c *Client) PushRestReminder(ctx context.Context, userID, timeType string) (*PushResult, error) {
	if err := domain.ValidateTimeType(timeType); err != nil {
		return nil, validationError(err)
	}
	query := url.Values{"time_type": {timeType}}
	return c.doPush(ctx, "/push/rest/"+url.PathEscape(userID), query)
}

// PushMealReminder 按需触发饮食提醒
func (c *Client) PushMealReminder(ctx context.Context, userID, mealType string) (*PushResult, error) {
	if err := domain.ValidateMealType(mealType); err != nil {
		return nil, validationError(err)
	}
	query := url.Values{"meal_type": {mealType}}
	return c.doPush(ctx, "/push/meal/"+url.PathEscape(userID), query)
}

// PushWeatherReminder 按需触发天气提醒；未设置地区时服务端会报错
func (c *Client) PushWeatherReminder(ctx context.Context, userID string) (*PushResult, error) {
	return c.doPush(ctx, "/push/weather/"+url.PathEscape(userID), nil)
}

// PushHealthTip 按需触发养生妙招
func (c *Client) PushHealthTip(ctx context.Context, userID string) (*PushResult, error) {
	return c.doPush(ctx, "/push/health-tip/"+url.PathEscape(userID), nil)
}

func (c *Client) doPush(ctx context.Context, path string, query url.Values) (*PushResult, error) {
	env, err := c.do(ctx, http.MethodPost, path, query, nil)
	if err != nil {
		return nil, err
	}
	return &PushResult{
		Status:   env.Status,
		Content:  env.Content,
		PushTime: env.PushTime,
		Message:  env.Message,
	}, nil
}

// GetPushHistory 获取推送历史，最新在前
// pushType 为空表示全部类型；limit 超出范围时收敛到 [1,100]
func (c *Client) GetPushHistory(ctx context.Context, userID, pushType string, limit int) ([]domain.PushRecord, error) {
	if !domain.ValidPushType(pushType) {
		return nil, validationError(fmt.Errorf("无效的推送类型：%s", pushType))
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if pushType != "" {
		query.Set("push_type", pushType)
	}

	env, err := c.do(ctx, http.MethodGet, "/push/history/"+url.PathEscape(userID), query, nil)
	if err != nil {
		return nil, err
	}

	var records []domain.PushRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "推送历史解析失败", cause: err}
	}
	return records, nil
}

// MarkPushAsRead 标记某条推送为已读
func (c *Client) MarkPushAsRead(ctx context.Context, pushID, userID string) error {
	query := url.Values{"user_id": {userID}}
	_, err := c.do(ctx, http.MethodPut, "/push/history/"+url.PathEscape(pushID)+"/read", query, nil)
	return err
}
