package domain

import "fmt"

// 推送类型
const (
	PushTypeRest      = "rest"
	PushTypeMeal      = "meal"
	PushTypeWeather   = "weather"
	PushTypeHealthTip = "health_tip"
)

// 作息提醒时段
const (
	TimeTypeMorning = "morning"
	TimeTypeNoon    = "noon"
	TimeTypeNight   = "night"
)

// 餐次类型
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

// PushRecord 一条推送历史记录，服务端生成，客户端只读（仅可标记已读）
type PushRecord struct {
	ID       string `json:"_id"`
	UserID   string `json:"user_id"`
	PushType string `json:"push_type"` // rest/meal/weather/health_tip
	Content  string `json:"content"`
	PushTime string `json:"push_time"`
	IsRead   bool   `json:"is_read"`
}

// ValidPushType push_type 过滤参数校验（空串表示不过滤）
func ValidPushType(t string) bool {
	switch t {
	case "", PushTypeRest, PushTypeMeal, PushTypeWeather, PushTypeHealthTip:
		return true
	}
	return false
}

// ValidateTimeType 作息提醒时段校验
func ValidateTimeType(t string) error {
	switch t {
	case TimeTypeMorning, TimeTypeNoon, TimeTypeNight:
		return nil
	}
	return fmt.Errorf("time_type必须是%s/%s/%s之一", TimeTypeMorning, TimeTypeNoon, TimeTypeNight)
}

// ValidateMealType 餐次类型校验
func ValidateMealType(t string) error {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return nil
	}
	return fmt.Errorf("meal_type必须是%s/%s/%s之一", MealTypeBreakfast, MealTypeLunch, MealTypeDinner)
}
