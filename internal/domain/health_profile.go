package domain

import (
	"errors"
	"fmt"
)

// 性别枚举
const (
	GenderMale   = "男"
	GenderFemale = "女"
)

// 血型枚举
const (
	BloodTypeA       = "A"
	BloodTypeB       = "B"
	BloodTypeAB      = "AB"
	BloodTypeO       = "O"
	BloodTypeUnknown = "未知"
)

// NamedDate 名称+日期对（手术史、疫苗接种记录）
type NamedDate struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// BasicInfo 基础信息
type BasicInfo struct {
	Nickname  string  `json:"nickname"`             // 昵称，必填
	BirthDate string  `json:"birth_date"`           // 出生年月，格式 YYYY-MM
	Age       int     `json:"age"`                  // 年龄，非负
	Gender    string  `json:"gender"`               // 男/女
	Height    float64 `json:"height"`               // 身高（cm），正数
	Weight    float64 `json:"weight"`               // 体重（kg），正数
	BloodType string  `json:"blood_type,omitempty"` // A/B/AB/O/未知
}

// HealthInfo 健康信息
type HealthInfo struct {
	LifestyleHabits  []string    `json:"lifestyle_habits"`  // 生活习惯，如：口味偏咸、久坐、熬夜
	Allergies        []string    `json:"allergies"`         // 过敏史
	MedicalHistory   []string    `json:"medical_history"`   // 既往病史
	AdverseReactions []string    `json:"adverse_reactions"` // 药品不良反应
	FamilyHistory    []string    `json:"family_history"`    // 家族史
	SurgeryHistory   []NamedDate `json:"surgery_history"`   // 手术史
}

// OtherInfo 其他健康信息
type OtherInfo struct {
	Vaccination  []NamedDate    `json:"vaccination"`            // 疫苗接种记录
	Menstruation map[string]any `json:"menstruation,omitempty"` // 月经情况（女性）
	Fertility    map[string]any `json:"fertility,omitempty"`    // 生育情况
	OtherNotes   string         `json:"other_notes,omitempty"`  // 其他备注
}

// HealthProfile 完整健康档案，与用户ID一一对应
type HealthProfile struct {
	UserID       string     `json:"user_id"`
	BasicInfo    BasicInfo  `json:"basic_info"`
	HealthInfo   HealthInfo `json:"health_info"`
	OtherInfo    OtherInfo  `json:"other_info"`
	PersonaStyle string     `json:"persona_style,omitempty"` // 选择的人物风格
	Location     *Location  `json:"location,omitempty"`      // 所在地区
	CreatedAt    string     `json:"created_at,omitempty"`    // 服务端维护
	UpdatedAt    string     `json:"updated_at,omitempty"`    // 服务端维护
}

// ProfileUpdate 部分更新请求：nil 的部分不会被序列化，服务端保持原值
type ProfileUpdate struct {
	BasicInfo    *BasicInfo  `json:"basic_info,omitempty"`
	HealthInfo   *HealthInfo `json:"health_info,omitempty"`
	OtherInfo    *OtherInfo  `json:"other_info,omitempty"`
	PersonaStyle string      `json:"persona_style,omitempty"`
	Location     *Location   `json:"location,omitempty"`
}

// IsEmpty 没有任何待更新的部分
func (u *ProfileUpdate) IsEmpty() bool {
	return u.BasicInfo == nil && u.HealthInfo == nil && u.OtherInfo == nil &&
		u.PersonaStyle == "" && u.Location == nil
}

var validBloodTypes = map[string]bool{
	BloodTypeA: true, BloodTypeB: true, BloodTypeAB: true,
	BloodTypeO: true, BloodTypeUnknown: true,
}

// ValidateBasicInfo 校验必填基础信息
func ValidateBasicInfo(b *BasicInfo) error {
	if b.Nickname == "" {
		return errors.New("昵称不能为空")
	}
	if b.BirthDate == "" {
		return errors.New("出生年月不能为空")
	}
	if b.Age < 0 {
		return errors.New("年龄不能为负数")
	}
	if b.Gender != GenderMale && b.Gender != GenderFemale {
		return fmt.Errorf("性别必须是%s或%s", GenderMale, GenderFemale)
	}
	if b.Height <= 0 {
		return errors.New("身高必须大于0")
	}
	if b.Weight <= 0 {
		return errors.New("体重必须大于0")
	}
	if b.BloodType != "" && !validBloodTypes[b.BloodType] {
		return errors.New("血型必须是A/B/AB/O/未知之一")
	}
	return nil
}

// ValidateForCreate 创建档案的前置校验：必填基础信息 + 已选人物风格
func (p *HealthProfile) ValidateForCreate() error {
	if p.UserID == "" {
		return errors.New("用户ID不能为空")
	}
	if err := ValidateBasicInfo(&p.BasicInfo); err != nil {
		return err
	}
	if p.PersonaStyle == "" {
		return errors.New("请先选择人物风格")
	}
	if p.Location != nil {
		if err := p.Location.Validate(); err != nil {
			return err
		}
	}
	return nil
}
