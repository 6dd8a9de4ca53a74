package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *HealthProfile {
	return &HealthProfile{
		UserID: "user_1700000000000",
		BasicInfo: BasicInfo{
			Nickname:  "小王",
			BirthDate: "1995-03",
			Age:       30,
			Gender:    GenderMale,
			Height:    175,
			Weight:    68.5,
			BloodType: BloodTypeO,
		},
		HealthInfo: HealthInfo{
			LifestyleHabits: []string{"久坐", "熬夜"},
			Allergies:       []string{"青霉素过敏"},
			SurgeryHistory:  []NamedDate{{Name: "阑尾切除", Date: "2018-06"}},
		},
		OtherInfo: OtherInfo{
			Vaccination: []NamedDate{{Name: "流感疫苗", Date: "2024-10"}},
		},
		PersonaStyle: "专业顾问",
	}
}

func TestValidateForCreate(t *testing.T) {
	require.NoError(t, validProfile().ValidateForCreate())
}

func TestValidateForCreate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HealthProfile)
	}{
		{"缺昵称", func(p *HealthProfile) { p.BasicInfo.Nickname = "" }},
		{"缺出生年月", func(p *HealthProfile) { p.BasicInfo.BirthDate = "" }},
		{"年龄为负", func(p *HealthProfile) { p.BasicInfo.Age = -1 }},
		{"性别非法", func(p *HealthProfile) { p.BasicInfo.Gender = "other" }},
		{"身高为零", func(p *HealthProfile) { p.BasicInfo.Height = 0 }},
		{"体重为负", func(p *HealthProfile) { p.BasicInfo.Weight = -60 }},
		{"血型非法", func(p *HealthProfile) { p.BasicInfo.BloodType = "C" }},
		{"未选人物风格", func(p *HealthProfile) { p.PersonaStyle = "" }},
		{"地区不在目录", func(p *HealthProfile) { p.Location = &Location{Province: "浙江", City: "北京"} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(p)
			assert.Error(t, p.ValidateForCreate())
		})
	}
}

func TestValidateForCreate_BloodTypeOptional(t *testing.T) {
	p := validProfile()
	p.BasicInfo.BloodType = ""
	require.NoError(t, p.ValidateForCreate())
}

// 部分更新只序列化提供的部分：未指定的顶层字段不应出现在请求体里
func TestProfileUpdate_PartialSerialization(t *testing.T) {
	update := &ProfileUpdate{
		HealthInfo: &HealthInfo{
			Allergies: []string{"青霉素过敏", "鸡蛋过敏"},
		},
	}

	raw, err := json.Marshal(update)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Contains(t, body, "health_info")
	assert.NotContains(t, body, "basic_info")
	assert.NotContains(t, body, "other_info")
	assert.NotContains(t, body, "persona_style")
	assert.NotContains(t, body, "location")
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&ProfileUpdate{}).IsEmpty())
	assert.False(t, (&ProfileUpdate{PersonaStyle: "元气少女"}).IsEmpty())
}

func TestProfileJSONTags(t *testing.T) {
	raw, err := json.Marshal(validProfile())
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, key := range []string{"user_id", "basic_info", "health_info", "other_info", "persona_style"} {
		assert.Contains(t, body, key)
	}
	// 服务端维护的时间戳为空时不上送
	assert.NotContains(t, body, "created_at")
	assert.NotContains(t, body, "updated_at")
}
