package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hmyjc/AICareLog/internal/domain"
)

// RenderProfile 打印健康档案
func RenderProfile(w io.Writer, p *domain.HealthProfile) {
	fmt.Fprintf(w, "用户ID：%s\n", p.UserID)
	fmt.Fprintln(w, "— 基础信息 —")
	fmt.Fprintf(w, "  昵称：%s  出生年月：%s  年龄：%d  性别：%s\n",
		p.BasicInfo.Nickname, p.BasicInfo.BirthDate, p.BasicInfo.Age, p.BasicInfo.Gender)
	fmt.Fprintf(w, "  身高：%.1fcm  体重：%.1fkg  血型：%s\n",
		p.BasicInfo.Height, p.BasicInfo.Weight, orDefault(p.BasicInfo.BloodType, domain.BloodTypeUnknown))

	fmt.Fprintln(w, "— 健康信息 —")
	renderList(w, "生活习惯", p.HealthInfo.LifestyleHabits)
	renderList(w, "过敏史", p.HealthInfo.Allergies)
	renderList(w, "既往病史", p.HealthInfo.MedicalHistory)
	renderList(w, "药品不良反应", p.HealthInfo.AdverseReactions)
	renderList(w, "家族史", p.HealthInfo.FamilyHistory)
	renderNamedDates(w, "手术史", p.HealthInfo.SurgeryHistory)

	fmt.Fprintln(w, "— 其他信息 —")
	renderNamedDates(w, "疫苗接种", p.OtherInfo.Vaccination)
	if p.OtherInfo.OtherNotes != "" {
		fmt.Fprintf(w, "  备注：%s\n", p.OtherInfo.OtherNotes)
	}

	if p.PersonaStyle != "" {
		fmt.Fprintf(w, "人物风格：%s\n", p.PersonaStyle)
	}
	if p.Location != nil {
		fmt.Fprintf(w, "所在地区：%s %s\n", p.Location.Province, p.Location.City)
	}
}

// RenderStyles 打印人物风格目录，标出当前选择
func RenderStyles(w io.Writer, styles []domain.PersonaStyle, current string) {
	for _, s := range styles {
		marker := "  "
		if s.StyleName == current {
			marker = "* "
		}
		if s.Icon != "" {
			fmt.Fprintf(w, "%s%s %s — %s\n", marker, s.Icon, s.StyleName, s.Description)
		} else {
			fmt.Fprintf(w, "%s%s — %s\n", marker, s.StyleName, s.Description)
		}
	}
}

// RenderPushRecords 打印推送历史（最新在前）
func RenderPushRecords(w io.Writer, records []domain.PushRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "暂无推送记录")
		return
	}
	for _, r := range records {
		read := "未读"
		if r.IsRead {
			read = "已读"
		}
		fmt.Fprintf(w, "[%s] %s (%s) #%s\n", pushTypeLabel(r.PushType), r.PushTime, read, r.ID)
		fmt.Fprintf(w, "  %s\n", r.Content)
	}
}

func pushTypeLabel(t string) string {
	switch t {
	case domain.PushTypeRest:
		return "作息"
	case domain.PushTypeMeal:
		return "饮食"
	case domain.PushTypeWeather:
		return "天气"
	case domain.PushTypeHealthTip:
		return "养生"
	}
	return t
}

func renderList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s：%s\n", label, strings.Join(items, "、"))
}

func renderNamedDates(w io.Writer, label string, items []domain.NamedDate) {
	if len(items) == 0 {
		return
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s(%s)", it.Name, it.Date))
	}
	fmt.Fprintf(w, "  %s：%s\n", label, strings.Join(parts, "、"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
