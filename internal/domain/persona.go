package domain

// PersonaStyle 人物风格：推送内容的语气模板，目录由服务端维护
type PersonaStyle struct {
	StyleName   string `json:"style_name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}
