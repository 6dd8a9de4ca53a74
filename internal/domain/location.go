package domain

import (
	"errors"
	"fmt"
)

// Location 所在地区，用于天气相关推送
type Location struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// Validate 校验省市组合是否在地区目录中
func (l *Location) Validate() error {
	if l.Province == "" || l.City == "" {
		return errors.New("省份和城市不能为空")
	}
	if !ValidLocation(l.Province, l.City) {
		return fmt.Errorf("无效的地区：%s %s", l.Province, l.City)
	}
	return nil
}
