package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmyjc/AICareLog/internal/domain"
)

func newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "所在地区（天气提醒需要）",
	}
	cmd.AddCommand(newLocationSetCmd())
	cmd.AddCommand(newLocationListCmd())
	return cmd
}

func newLocationSetCmd() *cobra.Command {
	var province, city string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "设置所在地区",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := domain.Location{Province: province, City: city}
			userID := application.State.UserID()
			if err := application.Client.SetUserLocation(cmd.Context(), userID, loc); err != nil {
				return err
			}
			fmt.Printf("地区已设置为 %s %s\n", province, city)
			return nil
		},
	}
	cmd.Flags().StringVar(&province, "province", "", "省份")
	cmd.Flags().StringVar(&city, "city", "", "城市")
	_ = cmd.MarkFlagRequired("province")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newLocationListCmd() *cobra.Command {
	var province string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出支持的省份，或某省份下的城市",
		RunE: func(cmd *cobra.Command, args []string) error {
			if province == "" {
				fmt.Println(strings.Join(domain.Provinces(), "、"))
				return nil
			}
			cities := domain.CitiesOf(province)
			if cities == nil {
				return fmt.Errorf("未知的省份：%s", province)
			}
			fmt.Println(strings.Join(cities, "、"))
			return nil
		},
	}
	cmd.Flags().StringVar(&province, "province", "", "省份（不指定则列出所有省份）")
	return cmd
}
