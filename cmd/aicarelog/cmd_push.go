package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmyjc/AICareLog/internal/api"
	"github.com/hmyjc/AICareLog/internal/cli"
)

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "健康提醒推送",
	}
	cmd.AddCommand(newPushRestCmd())
	cmd.AddCommand(newPushMealCmd())
	cmd.AddCommand(newPushWeatherCmd())
	cmd.AddCommand(newPushTipCmd())
	cmd.AddCommand(newPushHistoryCmd())
	cmd.AddCommand(newPushReadCmd())
	return cmd
}

// printPushResult 输出一次按需推送的结果
// 2xx 响应也可能携带业务层 error（如未设置地区的天气推送）
func printPushResult(result *api.PushResult) {
	if result.Status != "success" {
		fmt.Fprintf(os.Stderr, "推送失败：%s\n", result.Message)
		return
	}
	fmt.Println(result.Content)
}

func newPushRestCmd() *cobra.Command {
	var timeType string
	cmd := &cobra.Command{
		Use:   "rest",
		Short: "作息提醒",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.Client.PushRestReminder(cmd.Context(), application.State.UserID(), timeType)
			if err != nil {
				return err
			}
			printPushResult(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&timeType, "time", "", "时段：morning/noon/night")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newPushMealCmd() *cobra.Command {
	var mealType string
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "饮食提醒",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.Client.PushMealReminder(cmd.Context(), application.State.UserID(), mealType)
			if err != nil {
				return err
			}
			printPushResult(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&mealType, "meal", "", "餐次：breakfast/lunch/dinner")
	_ = cmd.MarkFlagRequired("meal")
	return cmd
}

func newPushWeatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "天气提醒（需要先设置所在地区）",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.Client.PushWeatherReminder(cmd.Context(), application.State.UserID())
			if err != nil {
				return err
			}
			printPushResult(result)
			return nil
		},
	}
}

func newPushTipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "养生妙招",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.Client.PushHealthTip(cmd.Context(), application.State.UserID())
			if err != nil {
				return err
			}
			printPushResult(result)
			return nil
		},
	}
}

func newPushHistoryCmd() *cobra.Command {
	var pushType string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "推送历史（最新在前）",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := application.Client.GetPushHistory(cmd.Context(), application.State.UserID(), pushType, limit)
			if err != nil {
				return err
			}
			cli.RenderPushRecords(os.Stdout, records)
			return nil
		},
	}
	cmd.Flags().StringVar(&pushType, "type", "", "类型过滤：rest/meal/weather/health_tip")
	cmd.Flags().IntVar(&limit, "limit", api.DefaultHistoryLimit, "返回条数")
	return cmd
}

func newPushReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <推送ID>",
		Short: "标记某条推送为已读",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Client.MarkPushAsRead(cmd.Context(), args[0], application.State.UserID()); err != nil {
				return err
			}
			fmt.Println("标记已读成功")
			return nil
		},
	}
}
