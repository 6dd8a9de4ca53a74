package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmyjc/AICareLog/internal/api"
	"github.com/hmyjc/AICareLog/internal/app"
	"github.com/hmyjc/AICareLog/internal/cli"
	"github.com/hmyjc/AICareLog/internal/config"
)

var (
	// 全局flag，覆盖配置文件和环境变量
	baseURL       string
	transportKind string
	verbose       bool

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "aicarelog",
	Short: "AICareLog — 个人健康档案与健康提醒客户端",
	Long: `AICareLog 命令行客户端：维护个人健康档案，选择推送内容的人物风格，
按需获取作息、饮食、天气和养生类健康提醒。

首次运行会生成一个匿名用户ID并保存在本机，之后所有操作都以它为主体。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if baseURL != "" {
			cfg.API.BaseURL = baseURL
		}
		if transportKind != "" {
			cfg.API.Transport = transportKind
		}
		if verbose {
			cfg.Log.Level = "debug"
		}

		a, err := app.New(cfg, cli.NewSpinner())
		if err != nil {
			return err
		}
		application = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			_ = application.Logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "后端服务地址（默认取配置）")
	rootCmd.PersistentFlags().StringVar(&transportKind, "transport", "", "HTTP实现：resty或http")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newLocationCmd())
	rootCmd.AddCommand(newPersonaCmd())
	rootCmd.AddCommand(newPushCmd())
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "显示本机的匿名用户ID",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(application.State.UserID())
		},
	}
}

// reportError 按失败分类输出提示
// not_found 不在这里处理：它是预期状态，由各命令就地引导
func reportError(err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "错误：%v\n", err)
		return
	}

	switch apiErr.Kind {
	case api.KindValidation:
		fmt.Fprintf(os.Stderr, "%s\n", apiErr.Message)
	case api.KindAuthentication:
		fmt.Fprintf(os.Stderr, "需要登录后才能操作：%s\n", apiErr.Message)
	case api.KindNetwork:
		fmt.Fprintf(os.Stderr, "网络请求失败，请检查网络后重试：%s\n", apiErr.Message)
	default:
		fmt.Fprintf(os.Stderr, "操作失败，请重试：%s\n", apiErr.Message)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}
