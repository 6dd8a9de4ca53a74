package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmyjc/AICareLog/internal/cli"
)

func newPersonaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "人物风格：推送内容的语气",
	}
	cmd.AddCommand(newPersonaListCmd())
	cmd.AddCommand(newPersonaSelectCmd())
	cmd.AddCommand(newPersonaCurrentCmd())
	return cmd
}

func newPersonaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出所有可选的人物风格",
		RunE: func(cmd *cobra.Command, args []string) error {
			styles, err := application.Client.GetPersonaStyles(cmd.Context())
			if err != nil {
				return err
			}
			cli.RenderStyles(os.Stdout, styles, application.State.Snapshot().CurrentPersona)
			return nil
		},
	}
}

func newPersonaSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <风格名称>",
		Short: "选择人物风格（需要已有健康档案）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName := args[0]
			userID := application.State.UserID()
			msg, err := application.Client.SelectPersonaStyle(cmd.Context(), userID, styleName)
			if err != nil {
				return err
			}
			application.State.SetPersona(styleName)
			if msg == "" {
				msg = fmt.Sprintf("成功选择'%s'风格", styleName)
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func newPersonaCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "查看当前人物风格",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := application.State.UserID()
			style, err := application.Client.GetCurrentPersonaStyle(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if style == nil {
				application.State.ClearPersona()
				fmt.Println("尚未选择人物风格，运行 aicarelog persona list 查看可选项")
				return nil
			}
			application.State.SetPersona(style.StyleName)
			fmt.Printf("%s — %s\n", style.StyleName, style.Description)
			return nil
		},
	}
}
