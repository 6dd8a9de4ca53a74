package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmyjc/AICareLog/internal/api"
	"github.com/hmyjc/AICareLog/internal/cli"
	"github.com/hmyjc/AICareLog/internal/domain"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "健康档案管理",
	}
	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileCreateCmd())
	cmd.AddCommand(newProfileUpdateCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "查看健康档案",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := application.State.UserID()
			profile, err := application.Client.GetHealthProfile(cmd.Context(), userID)
			if err != nil {
				// 尚无档案是新用户的正常状态，引导创建而不是报错
				if api.IsNotFound(err) {
					application.State.SetHasProfile(false)
					fmt.Println("还没有健康档案，运行 aicarelog profile create 创建一份")
					return nil
				}
				return err
			}

			application.State.SetHasProfile(true)
			if profile.PersonaStyle != "" {
				application.State.SetPersona(profile.PersonaStyle)
			}
			cli.RenderProfile(os.Stdout, profile)
			return nil
		},
	}
}

type profileFlags struct {
	nickname  string
	birthDate string
	age       int
	gender    string
	height    float64
	weight    float64
	bloodType string

	habits           []string
	allergies        []string
	medicalHistory   []string
	adverseReactions []string
	familyHistory    []string
	notes            string

	persona string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nickname, "nickname", "", "昵称")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "出生年月（YYYY-MM）")
	cmd.Flags().IntVar(&f.age, "age", 0, "年龄")
	cmd.Flags().StringVar(&f.gender, "gender", "", "性别（男/女）")
	cmd.Flags().Float64Var(&f.height, "height", 0, "身高（cm）")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "体重（kg）")
	cmd.Flags().StringVar(&f.bloodType, "blood-type", domain.BloodTypeUnknown, "血型（A/B/AB/O/未知）")

	cmd.Flags().StringSliceVar(&f.habits, "habit", nil, "生活习惯（可重复）")
	cmd.Flags().StringSliceVar(&f.allergies, "allergy", nil, "过敏史（可重复）")
	cmd.Flags().StringSliceVar(&f.medicalHistory, "medical-history", nil, "既往病史（可重复）")
	cmd.Flags().StringSliceVar(&f.adverseReactions, "adverse-reaction", nil, "药品不良反应（可重复）")
	cmd.Flags().StringSliceVar(&f.familyHistory, "family-history", nil, "家族史（可重复）")
	cmd.Flags().StringVar(&f.notes, "notes", "", "其他备注")
}

func (f *profileFlags) basicInfo() domain.BasicInfo {
	return domain.BasicInfo{
		Nickname:  f.nickname,
		BirthDate: f.birthDate,
		Age:       f.age,
		Gender:    f.gender,
		Height:    f.height,
		Weight:    f.weight,
		BloodType: f.bloodType,
	}
}

func (f *profileFlags) healthInfo() domain.HealthInfo {
	return domain.HealthInfo{
		LifestyleHabits:  emptyIfNil(f.habits),
		Allergies:        emptyIfNil(f.allergies),
		MedicalHistory:   emptyIfNil(f.medicalHistory),
		AdverseReactions: emptyIfNil(f.adverseReactions),
		FamilyHistory:    emptyIfNil(f.familyHistory),
		SurgeryHistory:   []domain.NamedDate{},
	}
}

func newProfileCreateCmd() *cobra.Command {
	flags := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建健康档案",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := &domain.HealthProfile{
				UserID:     application.State.UserID(),
				BasicInfo:  flags.basicInfo(),
				HealthInfo: flags.healthInfo(),
				OtherInfo: domain.OtherInfo{
					Vaccination: []domain.NamedDate{},
					OtherNotes:  flags.notes,
				},
				PersonaStyle: flags.persona,
			}

			created, err := application.Client.CreateHealthProfile(cmd.Context(), profile)
			if err != nil {
				return err
			}

			application.State.SetHasProfile(true)
			application.State.SetPersona(profile.PersonaStyle)
			fmt.Println("健康档案创建成功")
			cli.RenderProfile(os.Stdout, created)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.persona, "persona", "", "人物风格名称（创建档案必选）")
	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	flags := &profileFlags{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "更新健康档案（只提交指定的部分）",
		RunE: func(cmd *cobra.Command, args []string) error {
			update := &domain.ProfileUpdate{}

			if anyChanged(cmd, "nickname", "birth-date", "age", "gender", "height", "weight", "blood-type") {
				b := flags.basicInfo()
				update.BasicInfo = &b
			}
			if anyChanged(cmd, "habit", "allergy", "medical-history", "adverse-reaction", "family-history") {
				h := flags.healthInfo()
				update.HealthInfo = &h
			}
			if cmd.Flags().Changed("notes") {
				update.OtherInfo = &domain.OtherInfo{
					Vaccination: []domain.NamedDate{},
					OtherNotes:  flags.notes,
				}
			}
			if cmd.Flags().Changed("persona") {
				update.PersonaStyle = flags.persona
			}

			userID := application.State.UserID()
			if err := application.Client.UpdateHealthProfile(cmd.Context(), userID, update); err != nil {
				return err
			}
			if update.PersonaStyle != "" {
				application.State.SetPersona(update.PersonaStyle)
			}
			fmt.Println("健康档案更新成功")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.persona, "persona", "", "人物风格名称")
	return cmd
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// emptyIfNil 与后端约定列表字段始终序列化为数组而非null
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
