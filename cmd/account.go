package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage learner accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create <account-id>",
	Short: "Create an account with a fresh trial window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		company, _ := cmd.Flags().GetString("company")

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		acc, err := eng.CreateAccount(cmd.Context(), args[0], email, company)
		if err != nil {
			return err
		}
		fmt.Printf("created account %s (tier %s, trial %d days)\n", acc.ID, acc.Tier, acc.TrialLengthDays)
		return nil
	},
}

var accountShowCmd = &cobra.Command{
	Use:   "show <account-id>",
	Short: "Show an account's subscription and counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		acc, err := eng.GetAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Account:   %s (%s)\n", acc.ID, acc.Email)
		if acc.CompanyName != "" {
			fmt.Printf("Company:   %s\n", acc.CompanyName)
		}
		fmt.Printf("Tier:      %s\n", acc.Tier)
		fmt.Printf("Level:     %d\n", acc.OWASPLevel)
		fmt.Printf("Lessons:   %d completed\n", acc.LessonsCompleted)
		fmt.Printf("Quizzes:   %d passed, %d total score\n", acc.QuizzesPassed, acc.ScoreTotal)
		fmt.Printf("Streak:    %d days (longest %d)\n", acc.CurrentStreakDays, acc.LongestStreakDays)
		return nil
	},
}

func init() {
	accountCreateCmd.Flags().String("email", "", "Account email")
	accountCreateCmd.Flags().String("company", "", "Company name")
	_ = accountCreateCmd.MarkFlagRequired("email")

	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountShowCmd)
}
