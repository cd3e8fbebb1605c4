package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <account-id>",
	Short: "Show the account's progress summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := eng.ProgressSummary(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Tier %s, OWASP level %d\n", sum.Tier, sum.OWASPLevel)
		if sum.InTrial {
			fmt.Printf("Trial: %d days remaining\n", sum.TrialDaysRemaining)
		}
		fmt.Printf("Streak: %d days (longest %d)\n", sum.CurrentStreakDays, sum.LongestStreakDays)
		fmt.Printf("Quizzes passed: %d, total score: %d\n\n", sum.QuizzesPassed, sum.ScoreTotal)

		fmt.Printf("%-5s %-45s %s\n", "Code", "Module", "Lessons")
		for _, m := range sum.Modules {
			fmt.Printf("%-5s %-45s %d/%d\n", m.Code, m.Name, m.CompletedCount, m.LessonCount)
		}
		return nil
	},
}
