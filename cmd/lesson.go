package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Open, complete, and draft lessons",
}

var lessonOpenCmd = &cobra.Command{
	Use:   "open <account-id> <lesson-id>",
	Short: "Open a lesson (access-checked)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lesson, err := eng.OpenLesson(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		c := lesson.Content
		fmt.Printf("%s: %s (%d min)\n\n", lesson.ID, lesson.Title, lesson.EstimatedMinutes)
		fmt.Printf("Why it matters:\n  %s\n\n", c.WhyItMatters)
		fmt.Printf("What it is:\n  %s\n\n", c.WhatItIs)
		fmt.Printf("Real-world example:\n  %s\n\n", c.RealWorldExample)
		fmt.Println("How to protect your business:")
		for _, step := range c.HowToProtect {
			fmt.Printf("  - %s\n", step)
		}
		fmt.Printf("\nQuick check: %s\n", c.QuickCheckQuestion)
		fmt.Printf("\nKey takeaway: %s\n", c.KeyTakeaway)
		return nil
	},
}

var lessonCompleteCmd = &cobra.Command{
	Use:   "complete <account-id> <lesson-id>",
	Short: "Mark a lesson complete and grade its quick check",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, _ := cmd.Flags().GetInt("seconds")
		answer, _ := cmd.Flags().GetString("answer")

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.CompleteLesson(cmd.Context(), args[0], args[1], seconds, answer)
		if err != nil {
			return err
		}

		check := "wrong"
		if res.Row.QuickCheckCorrect {
			check = "correct"
		}
		fmt.Printf("lesson %s complete (quick check %s)\n", args[1], check)
		if res.LeveledUp {
			fmt.Printf("level up! now at OWASP level %d\n", res.NewLevel)
		}
		return nil
	},
}

var lessonDraftCmd = &cobra.Command{
	Use:   "draft <account-id> <lesson-id>",
	Short: "Draft fresh lesson content with the model provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		content, err := eng.DraftLesson(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Why it matters: %s\n\n", content.WhyItMatters)
		fmt.Printf("What it is: %s\n\n", content.WhatItIs)
		fmt.Printf("Example: %s\n\n", content.RealWorldExample)
		fmt.Printf("Protect: %s\n\n", strings.Join(content.HowToProtect, "; "))
		fmt.Printf("Quick check: %s (%s)\n", content.QuickCheckQuestion, content.QuickCheckAnswer)
		fmt.Printf("Takeaway: %s\n", content.KeyTakeaway)
		return nil
	},
}

func init() {
	lessonCompleteCmd.Flags().Int("seconds", 0, "Time spent on the lesson in seconds")
	lessonCompleteCmd.Flags().String("answer", "", "Quick-check answer")

	lessonCmd.AddCommand(lessonOpenCmd)
	lessonCmd.AddCommand(lessonCompleteCmd)
	lessonCmd.AddCommand(lessonDraftCmd)
}
