package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start and submit adaptive quizzes",
}

var quizStartCmd = &cobra.Command{
	Use:   "start <account-id>",
	Short: "Resume the open quiz or issue a new one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		att, questions, err := eng.StartQuiz(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("attempt %s (module %s, %d questions)\n\n", att.ID, att.ModuleCode, len(questions))
		for i, q := range questions {
			fmt.Printf("%d. [%s] %s\n", i+1, q.ID, q.Prompt)
			for j, choice := range q.Choices {
				fmt.Printf("   %d) %s\n", j, choice)
			}
			fmt.Println()
		}
		fmt.Println("submit with: smbshield quiz submit <account-id>", att.ID, `--answers "<question-id>=<choice>,..."`)
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <account-id> <attempt-id>",
	Short: "Submit answers and score the attempt",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("answers")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.SubmitQuiz(cmd.Context(), args[0], args[1], answers)
		if err != nil {
			return err
		}

		verdict := "failed"
		if res.Passed {
			verdict = "passed"
		}
		fmt.Printf("score %d/100 (%d of %d correct): %s\n\n", res.Score, res.CorrectCount, res.Total, verdict)
		for _, fb := range res.Feedback {
			mark := "x"
			if fb.Correct {
				mark = "ok"
			}
			fmt.Printf("[%s] %s\n", mark, fb.Prompt)
			if !fb.Correct {
				fmt.Printf("     %s\n", fb.Explanation)
			}
		}
		return nil
	},
}

var quizDraftCmd = &cobra.Command{
	Use:   "draft <account-id> <module-code>",
	Short: "Draft fresh quiz questions with the model provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		questions, err := eng.DraftQuestions(cmd.Context(), args[0], args[1], count)
		if err != nil {
			return err
		}

		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Prompt)
			for j, choice := range q.Choices {
				mark := " "
				if j == q.Answer {
					mark = "*"
				}
				fmt.Printf("  %s %d) %s\n", mark, j, choice)
			}
			fmt.Printf("   %s\n\n", q.Explanation)
		}
		return nil
	},
}

// parseAnswers parses "Q1=2,Q2=0" into a question-to-choice map.
func parseAnswers(raw string) (map[string]int, error) {
	out := make(map[string]int)
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("bad answer %q, want <question-id>=<choice>", pair)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("bad choice in %q: %w", pair, err)
		}
		out[strings.TrimSpace(k)] = idx
	}
	return out, nil
}

func init() {
	quizSubmitCmd.Flags().String("answers", "", `Comma-separated answers, "<question-id>=<choice-index>"`)
	quizDraftCmd.Flags().Int("count", 5, "Number of questions to draft")

	quizCmd.AddCommand(quizStartCmd)
	quizCmd.AddCommand(quizSubmitCmd)
	quizCmd.AddCommand(quizDraftCmd)
}
