package generator

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a security educator writing for small-business owners and their staff.

Rules:
- The audience is non-technical. Explain every concept in plain language; name a technical term only after describing what it means.
- Ground everything in a small-business setting: shops, agencies, practices with a handful of staff and no security team.
- The real-world example must be specific and plausible, not hypothetical boilerplate.
- Protective steps must be actions a small team can take this week, not enterprise programs.
- The quick-check question must be answerable in one or two words after reading the lesson.
- Keep the key takeaway to a single memorable sentence.`

const questionsSystemPrompt = `You are a security educator writing quiz questions for small-business owners and their staff.

Rules:
- Each question tests understanding of a concept, not recall of exact wording.
- Provide exactly four choices with exactly one correct answer.
- Distractors should reflect plausible misconceptions, not obviously silly options.
- Explanations state why the correct choice is right in one or two sentences.
- Plain language throughout; the audience has no security background.
- Do not repeat any question from the "already used" list.`

func buildLessonMessage(input LessonInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s (%s)\n", input.Module.Name, input.Module.Code)
	fmt.Fprintf(&b, "Module description: %s\n", input.Module.Description)
	fmt.Fprintf(&b, "Lesson title: %s\n", input.Title)
	if input.Minutes > 0 {
		fmt.Fprintf(&b, "Target reading time: %d minutes\n", input.Minutes)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Module.DifficultyTier)

	b.WriteString("\nLearner weaknesses to address where relevant:\n")
	b.WriteString(formatList(input.Weaknesses, 0))

	return b.String()
}

func buildQuestionsMessage(input QuestionsInput, maxPrior int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s (%s)\n", input.Module.Name, input.Module.Code)
	fmt.Fprintf(&b, "Module description: %s\n", input.Module.Description)
	fmt.Fprintf(&b, "Questions needed: %d\n", input.Count)

	b.WriteString("\nLearner weaknesses to probe:\n")
	b.WriteString(formatList(input.Weaknesses, 0))

	b.WriteString("\n\nAlready used, do not repeat:\n")
	b.WriteString(formatList(input.PriorPrompts, maxPrior))

	return b.String()
}

// formatList renders a numbered list, keeping only the last max entries
// when max is positive.
func formatList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}
	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}
