package advisor

import (
	"fmt"
	"strings"
)

// TipsSystemPrompt instructs the model to answer with a bare JSON array.
func TipsSystemPrompt() string {
	return `You are a study coach helping a student prepare for an exam.

You will be given the student's subjects, their daily study hour budget, and
how many days remain before the exam.

Respond with a JSON array of exactly 5 tip strings. Each tip must be:
- Specific to the subjects and time frame given
- A single sentence of practical, actionable advice
- Free of numbering, markdown, and emoji

OUTPUT FORMAT: a raw JSON array of strings. No surrounding prose, no code
fences, nothing before or after the array.`
}

// BuildTipsUserPrompt renders the plan inputs for the model.
func BuildTipsUserPrompt(subjects []string, dailyHours float64, daysLeft int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subjects: %s\n", strings.Join(subjects, ", "))
	fmt.Fprintf(&b, "Daily study budget: %.1f hours\n", dailyHours)
	fmt.Fprintf(&b, "Days until the exam: %d\n", daysLeft)
	b.WriteString("\nGive me 5 study tips as a JSON array of strings.")
	return b.String()
}
