package advisor

import (
	"strings"
	"testing"
)

func TestTipsSystemPrompt(t *testing.T) {
	prompt := TipsSystemPrompt()

	required := []string{"JSON array", "5 tip", "study coach"}
	for _, keyword := range required {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("system prompt missing keyword %q", keyword)
		}
	}
}

func TestBuildTipsUserPrompt(t *testing.T) {
	prompt := BuildTipsUserPrompt([]string{"Math", "Science"}, 3, 14)

	required := []string{"Math, Science", "3.0 hours", "14", "JSON array"}
	for _, keyword := range required {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("user prompt missing %q:\n%s", keyword, prompt)
		}
	}
}
