package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxTips = 10

// ParseTips parses a model response into a tip list. Code fences are
// stripped first since models wrap JSON in them despite instructions.
func ParseTips(responseBody string) ([]string, error) {
	cleaned := stripCodeFences(responseBody)

	var raw []string
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	tips := make([]string, 0, len(raw))
	for i, tip := range raw {
		tip = strings.TrimSpace(tip)
		if tip == "" {
			return nil, fmt.Errorf("tip %d is empty", i+1)
		}
		tips = append(tips, tip)
	}

	if len(tips) == 0 {
		return nil, fmt.Errorf("response contained no tips")
	}
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
