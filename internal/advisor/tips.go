package advisor

import "math/rand"

// defaultTips is the built-in pool shown when no model is configured.
var defaultTips = []string{
	"Set short-term and long-term goals to stay motivated.",
	"Use the Pomodoro technique: 25 minutes focused study, 5 minutes break.",
	"Review your notes within 24 hours of learning for better retention.",
	"Practice with previous years' question papers regularly.",
	"Prioritize hard subjects earlier in the day when you're more focused.",
	"Sleep well: a minimum of 7 to 8 hours helps with memory and concentration.",
	"Avoid multitasking; focus on one subject at a time.",
}

// RandomTip returns one tip from the built-in pool.
func RandomTip() string {
	return defaultTips[rand.Intn(len(defaultTips))]
}
