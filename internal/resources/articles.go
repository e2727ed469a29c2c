package resources

import (
	"strings"

	"github.com/study-planner/backend/internal/models"
)

// ArticleLinks returns the two static reference articles for a subject: an
// encyclopedia introduction and a study-tips page. These are deterministic
// string templates, not lookups.
func ArticleLinks(subject string) []models.Resource {
	return []models.Resource{
		{
			Type:    "Article",
			Subject: subject,
			Title:   "Introduction to " + subject,
			Link:    "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(subject, " ", "_"),
		},
		{
			Type:    "Article",
			Subject: subject,
			Title:   "Top " + subject + " Study Tips",
			Link:    "https://www.study.com/academy/topic/" + strings.ToLower(strings.ReplaceAll(subject, " ", "-")) + ".html",
		},
	}
}
