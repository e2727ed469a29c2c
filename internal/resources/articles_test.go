package resources

import "testing"

func TestArticleLinks(t *testing.T) {
	articles := ArticleLinks("Computer Science")

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	intro := articles[0]
	if intro.Title != "Introduction to Computer Science" {
		t.Errorf("intro title = %q", intro.Title)
	}
	if intro.Link != "https://en.wikipedia.org/wiki/Computer_Science" {
		t.Errorf("intro link = %q", intro.Link)
	}

	tips := articles[1]
	if tips.Title != "Top Computer Science Study Tips" {
		t.Errorf("tips title = %q", tips.Title)
	}
	if tips.Link != "https://www.study.com/academy/topic/computer-science.html" {
		t.Errorf("tips link = %q", tips.Link)
	}

	for _, a := range articles {
		if a.Type != "Article" || a.Subject != "Computer Science" {
			t.Errorf("article = %+v", a)
		}
	}
}
