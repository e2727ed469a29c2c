package models

// Resource is a study resource reference: a video playlist or an article.
// Favorites compare resources by value, so all fields are plain strings.
type Resource struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

// ResourceBundle groups everything looked up for one subject. Playlist is
// nil when the video lookup is unconfigured or failed; Warning carries the
// non-fatal failure message in that case.
type ResourceBundle struct {
	Subject  string     `json:"subject"`
	Playlist *Resource  `json:"playlist,omitempty"`
	Articles []Resource `json:"articles"`
	Warning  string     `json:"warning,omitempty"`
}

type SaveFavoriteResponse struct {
	Added     bool       `json:"added"`
	Favorites []Resource `json:"favorites"`
}
