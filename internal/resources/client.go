package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/study-planner/backend/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3/search"

// Client looks up tutorial playlists on the YouTube search API. Lookups are
// best-effort: one GET per subject, no retries, failures are reported to the
// caller and never abort the remaining subjects.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     os.Getenv("YOUTUBE_API_KEY"),
		baseURL:    defaultBaseURL,
	}
}

// Configured reports whether an API key is available. Without one the video
// lookup is skipped entirely.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			PlaylistID string `json:"playlistId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchPlaylist returns the top tutorial playlist for a subject.
func (c *Client) SearchPlaylist(ctx context.Context, subject string) (*models.Resource, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", subject+" tutorial")
	params.Set("type", "playlist")
	params.Set("maxResults", "1")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search: status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("youtube search: decode response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("no playlist found for %q", subject)
	}

	item := parsed.Items[0]
	return &models.Resource{
		Type:    "YouTube Playlist",
		Subject: subject,
		Title:   item.Snippet.Title,
		Link:    "https://www.youtube.com/playlist?list=" + item.ID.PlaylistID,
	}, nil
}
