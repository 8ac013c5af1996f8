// package feedclient consumes the aggregation endpoint: it fetches the
// enriched video list and owns the loading/error/refresh state the UI
// renders from.
package feedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Video is the client's copy of one feed record. The list is replaced
// wholesale on every successful fetch; individual records are never merged.
type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnail    string `json:"thumbnail"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchVideos performs one GET /videos round trip. Any non-2xx status is an
// error; the caller does not care whether the server blamed its store or its
// upstream, both are equally solved by trying again later.
func (c *Client) FetchVideos(ctx context.Context) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed fetch: unexpected status %d", resp.StatusCode)
	}

	var videos []Video
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return nil, fmt.Errorf("feed fetch: decode response: %w", err)
	}

	return videos, nil
}
