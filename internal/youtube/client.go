// package youtube resolves bare video identifiers into display metadata via
// the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com"

// maxBatchSize is the documented cap on ids per videos.list call. Larger id
// sets are split into consecutive calls and concatenated in call order.
const maxBatchSize = 50

// ErrUpstream tags every failure caused by the metadata API: non-2xx status,
// malformed response body, or timeout. Callers can branch on it with
// errors.Is without string matching.
var ErrUpstream = errors.New("youtube api error")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
		// The API is quota-bound; keep outbound calls to a gentle trickle.
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

// Enrich resolves ids into Videos, preserving the order the API returns
// matches in. Ids the API does not resolve are absent from the result, never
// null-padded. An empty id set returns an empty result without any outbound
// call.
func (c *Client) Enrich(ctx context.Context, ids []string) ([]Video, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return []Video{}, nil
	}

	videos := make([]Video, 0, len(cleaned))
	for start := 0; start < len(cleaned); start += maxBatchSize {
		end := min(start+maxBatchSize, len(cleaned))

		batch, err := c.listBatch(ctx, cleaned[start:end])
		if err != nil {
			return nil, err
		}
		videos = append(videos, batch...)
	}

	return videos, nil
}

func (c *Client) listBatch(ctx context.Context, ids []string) ([]Video, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	u, err := url.Parse(c.baseURL + "/youtube/v3/videos")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("part", "snippet,contentDetails")
	q.Set("id", strings.Join(ids, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	// Credential goes in a header, not the URL, so transport errors and logs
	// can never carry it.
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}

	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	videos := make([]Video, 0, len(out.Items))
	for _, item := range out.Items {
		// Never surface records for ids we did not ask about.
		if _, ok := requested[item.ID]; !ok {
			continue
		}
		v, err := mapItem(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		videos = append(videos, v)
	}

	return videos, nil
}
