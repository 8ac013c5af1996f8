package youtube

import "fmt"

// Video is the normalized record handed to clients. VideoID always equals
// the external identifier that was requested, even though the raw API keys
// records under a differently-named field.
type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	ThumbnailURL string `json:"thumbnail"`
}

// Raw videos.list response shape. Only the fields we flatten are declared.
type listResponse struct {
	Items []listItem `json:"items"`
}

type listItem struct {
	ID      string   `json:"id"`
	Snippet *snippet `json:"snippet"`
}

type snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	Default *thumbnail `json:"default"`
	Medium  *thumbnail `json:"medium"`
	High    *thumbnail `json:"high"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// mapItem flattens one raw API item into a Video. A missing id or snippet
// means the response body does not hold what the API contract promises, and
// is reported as an error rather than a half-empty record.
func mapItem(item listItem) (Video, error) {
	if item.ID == "" {
		return Video{}, fmt.Errorf("item missing id")
	}
	if item.Snippet == nil {
		return Video{}, fmt.Errorf("item %q missing snippet", item.ID)
	}

	return Video{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		ThumbnailURL: item.Snippet.Thumbnails.best(),
	}, nil
}

// best picks the largest thumbnail rendition present.
func (t thumbnails) best() string {
	switch {
	case t.High != nil:
		return t.High.URL
	case t.Medium != nil:
		return t.Medium.URL
	case t.Default != nil:
		return t.Default.URL
	default:
		return ""
	}
}
