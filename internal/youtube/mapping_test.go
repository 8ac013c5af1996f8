package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapItem_FlattensSnippet(t *testing.T) {
	v, err := mapItem(listItem{
		ID: "abc123",
		Snippet: &snippet{
			Title:        "A Title",
			ChannelTitle: "A Channel",
			Thumbnails: thumbnails{
				High: &thumbnail{URL: "https://img.example/high.jpg"},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "abc123", v.VideoID)
	require.Equal(t, "A Title", v.Title)
	require.Equal(t, "A Channel", v.ChannelTitle)
	require.Equal(t, "https://img.example/high.jpg", v.ThumbnailURL)
}

func TestMapItem_MissingID(t *testing.T) {
	_, err := mapItem(listItem{Snippet: &snippet{Title: "t"}})
	require.Error(t, err)
}

func TestMapItem_MissingSnippet(t *testing.T) {
	_, err := mapItem(listItem{ID: "abc123"})
	require.Error(t, err)
}

func TestThumbnails_BestPrefersLargest(t *testing.T) {
	all := thumbnails{
		Default: &thumbnail{URL: "d"},
		Medium:  &thumbnail{URL: "m"},
		High:    &thumbnail{URL: "h"},
	}
	require.Equal(t, "h", all.best())

	require.Equal(t, "m", thumbnails{Default: &thumbnail{URL: "d"}, Medium: &thumbnail{URL: "m"}}.best())
	require.Equal(t, "d", thumbnails{Default: &thumbnail{URL: "d"}}.best())
	require.Equal(t, "", thumbnails{}.best())
}
