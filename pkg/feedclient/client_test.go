package feedclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchVideos_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/videos", r.URL.Path)
		fmt.Fprint(w, `[
			{"videoId":"v1","title":"one","channelTitle":"c1","thumbnail":"https://img.example/v1.jpg"},
			{"videoId":"v2","title":"two","channelTitle":"c2","thumbnail":"https://img.example/v2.jpg"}
		]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	videos, err := c.FetchVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.Equal(t, Video{VideoID: "v1", Title: "one", ChannelTitle: "c1", Thumbnail: "https://img.example/v1.jpg"}, videos[0])
}

func TestFetchVideos_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	videos, err := c.FetchVideos(context.Background())
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestFetchVideos_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"failed to load videos"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchVideos(context.Background())
	require.Error(t, err)
}

func TestFetchVideos_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"an array"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchVideos(context.Background())
	require.Error(t, err)
}
