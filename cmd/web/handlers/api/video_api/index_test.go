package video_api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"oakstream.dev/tubefeed/internal/catalog"
	"oakstream.dev/tubefeed/internal/youtube"
)

type stubFeed struct {
	videos []youtube.Video
	err    error
}

func (s *stubFeed) Videos(ctx context.Context) ([]youtube.Video, error) {
	return s.videos, s.err
}

func doRequest(t *testing.T, svc FeedService) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HandleIndex(svc)(c))
	return rec
}

func TestHandleIndex_ReturnsRecordsInOrder(t *testing.T) {
	rec := doRequest(t, &stubFeed{videos: []youtube.Video{
		{VideoID: "v1", Title: "one", ChannelTitle: "c1", ThumbnailURL: "https://img.example/v1.jpg"},
		{VideoID: "v2", Title: "two", ChannelTitle: "c2", ThumbnailURL: "https://img.example/v2.jpg"},
	}})

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	require.Equal(t, "v1", body[0]["videoId"])
	require.Equal(t, "one", body[0]["title"])
	require.Equal(t, "c1", body[0]["channelTitle"])
	require.Equal(t, "https://img.example/v1.jpg", body[0]["thumbnail"])
	require.Equal(t, "v2", body[1]["videoId"])
}

func TestHandleIndex_EmptyFeedIsEmptyArray(t *testing.T) {
	rec := doRequest(t, &stubFeed{videos: []youtube.Video{}})

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleIndex_StoreFailure(t *testing.T) {
	rec := doRequest(t, &stubFeed{err: fmt.Errorf("%w: connection refused", catalog.ErrStoreUnavailable)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"failed to load videos"}`, rec.Body.String())
}

func TestHandleIndex_UpstreamFailureDoesNotLeakDetail(t *testing.T) {
	rec := doRequest(t, &stubFeed{err: fmt.Errorf("%w: unexpected status 403", youtube.ErrUpstream)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"failed to load videos"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "403")
	require.NotContains(t, rec.Body.String(), "youtube")
}
