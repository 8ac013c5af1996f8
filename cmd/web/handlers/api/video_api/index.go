// package video_api provides the video feed API handlers.
package video_api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"oakstream.dev/tubefeed/internal/catalog"
	"oakstream.dev/tubefeed/internal/youtube"
)

// FeedService is the aggregation operation the handler fronts.
type FeedService interface {
	Videos(ctx context.Context) ([]youtube.Video, error)
}

// genericFailure is the only failure text clients ever see. The real cause
// is logged server-side and must not leak upstream internals or credentials.
const genericFailure = "failed to load videos"

type errorResponse struct {
	Message string `json:"message"`
}

// HandleIndex serves GET /videos: the full enriched catalog as a JSON array.
func HandleIndex(svc FeedService) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		videos, err := svc.Videos(ctx)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrStoreUnavailable):
				slog.Error("catalog read failed", "error", err, "request_id", requestID(c))
			case errors.Is(err, youtube.ErrUpstream):
				slog.Error("metadata enrichment failed", "error", err, "request_id", requestID(c))
			default:
				slog.Error("feed aggregation failed", "error", err, "request_id", requestID(c))
			}
			return c.JSON(http.StatusInternalServerError, errorResponse{Message: genericFailure})
		}

		return c.JSON(http.StatusOK, videos)
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
