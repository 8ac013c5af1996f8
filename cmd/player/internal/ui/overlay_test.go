package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"oakstream.dev/tubefeed/pkg/feedclient"
	"oakstream.dev/tubefeed/pkg/player"
)

type fakePlayer struct {
	events   []player.Event
	startErr error
	played   []string
}

func (f *fakePlayer) Play(ctx context.Context, videoID string) (<-chan player.Event, error) {
	f.played = append(f.played, videoID)
	if f.startErr != nil {
		return nil, f.startErr
	}
	ch := make(chan player.Event, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func TestOverlay_ClosesOnEnded(t *testing.T) {
	p := &fakePlayer{events: []player.Event{
		{State: player.StatePlaying},
		{State: player.StatePaused},
		{State: player.StateEnded},
	}}
	var b strings.Builder

	NewOverlay(p, &b).Present(context.Background(), feedclient.Video{VideoID: "v1", Title: "T"})

	require.Equal(t, []string{"v1"}, p.played)
	require.NotContains(t, b.String(), "failed")
}

func TestOverlay_AlertsAndClosesOnPlayerError(t *testing.T) {
	p := &fakePlayer{events: []player.Event{
		{State: player.StatePlaying},
		{Err: errors.New("codec blew up")},
	}}
	var b strings.Builder

	NewOverlay(p, &b).Present(context.Background(), feedclient.Video{VideoID: "v1"})

	require.Contains(t, b.String(), "playback failed")
	// No retry: the player was invoked exactly once.
	require.Equal(t, []string{"v1"}, p.played)
}

func TestOverlay_StartFailure(t *testing.T) {
	p := &fakePlayer{startErr: errors.New("no player binary")}
	var b strings.Builder

	NewOverlay(p, &b).Present(context.Background(), feedclient.Video{VideoID: "v1"})

	require.Contains(t, b.String(), "playback could not start")
}
