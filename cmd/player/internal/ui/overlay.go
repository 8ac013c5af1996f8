package ui

import (
	"context"
	"fmt"
	"io"

	"oakstream.dev/tubefeed/pkg/feedclient"
	"oakstream.dev/tubefeed/pkg/player"
)

// Overlay hosts playback of a single selected record. It closes when the
// player reports ended, and on a player error it shows an alert and closes.
// Closing is terminal for the session; there is no playback retry.
type Overlay struct {
	player player.Player
	out    io.Writer
}

func NewOverlay(p player.Player, out io.Writer) *Overlay {
	return &Overlay{player: p, out: out}
}

func (o *Overlay) Present(ctx context.Context, v feedclient.Video) {
	fmt.Fprintf(o.out, "playing: %s (%s)\n", v.Title, v.ChannelTitle)

	events, err := o.player.Play(ctx, v.VideoID)
	if err != nil {
		fmt.Fprintf(o.out, "playback could not start: %v\n", err)
		return
	}

	for ev := range events {
		if ev.Err != nil {
			fmt.Fprintln(o.out, "playback failed, returning to the list")
			return
		}
		if ev.State == player.StateEnded {
			return
		}
	}
}
