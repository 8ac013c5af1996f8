// package ui renders loader snapshots and hosts the playback overlay for
// the terminal client.
package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"oakstream.dev/tubefeed/pkg/feedclient"
)

// RenderList writes a stateless render of the current snapshot. It holds no
// state of its own; every call paints exactly what the loader reports.
func RenderList(w io.Writer, snap feedclient.Snapshot) {
	switch snap.State {
	case feedclient.StateIdle, feedclient.StateLoading:
		fmt.Fprintln(w, "loading...")
		return
	}

	if snap.Refreshing {
		fmt.Fprintln(w, "refreshing...")
	} else if !snap.RefreshedAt.IsZero() {
		fmt.Fprintf(w, "refreshed %s\n", humanize.Time(snap.RefreshedAt))
	}

	if snap.ErrorMessage != "" {
		fmt.Fprintf(w, "! %s\n", snap.ErrorMessage)
	}

	if len(snap.Videos) == 0 {
		if snap.ErrorMessage == "" {
			fmt.Fprintln(w, "no videos configured")
		}
		return
	}

	for i, v := range snap.Videos {
		fmt.Fprintf(w, "%3d. %s (%s)\n", i+1, v.Title, v.ChannelTitle)
	}
}

// Select maps a 1-based list position to its record. It dispatches nothing
// itself; the caller opens the overlay with the returned record.
func Select(snap feedclient.Snapshot, position int) (feedclient.Video, bool) {
	if position < 1 || position > len(snap.Videos) {
		return feedclient.Video{}, false
	}
	return snap.Videos[position-1], true
}
