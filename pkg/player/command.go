package player

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

const watchBaseURL = "https://www.youtube.com/watch"

// WatchURL builds the canonical watch URL for a video identifier.
func WatchURL(videoID string) string {
	return watchBaseURL + "?v=" + url.QueryEscape(strings.TrimSpace(videoID))
}

// CommandPlayer plays a video by handing its watch URL to an external player
// command (mpv, vlc, a browser). Process exit maps to the ended event; a
// nonzero exit maps to an error event.
type CommandPlayer struct {
	command string
	args    []string
}

func NewCommandPlayer(command string, args ...string) *CommandPlayer {
	return &CommandPlayer{command: command, args: args}
}

func (p *CommandPlayer) Play(ctx context.Context, videoID string) (<-chan Event, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, fmt.Errorf("videoID is required")
	}
	if strings.TrimSpace(p.command) == "" {
		return nil, fmt.Errorf("no player command configured")
	}

	args := append(append([]string{}, p.args...), WatchURL(videoID))
	cmd := exec.CommandContext(ctx, p.command, args...)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start player: %w", err)
	}

	events := make(chan Event, 2)
	events <- Event{State: StatePlaying}

	go func() {
		defer close(events)
		if err := cmd.Wait(); err != nil {
			events <- Event{Err: fmt.Errorf("player exited: %w", err)}
			return
		}
		events <- Event{State: StateEnded}
	}()

	return events, nil
}
